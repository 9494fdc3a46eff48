package appointments

import (
	"context"
	"fmt"
	"nutricare-service/internal/app/config"
	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/app/services/core/scheduling"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
	"nutricare-service/internal/pkg/exceptions"
	"nutricare-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository  contracts.AppointmentRepository
	AvailabilityRepository contracts.AvailabilityRepository
	UserRepository         contracts.UserRepository
	SessionService         contracts.SessionService
	LockerService          contracts.LockerService
	MailerService          contracts.MailerService
	InternalConfig         *config.InternalConfig
	Location               *time.Location
	Log                    *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	availabilityRepository contracts.AvailabilityRepository,
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	lockerService contracts.LockerService,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	location *time.Location,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		instance := &appointmentUsecase{
			AppointmentRepository:  appointmentRepository,
			AvailabilityRepository: availabilityRepository,
			UserRepository:         userRepository,
			SessionService:         sessionService,
			LockerService:          lockerService,
			MailerService:          mailerService,
			InternalConfig:         internalConfig,
			Location:               location,
			Log:                    logger,
		}
		appointmentUsecaseInstance = instance
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, sessionData string, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNutritionistIDKey, request.NutritionistID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	nutritionist, err := uc.UserRepository.FindUserByID(ctx, request.NutritionistID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error fetching nutritionist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if nutritionist == nil || nutritionist.UserType != constvars.NutriCareRoleNutritionist {
		return nil, exceptions.ErrNutritionistNotFound(nil)
	}

	interval, err := parseInterval(request.StartTime, request.EndTime)
	if err != nil {
		return nil, err
	}

	day, err := utils.ParseDate(request.Date)
	if err != nil {
		return nil, err
	}
	if err := uc.ensureInFuture(day, interval); err != nil {
		return nil, err
	}

	lockKey := fmt.Sprintf(constvars.AppointmentLockKeyFormat, request.NutritionistID, request.Date)
	lockValue, err := uc.acquireBookingLock(ctx, requestID, lockKey)
	if err != nil {
		return nil, err
	}
	defer uc.releaseBookingLock(ctx, requestID, lockKey, lockValue)

	existing, err := uc.AppointmentRepository.FindScheduledAppointmentsByNutritionistAndDate(ctx, request.NutritionistID, request.Date)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error fetching scheduled appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if conflict := scheduling.FirstConflict(interval, existing, ""); conflict != nil {
		uc.Log.Warn("appointmentUsecase.CreateAppointment slot already booked",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, conflict.ID),
		)
		return nil, exceptions.ErrAppointmentSlotBooked(nil)
	}

	available, err := uc.slotWithinAvailability(ctx, request.NutritionistID, day, interval)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error resolving availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !available {
		return nil, exceptions.ErrAppointmentSlotNotAvailable(nil)
	}

	appointment := &models.Appointment{
		ClientID:       session.UserID,
		NutritionistID: request.NutritionistID,
		Date:           request.Date,
		StartTime:      interval.Start.String(),
		EndTime:        interval.End.String(),
		Status:         constvars.AppointmentStatusScheduled,
		Notes:          request.Notes,
	}
	appointment.SetCreatedAtUpdatedAt()

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appointment.ID = appointmentID

	client, _ := uc.UserRepository.FindUserByID(ctx, session.UserID)
	if client != nil {
		clientName := displayName(client)
		nutritionistName := displayName(nutritionist)
		uc.notifyParticipants(ctx, requestID, constvars.EmailAppointmentBookedSubject,
			participantEmail{
				Address: client.Email,
				Body:    fmt.Sprintf(constvars.EmailBodyAppointmentBookedClient, clientName, nutritionistName, appointment.Date, appointment.StartTime, appointment.EndTime),
			},
			participantEmail{
				Address: nutritionist.Email,
				Body:    fmt.Sprintf(constvars.EmailBodyAppointmentBookedNutritionist, nutritionistName, clientName, appointment.Date, appointment.StartTime, appointment.EndTime),
			},
		)
	}

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return buildAppointmentResponse(appointment), nil
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, sessionData, status string, pagination *requests.Pagination) ([]responses.Appointment, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatusKey, status),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	var appointments []models.Appointment
	var total int64
	if session.IsNutritionist() {
		appointments, err = uc.AppointmentRepository.FindAppointmentsByNutritionist(ctx, session.UserID, status, pagination.Page, pagination.PageSize)
		if err == nil {
			total, err = uc.AppointmentRepository.CountAppointmentsByNutritionist(ctx, session.UserID, status)
		}
	} else {
		appointments, err = uc.AppointmentRepository.FindAppointmentsByClient(ctx, session.UserID, status, pagination.Page, pagination.PageSize)
		if err == nil {
			total, err = uc.AppointmentRepository.CountAppointmentsByClient(ctx, session.UserID, status)
		}
	}
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	uc.Log.Info("appointmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTotalKey, total),
	)
	return buildAppointmentListResponse(appointments), int(total), nil
}

func (uc *appointmentUsecase) FindByDateRange(ctx context.Context, sessionData string, dateRange *requests.DateRange, status string) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindByDateRange called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatusKey, status),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindByDateRange error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	startDate, err := utils.ParseDate(dateRange.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := utils.ParseDate(dateRange.EndDate)
	if err != nil {
		return nil, err
	}
	if startDate.After(endDate) {
		return nil, exceptions.ErrDateRangeInverted(nil)
	}

	var appointments []models.Appointment
	if session.IsNutritionist() {
		appointments, err = uc.AppointmentRepository.FindAppointmentsByNutritionistAndDateRange(ctx, session.UserID, dateRange.StartDate, dateRange.EndDate, status)
	} else {
		appointments, err = uc.AppointmentRepository.FindAppointmentsByClientAndDateRange(ctx, session.UserID, dateRange.StartDate, dateRange.EndDate, status)
	}
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindByDateRange error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.FindByDateRange succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return buildAppointmentListResponse(appointments), nil
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, sessionData, appointmentID string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindByID error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	appointment, err := uc.AppointmentRepository.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindByID error fetching appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	if !isParticipantOrAdmin(session, appointment) {
		return nil, exceptions.ErrNotEnoughPermissions(nil)
	}

	uc.Log.Info("appointmentUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return buildAppointmentResponse(appointment), nil
}

func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, sessionData, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateAppointment error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	appointment, err := uc.AppointmentRepository.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateAppointment error fetching appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	if !isParticipantOrAdmin(session, appointment) {
		return nil, exceptions.ErrNotEnoughPermissions(nil)
	}
	if appointment.Status == constvars.AppointmentStatusCancelled {
		return nil, exceptions.ErrAppointmentAlreadyCancelled(nil)
	}

	if request.Date != "" || request.StartTime != "" || request.EndTime != "" {
		newDate := appointment.Date
		if request.Date != "" {
			newDate = request.Date
		}
		newStartTime := appointment.StartTime
		if request.StartTime != "" {
			newStartTime = request.StartTime
		}
		newEndTime := appointment.EndTime
		if request.EndTime != "" {
			newEndTime = request.EndTime
		}

		interval, err := parseInterval(newStartTime, newEndTime)
		if err != nil {
			return nil, err
		}
		day, err := utils.ParseDate(newDate)
		if err != nil {
			return nil, err
		}
		if err := uc.ensureInFuture(day, interval); err != nil {
			return nil, err
		}

		lockKey := fmt.Sprintf(constvars.AppointmentLockKeyFormat, appointment.NutritionistID, newDate)
		lockValue, err := uc.acquireBookingLock(ctx, requestID, lockKey)
		if err != nil {
			return nil, err
		}
		defer uc.releaseBookingLock(ctx, requestID, lockKey, lockValue)

		existing, err := uc.AppointmentRepository.FindScheduledAppointmentsByNutritionistAndDate(ctx, appointment.NutritionistID, newDate)
		if err != nil {
			uc.Log.Error("appointmentUsecase.UpdateAppointment error fetching scheduled appointments",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		if conflict := scheduling.FirstConflict(interval, existing, appointment.ID); conflict != nil {
			uc.Log.Warn("appointmentUsecase.UpdateAppointment slot conflicts with another appointment",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAppointmentIDKey, conflict.ID),
			)
			return nil, exceptions.ErrAppointmentSlotConflicts(nil)
		}

		available, err := uc.slotWithinAvailability(ctx, appointment.NutritionistID, day, interval)
		if err != nil {
			uc.Log.Error("appointmentUsecase.UpdateAppointment error resolving availability",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		if !available {
			return nil, exceptions.ErrAppointmentSlotUnavailable(nil)
		}

		appointment.Date = newDate
		appointment.StartTime = interval.Start.String()
		appointment.EndTime = interval.End.String()
	}

	if request.Status != "" {
		appointment.Status = request.Status
	}
	if request.Notes != nil {
		appointment.Notes = *request.Notes
	}
	appointment.SetUpdatedAt()

	err = uc.AppointmentRepository.UpdateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateAppointment error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	client, nutritionist := uc.loadParticipants(ctx, requestID, appointment)
	if client != nil && nutritionist != nil {
		clientName := displayName(client)
		nutritionistName := displayName(nutritionist)
		uc.notifyParticipants(ctx, requestID, constvars.EmailAppointmentUpdatedSubject,
			participantEmail{
				Address: client.Email,
				Body:    fmt.Sprintf(constvars.EmailBodyAppointmentUpdated, clientName, nutritionistName, appointment.Date, appointment.StartTime, appointment.EndTime),
			},
			participantEmail{
				Address: nutritionist.Email,
				Body:    fmt.Sprintf(constvars.EmailBodyAppointmentUpdated, nutritionistName, clientName, appointment.Date, appointment.StartTime, appointment.EndTime),
			},
		)
	}

	uc.Log.Info("appointmentUsecase.UpdateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return buildAppointmentResponse(appointment), nil
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, sessionData, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CancelAppointment error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	appointment, err := uc.AppointmentRepository.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CancelAppointment error fetching appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}

	if !isParticipantOrAdmin(session, appointment) {
		return exceptions.ErrNotEnoughPermissions(nil)
	}
	if appointment.Status == constvars.AppointmentStatusCancelled {
		return exceptions.ErrAppointmentAlreadyCancelled(nil)
	}

	appointment.Status = constvars.AppointmentStatusCancelled
	appointment.SetUpdatedAt()

	err = uc.AppointmentRepository.UpdateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CancelAppointment error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	client, nutritionist := uc.loadParticipants(ctx, requestID, appointment)
	if client != nil && nutritionist != nil {
		cancelledBy := constvars.NutriCareRoleNutritionist
		if session.UserID == appointment.ClientID {
			cancelledBy = constvars.NutriCareRoleClient
		}
		clientName := displayName(client)
		nutritionistName := displayName(nutritionist)
		uc.notifyParticipants(ctx, requestID, constvars.EmailAppointmentCancelledSubject,
			participantEmail{
				Address: client.Email,
				Body:    fmt.Sprintf(constvars.EmailBodyAppointmentCancelled, clientName, nutritionistName, appointment.Date, appointment.StartTime, appointment.EndTime, cancelledBy),
			},
			participantEmail{
				Address: nutritionist.Email,
				Body:    fmt.Sprintf(constvars.EmailBodyAppointmentCancelled, nutritionistName, clientName, appointment.Date, appointment.StartTime, appointment.EndTime, cancelledBy),
			},
		)
	}

	uc.Log.Info("appointmentUsecase.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

// ensureInFuture rejects slots whose start is not strictly after the current
// wall-clock time. A slot starting exactly now is already invalid.
func (uc *appointmentUsecase) ensureInFuture(day time.Time, interval scheduling.Interval) error {
	loc := uc.Location
	if loc == nil {
		loc = time.Local
	}
	startAt := scheduling.At(day, interval.Start, loc)
	if !startAt.After(time.Now().In(loc)) {
		return exceptions.ErrAppointmentInThePast(nil)
	}
	return nil
}

func (uc *appointmentUsecase) slotWithinAvailability(ctx context.Context, nutritionistID string, day time.Time, interval scheduling.Interval) (bool, error) {
	rules, err := uc.AvailabilityRepository.FindAvailabilitiesByNutritionist(ctx, nutritionistID)
	if err != nil {
		return false, err
	}
	windows := scheduling.AvailableWindows(rules, day)
	return scheduling.WithinAny(interval, windows), nil
}

func (uc *appointmentUsecase) acquireBookingLock(ctx context.Context, requestID, lockKey string) (string, error) {
	ttl := time.Duration(uc.InternalConfig.App.BookingLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, ttl)
	if err != nil {
		uc.Log.Error("appointmentUsecase error acquiring booking lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lockKey),
			zap.Error(err),
		)
		return "", err
	}
	if !acquired {
		uc.Log.Warn("appointmentUsecase booking lock busy",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lockKey),
		)
		return "", exceptions.ErrBookingInProgress(nil)
	}
	return lockValue, nil
}

func (uc *appointmentUsecase) releaseBookingLock(ctx context.Context, requestID, lockKey, lockValue string) {
	if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
		uc.Log.Error("appointmentUsecase error releasing booking lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lockKey),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) loadParticipants(ctx context.Context, requestID string, appointment *models.Appointment) (*models.User, *models.User) {
	client, err := uc.UserRepository.FindUserByID(ctx, appointment.ClientID)
	if err != nil {
		uc.Log.Warn("appointmentUsecase error fetching client for notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil
	}
	nutritionist, err := uc.UserRepository.FindUserByID(ctx, appointment.NutritionistID)
	if err != nil {
		uc.Log.Warn("appointmentUsecase error fetching nutritionist for notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil
	}
	return client, nutritionist
}

type participantEmail struct {
	Address string
	Body    string
}

// notifyParticipants delivers best-effort booking notifications. Failures are
// logged and swallowed so they never fail the booking decision itself.
func (uc *appointmentUsecase) notifyParticipants(ctx context.Context, requestID, subject string, emails ...participantEmail) {
	for _, email := range emails {
		payload := &requests.EmailPayload{
			Subject:  subject,
			From:     uc.InternalConfig.App.MailerEmailSender,
			To:       []string{email.Address},
			HTMLCode: email.Body,
			Encoded:  false,
		}
		if err := uc.MailerService.SendEmail(ctx, payload); err != nil {
			uc.Log.Warn("appointmentUsecase error sending notification email",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEmailSubjectKey, subject),
				zap.Error(err),
			)
		}
	}
}

func isParticipantOrAdmin(session *models.Session, appointment *models.Appointment) bool {
	return session.UserID == appointment.ClientID ||
		session.UserID == appointment.NutritionistID ||
		session.IsAdmin()
}

func displayName(user *models.User) string {
	if user.FullName != "" {
		return user.FullName
	}
	return user.Email
}

func parseInterval(startTime, endTime string) (scheduling.Interval, error) {
	startClock, ok := scheduling.ParseClock(startTime)
	if !ok {
		return scheduling.Interval{}, exceptions.ErrCannotParseTime(nil)
	}
	endClock, ok := scheduling.ParseClock(endTime)
	if !ok {
		return scheduling.Interval{}, exceptions.ErrCannotParseTime(nil)
	}
	interval, ok := scheduling.NewInterval(startClock, endClock)
	if !ok {
		return scheduling.Interval{}, exceptions.ErrAppointmentEndBeforeStart(nil)
	}
	return interval, nil
}

func buildAppointmentResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		ID:             appointment.ID,
		ClientID:       appointment.ClientID,
		NutritionistID: appointment.NutritionistID,
		Date:           appointment.Date,
		StartTime:      appointment.StartTime,
		EndTime:        appointment.EndTime,
		Status:         appointment.Status,
		Notes:          appointment.Notes,
	}
}

func buildAppointmentListResponse(appointments []models.Appointment) []responses.Appointment {
	list := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		list = append(list, *buildAppointmentResponse(&appointments[i]))
	}
	return list
}
