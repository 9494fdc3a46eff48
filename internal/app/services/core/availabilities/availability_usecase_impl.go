package availabilities

import (
	"context"
	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/app/services/core/scheduling"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
	"nutricare-service/internal/pkg/exceptions"
	"nutricare-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type availabilityUsecase struct {
	AvailabilityRepository contracts.AvailabilityRepository
	UserRepository         contracts.UserRepository
	SessionService         contracts.SessionService
	Log                    *zap.Logger
}

var (
	availabilityUsecaseInstance contracts.AvailabilityUsecase
	onceAvailabilityUsecase     sync.Once
)

func NewAvailabilityUsecase(
	availabilityRepository contracts.AvailabilityRepository,
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	onceAvailabilityUsecase.Do(func() {
		instance := &availabilityUsecase{
			AvailabilityRepository: availabilityRepository,
			UserRepository:         userRepository,
			SessionService:         sessionService,
			Log:                    logger,
		}
		availabilityUsecaseInstance = instance
	})
	return availabilityUsecaseInstance
}

func (uc *availabilityUsecase) CreateAvailability(ctx context.Context, sessionData string, request *requests.CreateAvailability) (*responses.Availability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.CreateAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("availabilityUsecase.CreateAvailability error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if session.IsNotNutritionist() {
		return nil, exceptions.ErrAvailabilityNutritionistsOnly(nil)
	}

	interval, err := parseInterval(request.StartTime, request.EndTime)
	if err != nil {
		return nil, err
	}

	isRecurring := true
	if request.IsRecurring != nil {
		isRecurring = *request.IsRecurring
	}
	if isRecurring && request.DayOfWeek == nil {
		return nil, exceptions.ErrAvailabilityDayOfWeekRequired(nil)
	}
	if !isRecurring && request.SpecificDate == "" {
		return nil, exceptions.ErrAvailabilityDateRequired(nil)
	}

	availability := &models.Availability{
		NutritionistID: session.UserID,
		DayOfWeek:      request.DayOfWeek,
		StartTime:      interval.Start.String(),
		EndTime:        interval.End.String(),
		IsRecurring:    isRecurring,
		SpecificDate:   request.SpecificDate,
	}
	availability.SetCreatedAtUpdatedAt()

	availabilityID, err := uc.AvailabilityRepository.CreateAvailability(ctx, availability)
	if err != nil {
		uc.Log.Error("availabilityUsecase.CreateAvailability error creating availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	availability.ID = availabilityID

	uc.Log.Info("availabilityUsecase.CreateAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAvailabilityIDKey, availabilityID),
	)
	return buildAvailabilityResponse(availability), nil
}

func (uc *availabilityUsecase) FindByNutritionist(ctx context.Context, nutritionistID string, pagination *requests.Pagination) ([]responses.Availability, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.FindByNutritionist called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNutritionistIDKey, nutritionistID),
	)

	if err := uc.ensureNutritionistExists(ctx, nutritionistID); err != nil {
		uc.Log.Error("availabilityUsecase.FindByNutritionist error checking nutritionist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	availabilities, err := uc.AvailabilityRepository.FindAvailabilitiesByNutritionistPaginated(ctx, nutritionistID, pagination.Page, pagination.PageSize)
	if err != nil {
		uc.Log.Error("availabilityUsecase.FindByNutritionist error fetching availabilities",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	total, err := uc.AvailabilityRepository.CountAvailabilitiesByNutritionist(ctx, nutritionistID)
	if err != nil {
		uc.Log.Error("availabilityUsecase.FindByNutritionist error counting availabilities",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	uc.Log.Info("availabilityUsecase.FindByNutritionist succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTotalKey, total),
	)
	return buildAvailabilityListResponse(availabilities), int(total), nil
}

func (uc *availabilityUsecase) FindByNutritionistAndDateRange(ctx context.Context, nutritionistID string, dateRange *requests.DateRange) ([]responses.Availability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.FindByNutritionistAndDateRange called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNutritionistIDKey, nutritionistID),
	)

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

	if err := uc.ensureNutritionistExists(ctx, nutritionistID); err != nil {
		uc.Log.Error("availabilityUsecase.FindByNutritionistAndDateRange error checking nutritionist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	availabilities, err := uc.AvailabilityRepository.FindAvailabilitiesByNutritionistAndDateRange(ctx, nutritionistID, dateRange.StartDate, dateRange.EndDate)
	if err != nil {
		uc.Log.Error("availabilityUsecase.FindByNutritionistAndDateRange error fetching availabilities",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("availabilityUsecase.FindByNutritionistAndDateRange succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return buildAvailabilityListResponse(availabilities), nil
}

func (uc *availabilityUsecase) FindByID(ctx context.Context, sessionData, availabilityID string) (*responses.Availability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAvailabilityIDKey, availabilityID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("availabilityUsecase.FindByID error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	availability, err := uc.AvailabilityRepository.FindAvailabilityByID(ctx, availabilityID)
	if err != nil {
		uc.Log.Error("availabilityUsecase.FindByID error fetching availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if availability == nil {
		return nil, exceptions.ErrAvailabilityNotFound(nil)
	}

	if availability.NutritionistID != session.UserID && !session.IsAdmin() {
		return nil, exceptions.ErrNotEnoughPermissions(nil)
	}

	uc.Log.Info("availabilityUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return buildAvailabilityResponse(availability), nil
}

func (uc *availabilityUsecase) UpdateAvailability(ctx context.Context, sessionData, availabilityID string, request *requests.UpdateAvailability) (*responses.Availability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.UpdateAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAvailabilityIDKey, availabilityID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("availabilityUsecase.UpdateAvailability error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	availability, err := uc.AvailabilityRepository.FindAvailabilityByID(ctx, availabilityID)
	if err != nil {
		uc.Log.Error("availabilityUsecase.UpdateAvailability error fetching availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if availability == nil {
		return nil, exceptions.ErrAvailabilityNotFound(nil)
	}

	if availability.NutritionistID != session.UserID {
		return nil, exceptions.ErrNotEnoughPermissions(nil)
	}

	startTime := availability.StartTime
	if request.StartTime != "" {
		startTime = request.StartTime
	}
	endTime := availability.EndTime
	if request.EndTime != "" {
		endTime = request.EndTime
	}
	interval, err := parseInterval(startTime, endTime)
	if err != nil {
		return nil, err
	}

	availability.StartTime = interval.Start.String()
	availability.EndTime = interval.End.String()
	if request.DayOfWeek != nil {
		availability.DayOfWeek = request.DayOfWeek
	}
	if request.IsRecurring != nil {
		availability.IsRecurring = *request.IsRecurring
	}
	if request.SpecificDate != "" {
		availability.SpecificDate = request.SpecificDate
	}
	availability.SetUpdatedAt()

	err = uc.AvailabilityRepository.UpdateAvailability(ctx, availability)
	if err != nil {
		uc.Log.Error("availabilityUsecase.UpdateAvailability error updating availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("availabilityUsecase.UpdateAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAvailabilityIDKey, availabilityID),
	)
	return buildAvailabilityResponse(availability), nil
}

func (uc *availabilityUsecase) DeleteAvailability(ctx context.Context, sessionData, availabilityID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.DeleteAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAvailabilityIDKey, availabilityID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("availabilityUsecase.DeleteAvailability error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	availability, err := uc.AvailabilityRepository.FindAvailabilityByID(ctx, availabilityID)
	if err != nil {
		uc.Log.Error("availabilityUsecase.DeleteAvailability error fetching availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if availability == nil {
		return exceptions.ErrAvailabilityNotFound(nil)
	}

	if availability.NutritionistID != session.UserID {
		return exceptions.ErrNotEnoughPermissions(nil)
	}

	err = uc.AvailabilityRepository.DeleteAvailability(ctx, availabilityID)
	if err != nil {
		uc.Log.Error("availabilityUsecase.DeleteAvailability error deleting availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("availabilityUsecase.DeleteAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAvailabilityIDKey, availabilityID),
	)
	return nil
}

func (uc *availabilityUsecase) ensureNutritionistExists(ctx context.Context, nutritionistID string) error {
	user, err := uc.UserRepository.FindUserByID(ctx, nutritionistID)
	if err != nil {
		return err
	}
	if user == nil || user.UserType != constvars.NutriCareRoleNutritionist {
		return exceptions.ErrNutritionistNotFound(nil)
	}
	return nil
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

func buildAvailabilityResponse(availability *models.Availability) *responses.Availability {
	return &responses.Availability{
		ID:             availability.ID,
		NutritionistID: availability.NutritionistID,
		DayOfWeek:      availability.DayOfWeek,
		StartTime:      availability.StartTime,
		EndTime:        availability.EndTime,
		IsRecurring:    availability.IsRecurring,
		SpecificDate:   availability.SpecificDate,
	}
}

func buildAvailabilityListResponse(availabilities []models.Availability) []responses.Availability {
	list := make([]responses.Availability, 0, len(availabilities))
	for i := range availabilities {
		list = append(list, *buildAvailabilityResponse(&availabilities[i]))
	}
	return list
}
