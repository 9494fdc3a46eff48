package nutritionrecords

import (
	"context"
	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
	"nutricare-service/internal/pkg/exceptions"
	"nutricare-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type nutritionRecordUsecase struct {
	NutritionRecordRepository contracts.NutritionRecordRepository
	UserRepository            contracts.UserRepository
	SessionService            contracts.SessionService
	Log                       *zap.Logger
}

var (
	nutritionRecordUsecaseInstance contracts.NutritionRecordUsecase
	onceNutritionRecordUsecase     sync.Once
)

func NewNutritionRecordUsecase(
	nutritionRecordRepository contracts.NutritionRecordRepository,
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.NutritionRecordUsecase {
	onceNutritionRecordUsecase.Do(func() {
		instance := &nutritionRecordUsecase{
			NutritionRecordRepository: nutritionRecordRepository,
			UserRepository:            userRepository,
			SessionService:            sessionService,
			Log:                       logger,
		}
		nutritionRecordUsecaseInstance = instance
	})
	return nutritionRecordUsecaseInstance
}

func (uc *nutritionRecordUsecase) CreateNutritionRecord(ctx context.Context, sessionData string, request *requests.CreateNutritionRecord) (*responses.NutritionRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("nutritionRecordUsecase.CreateNutritionRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientIDKey, request.ClientID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("nutritionRecordUsecase.CreateNutritionRecord error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if session.UserID != request.ClientID && session.IsClient() {
		return nil, exceptions.ErrNotEnoughPermissions(nil)
	}

	client, err := uc.UserRepository.FindUserByID(ctx, request.ClientID)
	if err != nil {
		uc.Log.Error("nutritionRecordUsecase.CreateNutritionRecord error fetching client",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if client == nil {
		return nil, exceptions.ErrClientNotFound(nil)
	}

	record := &models.NutritionRecord{
		ClientID:        request.ClientID,
		CreatedByID:     session.UserID,
		Date:            request.Date,
		Weight:          request.Weight,
		Height:          request.Height,
		Notes:           request.Notes,
		Recommendations: request.Recommendations,
	}
	record.SetCreatedAtUpdatedAt()

	recordID, err := uc.NutritionRecordRepository.CreateNutritionRecord(ctx, record)
	if err != nil {
		uc.Log.Error("nutritionRecordUsecase.CreateNutritionRecord error creating record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	record.ID = recordID

	uc.Log.Info("nutritionRecordUsecase.CreateNutritionRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)
	return buildNutritionRecordResponse(record), nil
}

func (uc *nutritionRecordUsecase) FindMyRecords(ctx context.Context, sessionData string, pagination *requests.Pagination) ([]responses.NutritionRecord, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("nutritionRecordUsecase.FindMyRecords called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("nutritionRecordUsecase.FindMyRecords error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	if !session.IsClient() {
		return nil, 0, exceptions.ErrClientsOnlyEndpoint(nil)
	}

	return uc.listClientRecords(ctx, requestID, session.UserID, pagination)
}

func (uc *nutritionRecordUsecase) FindByClient(ctx context.Context, sessionData, clientID string, pagination *requests.Pagination) ([]responses.NutritionRecord, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("nutritionRecordUsecase.FindByClient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientIDKey, clientID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("nutritionRecordUsecase.FindByClient error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	if session.IsClient() && session.UserID != clientID {
		return nil, 0, exceptions.ErrNotEnoughPermissions(nil)
	}
	if err := uc.ensureClientExists(ctx, requestID, clientID); err != nil {
		return nil, 0, err
	}

	return uc.listClientRecords(ctx, requestID, clientID, pagination)
}

func (uc *nutritionRecordUsecase) FindByClientAndDateRange(ctx context.Context, sessionData, clientID string, dateRange *requests.DateRange) ([]responses.NutritionRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("nutritionRecordUsecase.FindByClientAndDateRange called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientIDKey, clientID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("nutritionRecordUsecase.FindByClientAndDateRange error parsing session data",
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

	if session.IsClient() && session.UserID != clientID {
		return nil, exceptions.ErrNotEnoughPermissions(nil)
	}
	if err := uc.ensureClientExists(ctx, requestID, clientID); err != nil {
		return nil, err
	}

	records, err := uc.NutritionRecordRepository.FindNutritionRecordsByClientAndDateRange(ctx, clientID, dateRange.StartDate, dateRange.EndDate)
	if err != nil {
		uc.Log.Error("nutritionRecordUsecase.FindByClientAndDateRange error fetching records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("nutritionRecordUsecase.FindByClientAndDateRange succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return buildNutritionRecordListResponse(records), nil
}

func (uc *nutritionRecordUsecase) FindByID(ctx context.Context, sessionData, recordID string) (*responses.NutritionRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("nutritionRecordUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("nutritionRecordUsecase.FindByID error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	record, err := uc.NutritionRecordRepository.FindNutritionRecordByID(ctx, recordID)
	if err != nil {
		uc.Log.Error("nutritionRecordUsecase.FindByID error fetching record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrNutritionRecordNotFound(nil)
	}

	if session.IsClient() && session.UserID != record.ClientID {
		return nil, exceptions.ErrNotEnoughPermissions(nil)
	}

	uc.Log.Info("nutritionRecordUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return buildNutritionRecordResponse(record), nil
}

func (uc *nutritionRecordUsecase) UpdateNutritionRecord(ctx context.Context, sessionData, recordID string, request *requests.UpdateNutritionRecord) (*responses.NutritionRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("nutritionRecordUsecase.UpdateNutritionRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("nutritionRecordUsecase.UpdateNutritionRecord error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	record, err := uc.NutritionRecordRepository.FindNutritionRecordByID(ctx, recordID)
	if err != nil {
		uc.Log.Error("nutritionRecordUsecase.UpdateNutritionRecord error fetching record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrNutritionRecordNotFound(nil)
	}

	if session.UserID != record.CreatedByID && !session.IsAdmin() {
		return nil, exceptions.ErrNotEnoughPermissions(nil)
	}

	if request.Date != "" {
		record.Date = request.Date
	}
	if request.Weight != nil {
		record.Weight = request.Weight
	}
	if request.Height != nil {
		record.Height = request.Height
	}
	if request.Notes != nil {
		record.Notes = *request.Notes
	}
	if request.Recommendations != nil {
		record.Recommendations = *request.Recommendations
	}
	record.SetUpdatedAt()

	err = uc.NutritionRecordRepository.UpdateNutritionRecord(ctx, record)
	if err != nil {
		uc.Log.Error("nutritionRecordUsecase.UpdateNutritionRecord error updating record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("nutritionRecordUsecase.UpdateNutritionRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)
	return buildNutritionRecordResponse(record), nil
}

func (uc *nutritionRecordUsecase) DeleteNutritionRecord(ctx context.Context, sessionData, recordID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("nutritionRecordUsecase.DeleteNutritionRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("nutritionRecordUsecase.DeleteNutritionRecord error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	record, err := uc.NutritionRecordRepository.FindNutritionRecordByID(ctx, recordID)
	if err != nil {
		uc.Log.Error("nutritionRecordUsecase.DeleteNutritionRecord error fetching record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if record == nil {
		return exceptions.ErrNutritionRecordNotFound(nil)
	}

	if session.UserID != record.CreatedByID && !session.IsAdmin() {
		return exceptions.ErrNotEnoughPermissions(nil)
	}

	err = uc.NutritionRecordRepository.DeleteNutritionRecord(ctx, recordID)
	if err != nil {
		uc.Log.Error("nutritionRecordUsecase.DeleteNutritionRecord error deleting record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("nutritionRecordUsecase.DeleteNutritionRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)
	return nil
}

func (uc *nutritionRecordUsecase) listClientRecords(ctx context.Context, requestID, clientID string, pagination *requests.Pagination) ([]responses.NutritionRecord, int, error) {
	records, err := uc.NutritionRecordRepository.FindNutritionRecordsByClient(ctx, clientID, pagination.Page, pagination.PageSize)
	if err != nil {
		uc.Log.Error("nutritionRecordUsecase error fetching records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}
	total, err := uc.NutritionRecordRepository.CountNutritionRecordsByClient(ctx, clientID)
	if err != nil {
		uc.Log.Error("nutritionRecordUsecase error counting records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	uc.Log.Info("nutritionRecordUsecase records fetched",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTotalKey, total),
	)
	return buildNutritionRecordListResponse(records), int(total), nil
}

func (uc *nutritionRecordUsecase) ensureClientExists(ctx context.Context, requestID, clientID string) error {
	client, err := uc.UserRepository.FindUserByID(ctx, clientID)
	if err != nil {
		uc.Log.Error("nutritionRecordUsecase error fetching client",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if client == nil {
		return exceptions.ErrClientNotFound(nil)
	}
	return nil
}

func buildNutritionRecordResponse(record *models.NutritionRecord) *responses.NutritionRecord {
	return &responses.NutritionRecord{
		ID:              record.ID,
		ClientID:        record.ClientID,
		CreatedByID:     record.CreatedByID,
		Date:            record.Date,
		Weight:          record.Weight,
		Height:          record.Height,
		BMI:             record.BMI(),
		Notes:           record.Notes,
		Recommendations: record.Recommendations,
	}
}

func buildNutritionRecordListResponse(records []models.NutritionRecord) []responses.NutritionRecord {
	list := make([]responses.NutritionRecord, 0, len(records))
	for i := range records {
		list = append(list, *buildNutritionRecordResponse(&records[i]))
	}
	return list
}
