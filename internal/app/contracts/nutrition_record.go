package contracts

import (
	"context"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
)

type NutritionRecordUsecase interface {
	CreateNutritionRecord(ctx context.Context, sessionData string, request *requests.CreateNutritionRecord) (*responses.NutritionRecord, error)
	FindMyRecords(ctx context.Context, sessionData string, pagination *requests.Pagination) ([]responses.NutritionRecord, int, error)
	FindByClient(ctx context.Context, sessionData, clientID string, pagination *requests.Pagination) ([]responses.NutritionRecord, int, error)
	FindByClientAndDateRange(ctx context.Context, sessionData, clientID string, dateRange *requests.DateRange) ([]responses.NutritionRecord, error)
	FindByID(ctx context.Context, sessionData, recordID string) (*responses.NutritionRecord, error)
	UpdateNutritionRecord(ctx context.Context, sessionData, recordID string, request *requests.UpdateNutritionRecord) (*responses.NutritionRecord, error)
	DeleteNutritionRecord(ctx context.Context, sessionData, recordID string) error
}

type NutritionRecordRepository interface {
	CreateNutritionRecord(ctx context.Context, record *models.NutritionRecord) (string, error)
	FindNutritionRecordByID(ctx context.Context, recordID string) (*models.NutritionRecord, error)
	FindNutritionRecordsByClient(ctx context.Context, clientID string, page, pageSize int) ([]models.NutritionRecord, error)
	CountNutritionRecordsByClient(ctx context.Context, clientID string) (int64, error)
	FindNutritionRecordsByClientAndDateRange(ctx context.Context, clientID, startDate, endDate string) ([]models.NutritionRecord, error)
	UpdateNutritionRecord(ctx context.Context, record *models.NutritionRecord) error
	DeleteNutritionRecord(ctx context.Context, recordID string) error
}
