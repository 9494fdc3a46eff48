package contracts

import (
	"context"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
)

type AvailabilityUsecase interface {
	CreateAvailability(ctx context.Context, sessionData string, request *requests.CreateAvailability) (*responses.Availability, error)
	FindByNutritionist(ctx context.Context, nutritionistID string, pagination *requests.Pagination) ([]responses.Availability, int, error)
	FindByNutritionistAndDateRange(ctx context.Context, nutritionistID string, dateRange *requests.DateRange) ([]responses.Availability, error)
	FindByID(ctx context.Context, sessionData, availabilityID string) (*responses.Availability, error)
	UpdateAvailability(ctx context.Context, sessionData, availabilityID string, request *requests.UpdateAvailability) (*responses.Availability, error)
	DeleteAvailability(ctx context.Context, sessionData, availabilityID string) error
}

type AvailabilityRepository interface {
	CreateAvailability(ctx context.Context, availability *models.Availability) (string, error)
	FindAvailabilityByID(ctx context.Context, availabilityID string) (*models.Availability, error)
	FindAvailabilitiesByNutritionist(ctx context.Context, nutritionistID string) ([]models.Availability, error)
	FindAvailabilitiesByNutritionistPaginated(ctx context.Context, nutritionistID string, page, pageSize int) ([]models.Availability, error)
	FindAvailabilitiesByNutritionistAndDateRange(ctx context.Context, nutritionistID, startDate, endDate string) ([]models.Availability, error)
	CountAvailabilitiesByNutritionist(ctx context.Context, nutritionistID string) (int64, error)
	UpdateAvailability(ctx context.Context, availability *models.Availability) error
	DeleteAvailability(ctx context.Context, availabilityID string) error
}
