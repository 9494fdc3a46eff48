package contracts

import (
	"context"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
)

type NutritionistUsecase interface {
	FindAll(ctx context.Context, pagination *requests.Pagination) ([]responses.Nutritionist, int, error)
	FindByID(ctx context.Context, nutritionistID string) (*responses.Nutritionist, error)
}
