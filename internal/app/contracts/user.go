package contracts

import (
	"context"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	GetCurrentUser(ctx context.Context, sessionData string) (*responses.User, error)
	UpdateCurrentUser(ctx context.Context, sessionData string, request *requests.UpdateUser) (*responses.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	FindUsersByType(ctx context.Context, userType string, page, pageSize int) ([]models.User, error)
	CountUsersByType(ctx context.Context, userType string) (int64, error)
	UpdateUser(ctx context.Context, user *models.User) error
}
