package contracts

import (
	"context"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
)

type ProfileUsecase interface {
	CreateMyProfile(ctx context.Context, sessionData string, request *requests.CreateProfile) (*responses.Profile, error)
	GetMyProfile(ctx context.Context, sessionData string) (*responses.Profile, error)
	UpdateMyProfile(ctx context.Context, sessionData string, request *requests.UpdateProfile) (*responses.Profile, error)
	GetProfileByUserID(ctx context.Context, sessionData, userID string) (*responses.Profile, error)
}

type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *models.Profile) (string, error)
	FindProfileByID(ctx context.Context, profileID string) (*models.Profile, error)
	FindProfileByUserID(ctx context.Context, userID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profile *models.Profile) error
}
