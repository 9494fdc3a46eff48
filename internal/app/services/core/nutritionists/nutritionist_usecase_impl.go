package nutritionists

import (
	"context"
	"nutricare-service/internal/app/config"
	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
	"nutricare-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type nutritionistUsecase struct {
	UserRepository    contracts.UserRepository
	ProfileRepository contracts.ProfileRepository
	MinioStorage      contracts.Storage
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	nutritionistUsecaseInstance contracts.NutritionistUsecase
	onceNutritionistUsecase     sync.Once
)

func NewNutritionistUsecase(
	userRepository contracts.UserRepository,
	profileRepository contracts.ProfileRepository,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.NutritionistUsecase {
	onceNutritionistUsecase.Do(func() {
		instance := &nutritionistUsecase{
			UserRepository:    userRepository,
			ProfileRepository: profileRepository,
			MinioStorage:      minioStorage,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
		nutritionistUsecaseInstance = instance
	})
	return nutritionistUsecaseInstance
}

func (uc *nutritionistUsecase) FindAll(ctx context.Context, pagination *requests.Pagination) ([]responses.Nutritionist, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("nutritionistUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPageKey, pagination.Page),
		zap.Int(constvars.LoggingPageSizeKey, pagination.PageSize),
	)

	users, err := uc.UserRepository.FindUsersByType(ctx, constvars.NutriCareRoleNutritionist, pagination.Page, pagination.PageSize)
	if err != nil {
		uc.Log.Error("nutritionistUsecase.FindAll error fetching nutritionists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	total, err := uc.UserRepository.CountUsersByType(ctx, constvars.NutriCareRoleNutritionist)
	if err != nil {
		uc.Log.Error("nutritionistUsecase.FindAll error counting nutritionists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	nutritionists := make([]responses.Nutritionist, 0, len(users))
	for i := range users {
		response, err := uc.buildNutritionistResponse(ctx, &users[i])
		if err != nil {
			uc.Log.Error("nutritionistUsecase.FindAll error building nutritionist response",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUserIDKey, users[i].ID),
				zap.Error(err),
			)
			return nil, 0, err
		}
		nutritionists = append(nutritionists, *response)
	}

	uc.Log.Info("nutritionistUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTotalKey, total),
	)
	return nutritionists, int(total), nil
}

func (uc *nutritionistUsecase) FindByID(ctx context.Context, nutritionistID string) (*responses.Nutritionist, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("nutritionistUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNutritionistIDKey, nutritionistID),
	)

	user, err := uc.UserRepository.FindUserByID(ctx, nutritionistID)
	if err != nil {
		uc.Log.Error("nutritionistUsecase.FindByID error fetching user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil || user.UserType != constvars.NutriCareRoleNutritionist {
		return nil, exceptions.ErrNutritionistNotFound(nil)
	}

	response, err := uc.buildNutritionistResponse(ctx, user)
	if err != nil {
		uc.Log.Error("nutritionistUsecase.FindByID error building nutritionist response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("nutritionistUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return response, nil
}

func (uc *nutritionistUsecase) buildNutritionistResponse(ctx context.Context, user *models.User) (*responses.Nutritionist, error) {
	response := &responses.Nutritionist{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
	}

	profile, err := uc.ProfileRepository.FindProfileByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return response, nil
	}

	response.Bio = profile.Bio
	response.Specialization = profile.Specialization
	response.YearsOfExperience = profile.YearsOfExperience

	if profile.ProfileImage != "" {
		imageURL, err := uc.MinioStorage.GetObjectUrlWithExpiryTime(
			ctx,
			uc.InternalConfig.Minio.BucketName,
			profile.ProfileImage,
			time.Duration(constvars.MinioPresignedURLExpiryInHour)*time.Hour,
		)
		if err != nil {
			return nil, err
		}
		response.ProfileImage = imageURL
	}

	return response, nil
}
