package profiles

import (
	"context"
	"nutricare-service/internal/app/config"
	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
	"nutricare-service/internal/pkg/exceptions"
	"nutricare-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type profileUsecase struct {
	ProfileRepository contracts.ProfileRepository
	SessionService    contracts.SessionService
	MinioStorage      contracts.Storage
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	profileUsecaseInstance contracts.ProfileUsecase
	onceProfileUsecase     sync.Once
)

func NewProfileUsecase(
	profileRepository contracts.ProfileRepository,
	sessionService contracts.SessionService,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ProfileUsecase {
	onceProfileUsecase.Do(func() {
		instance := &profileUsecase{
			ProfileRepository: profileRepository,
			SessionService:    sessionService,
			MinioStorage:      minioStorage,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
		profileUsecaseInstance = instance
	})
	return profileUsecaseInstance
}

func (uc *profileUsecase) CreateMyProfile(ctx context.Context, sessionData string, request *requests.CreateProfile) (*responses.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.CreateMyProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("profileUsecase.CreateMyProfile error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	existingProfile, err := uc.ProfileRepository.FindProfileByUserID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("profileUsecase.CreateMyProfile error checking existing profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingProfile != nil {
		return nil, exceptions.ErrProfileAlreadyExists(nil)
	}

	profile := &models.Profile{
		UserID:            session.UserID,
		Phone:             request.Phone,
		Address:           request.Address,
		DateOfBirth:       request.DateOfBirth,
		Bio:               request.Bio,
		Specialization:    request.Specialization,
		YearsOfExperience: request.YearsOfExperience,
	}

	if len(request.ProfileImageData) > 0 {
		objectName, err := uc.uploadProfileImage(ctx, session.Username, request.ProfileImageData, request.ProfileImageExtension)
		if err != nil {
			uc.Log.Error("profileUsecase.CreateMyProfile error uploading profile image",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		profile.ProfileImage = objectName
	}

	profile.SetCreatedAtUpdatedAt()

	profileID, err := uc.ProfileRepository.CreateProfile(ctx, profile)
	if err != nil {
		uc.Log.Error("profileUsecase.CreateMyProfile error creating profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	profile.ID = profileID

	response, err := uc.buildProfileResponse(ctx, profile)
	if err != nil {
		uc.Log.Error("profileUsecase.CreateMyProfile error building profile response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("profileUsecase.CreateMyProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfileIDKey, profileID),
	)
	return response, nil
}

func (uc *profileUsecase) GetMyProfile(ctx context.Context, sessionData string) (*responses.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.GetMyProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("profileUsecase.GetMyProfile error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	profile, err := uc.ProfileRepository.FindProfileByUserID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("profileUsecase.GetMyProfile error fetching profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotFound(nil)
	}

	response, err := uc.buildProfileResponse(ctx, profile)
	if err != nil {
		uc.Log.Error("profileUsecase.GetMyProfile error building profile response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("profileUsecase.GetMyProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return response, nil
}

func (uc *profileUsecase) UpdateMyProfile(ctx context.Context, sessionData string, request *requests.UpdateProfile) (*responses.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UpdateMyProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("profileUsecase.UpdateMyProfile error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	profile, err := uc.ProfileRepository.FindProfileByUserID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("profileUsecase.UpdateMyProfile error fetching profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotFound(nil)
	}

	if request.Phone != "" {
		profile.Phone = request.Phone
	}
	if request.Address != "" {
		profile.Address = request.Address
	}
	if request.DateOfBirth != "" {
		profile.DateOfBirth = request.DateOfBirth
	}
	if request.Bio != "" {
		profile.Bio = request.Bio
	}
	if request.Specialization != "" {
		profile.Specialization = request.Specialization
	}
	if request.YearsOfExperience != nil {
		profile.YearsOfExperience = request.YearsOfExperience
	}

	if len(request.ProfileImageData) > 0 {
		objectName, err := uc.uploadProfileImage(ctx, session.Username, request.ProfileImageData, request.ProfileImageExtension)
		if err != nil {
			uc.Log.Error("profileUsecase.UpdateMyProfile error uploading profile image",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		profile.ProfileImage = objectName
	}

	profile.SetUpdatedAt()

	err = uc.ProfileRepository.UpdateProfile(ctx, profile)
	if err != nil {
		uc.Log.Error("profileUsecase.UpdateMyProfile error updating profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response, err := uc.buildProfileResponse(ctx, profile)
	if err != nil {
		uc.Log.Error("profileUsecase.UpdateMyProfile error building profile response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("profileUsecase.UpdateMyProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfileIDKey, profile.ID),
	)
	return response, nil
}

func (uc *profileUsecase) GetProfileByUserID(ctx context.Context, sessionData, userID string) (*responses.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.GetProfileByUserID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("profileUsecase.GetProfileByUserID error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if userID != session.UserID && session.IsClient() {
		return nil, exceptions.ErrProfileNotAccessible(nil)
	}

	profile, err := uc.ProfileRepository.FindProfileByUserID(ctx, userID)
	if err != nil {
		uc.Log.Error("profileUsecase.GetProfileByUserID error fetching profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotFound(nil)
	}

	response, err := uc.buildProfileResponse(ctx, profile)
	if err != nil {
		uc.Log.Error("profileUsecase.GetProfileByUserID error building profile response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("profileUsecase.GetProfileByUserID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return response, nil
}

func (uc *profileUsecase) uploadProfileImage(ctx context.Context, username string, imageData []byte, fileExtension string) (string, error) {
	fileName := utils.GenerateFileName(constvars.ImageProfilePicturePrefix, username, fileExtension)
	return uc.MinioStorage.UploadBase64Image(
		ctx,
		imageData,
		uc.InternalConfig.Minio.BucketName,
		fileName,
		fileExtension,
	)
}

func (uc *profileUsecase) buildProfileResponse(ctx context.Context, profile *models.Profile) (*responses.Profile, error) {
	response := &responses.Profile{
		ID:                profile.ID,
		UserID:            profile.UserID,
		Phone:             profile.Phone,
		Address:           profile.Address,
		DateOfBirth:       profile.DateOfBirth,
		Bio:               profile.Bio,
		Specialization:    profile.Specialization,
		YearsOfExperience: profile.YearsOfExperience,
	}

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
