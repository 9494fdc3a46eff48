package users

import (
	"context"
	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
	"nutricare-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	Log            *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		instance := &userUsecase{
			UserRepository: userRepository,
			SessionService: sessionService,
			Log:            logger,
		}
		userUsecaseInstance = instance
	})
	return userUsecaseInstance
}

func (uc *userUsecase) GetCurrentUser(ctx context.Context, sessionData string) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetCurrentUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("userUsecase.GetCurrentUser error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	user, err := uc.UserRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("userUsecase.GetCurrentUser error fetching user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}

	uc.Log.Info("userUsecase.GetCurrentUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return buildUserResponse(user), nil
}

func (uc *userUsecase) UpdateCurrentUser(ctx context.Context, sessionData string, request *requests.UpdateUser) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateCurrentUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("userUsecase.UpdateCurrentUser error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	user, err := uc.UserRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("userUsecase.UpdateCurrentUser error fetching user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}

	if request.Email != "" && request.Email != user.Email {
		existingUser, err := uc.UserRepository.FindUserByEmail(ctx, request.Email)
		if err != nil {
			uc.Log.Error("userUsecase.UpdateCurrentUser error checking email uniqueness",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		if existingUser != nil {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
		user.Email = request.Email
	}
	if request.FullName != "" {
		user.FullName = request.FullName
	}
	user.SetUpdatedAt()

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		uc.Log.Error("userUsecase.UpdateCurrentUser error updating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.UpdateCurrentUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return buildUserResponse(user), nil
}

func buildUserResponse(user *models.User) *responses.User {
	return &responses.User{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
		FullName: user.FullName,
		UserType: user.UserType,
		IsActive: user.IsActive,
	}
}
