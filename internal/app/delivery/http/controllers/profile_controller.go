package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"nutricare-service/internal/app/config"
	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/exceptions"
	"nutricare-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProfileController struct {
	Log            *zap.Logger
	ProfileUsecase contracts.ProfileUsecase
	InternalConfig *config.InternalConfig
}

func NewProfileController(logger *zap.Logger, profileUsecase contracts.ProfileUsecase, internalConfig *config.InternalConfig) *ProfileController {
	return &ProfileController{
		Log:            logger,
		ProfileUsecase: profileUsecase,
		InternalConfig: internalConfig,
	}
}

// decodeProfileImage turns the optional base64 data-URI carried by the
// request into raw bytes plus extension, enforcing format and size limits.
func (ctrl *ProfileController) decodeProfileImage(encodedImage string) ([]byte, string, error) {
	if encodedImage == "" {
		return nil, "", nil
	}

	imageData, fileExtension, err := utils.DecodeBase64Image(encodedImage)
	if err != nil {
		return nil, "", exceptions.ErrImageValidation(err)
	}
	if err := utils.ValidateImageFormat(fileExtension, constvars.ImageAllowedProfilePictureFormats); err != nil {
		return nil, "", exceptions.ErrImageValidation(err)
	}
	if err := utils.ValidateImageSize(imageData, ctrl.InternalConfig.Minio.ProfilePictureMaxUploadSizeInMB); err != nil {
		return nil, "", exceptions.ErrImageValidation(err)
	}
	return imageData, fileExtension, nil
}

func (ctrl *ProfileController) CreateMyProfile(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ProfileController.CreateMyProfile requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		ctrl.Log.Error("ProfileController.CreateMyProfile sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	ctrl.Log.Info("ProfileController.CreateMyProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.CreateProfile)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		ctrl.Log.Error("ProfileController.CreateMyProfile failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateProfileRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("ProfileController.CreateMyProfile validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	request.ProfileImageData, request.ProfileImageExtension, err = ctrl.decodeProfileImage(request.ProfileImage)
	if err != nil {
		ctrl.Log.Error("ProfileController.CreateMyProfile invalid profile image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ProfileUsecase.CreateMyProfile(ctx, sessionData, request)
	if err != nil {
		ctrl.Log.Error("ProfileController.CreateMyProfile ProfileUsecase.CreateMyProfile error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ProfileController.CreateMyProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateProfileSuccessMessage, response)
}

func (ctrl *ProfileController) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ProfileController.GetMyProfile requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		ctrl.Log.Error("ProfileController.GetMyProfile sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	ctrl.Log.Info("ProfileController.GetMyProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ProfileUsecase.GetMyProfile(ctx, sessionData)
	if err != nil {
		ctrl.Log.Error("ProfileController.GetMyProfile ProfileUsecase.GetMyProfile error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ProfileController.GetMyProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, response)
}

func (ctrl *ProfileController) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ProfileController.UpdateMyProfile requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		ctrl.Log.Error("ProfileController.UpdateMyProfile sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	ctrl.Log.Info("ProfileController.UpdateMyProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.UpdateProfile)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		ctrl.Log.Error("ProfileController.UpdateMyProfile failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpdateProfileRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("ProfileController.UpdateMyProfile validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	request.ProfileImageData, request.ProfileImageExtension, err = ctrl.decodeProfileImage(request.ProfileImage)
	if err != nil {
		ctrl.Log.Error("ProfileController.UpdateMyProfile invalid profile image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ProfileUsecase.UpdateMyProfile(ctx, sessionData, request)
	if err != nil {
		ctrl.Log.Error("ProfileController.UpdateMyProfile ProfileUsecase.UpdateMyProfile error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ProfileController.UpdateMyProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProfileSuccessMessage, response)
}

func (ctrl *ProfileController) GetProfileByUserID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ProfileController.GetProfileByUserID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		ctrl.Log.Error("ProfileController.GetProfileByUserID sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	userID := chi.URLParam(r, constvars.URLParamUserID)
	if err := utils.ValidateUrlParamID(userID); err != nil {
		ctrl.Log.Error("ProfileController.GetProfileByUserID invalid user id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamUserID))
		return
	}

	ctrl.Log.Info("ProfileController.GetProfileByUserID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ProfileUsecase.GetProfileByUserID(ctx, sessionData, userID)
	if err != nil {
		ctrl.Log.Error("ProfileController.GetProfileByUserID ProfileUsecase.GetProfileByUserID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ProfileController.GetProfileByUserID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, response)
}
