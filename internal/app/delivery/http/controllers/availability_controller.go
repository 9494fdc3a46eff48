package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/exceptions"
	"nutricare-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase contracts.AvailabilityUsecase
}

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase contracts.AvailabilityUsecase) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		AvailabilityUsecase: availabilityUsecase,
	}
}

func (ctrl *AvailabilityController) CreateAvailability(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AvailabilityController.CreateAvailability requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		ctrl.Log.Error("AvailabilityController.CreateAvailability sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	ctrl.Log.Info("AvailabilityController.CreateAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.CreateAvailability)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		ctrl.Log.Error("AvailabilityController.CreateAvailability failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("AvailabilityController.CreateAvailability validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AvailabilityUsecase.CreateAvailability(ctx, sessionData, request)
	if err != nil {
		ctrl.Log.Error("AvailabilityController.CreateAvailability AvailabilityUsecase.CreateAvailability error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AvailabilityController.CreateAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAvailabilityIDKey, response.ID))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAvailabilitySuccessMessage, response)
}

func (ctrl *AvailabilityController) FindByNutritionist(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AvailabilityController.FindByNutritionist requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	nutritionistID := r.URL.Query().Get(constvars.URLParamNutritionistID)
	if err := utils.ValidateUrlParamID(nutritionistID); err != nil {
		ctrl.Log.Error("AvailabilityController.FindByNutritionist invalid nutritionist id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamNutritionistID))
		return
	}

	ctrl.Log.Info("AvailabilityController.FindByNutritionist called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNutritionistIDKey, nutritionistID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pagination := utils.BuildPaginationRequest(r)
	response, total, err := ctrl.AvailabilityUsecase.FindByNutritionist(ctx, nutritionistID, pagination)
	if err != nil {
		ctrl.Log.Error("AvailabilityController.FindByNutritionist AvailabilityUsecase.FindByNutritionist error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AvailabilityController.FindByNutritionist succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetAvailabilitiesSuccessMessage, paginationResponse, response)
}

func (ctrl *AvailabilityController) FindByDateRange(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AvailabilityController.FindByDateRange requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	nutritionistID := r.URL.Query().Get(constvars.URLParamNutritionistID)
	if err := utils.ValidateUrlParamID(nutritionistID); err != nil {
		ctrl.Log.Error("AvailabilityController.FindByDateRange invalid nutritionist id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamNutritionistID))
		return
	}

	dateRange := &requests.DateRange{
		StartDate: r.URL.Query().Get(constvars.URLQueryParamStartDate),
		EndDate:   r.URL.Query().Get(constvars.URLQueryParamEndDate),
	}

	err := utils.ValidateStruct(dateRange)
	if err != nil {
		ctrl.Log.Error("AvailabilityController.FindByDateRange validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctrl.Log.Info("AvailabilityController.FindByDateRange called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNutritionistIDKey, nutritionistID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AvailabilityUsecase.FindByNutritionistAndDateRange(ctx, nutritionistID, dateRange)
	if err != nil {
		ctrl.Log.Error("AvailabilityController.FindByDateRange AvailabilityUsecase.FindByNutritionistAndDateRange error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AvailabilityController.FindByDateRange succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitiesSuccessMessage, response)
}

func (ctrl *AvailabilityController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AvailabilityController.FindByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		ctrl.Log.Error("AvailabilityController.FindByID sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	availabilityID := chi.URLParam(r, constvars.URLParamAvailabilityID)
	if err := utils.ValidateUrlParamID(availabilityID); err != nil {
		ctrl.Log.Error("AvailabilityController.FindByID invalid availability id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamAvailabilityID))
		return
	}

	ctrl.Log.Info("AvailabilityController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAvailabilityIDKey, availabilityID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AvailabilityUsecase.FindByID(ctx, sessionData, availabilityID)
	if err != nil {
		ctrl.Log.Error("AvailabilityController.FindByID AvailabilityUsecase.FindByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AvailabilityController.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccessMessage, response)
}

func (ctrl *AvailabilityController) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AvailabilityController.UpdateAvailability requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		ctrl.Log.Error("AvailabilityController.UpdateAvailability sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	availabilityID := chi.URLParam(r, constvars.URLParamAvailabilityID)
	if err := utils.ValidateUrlParamID(availabilityID); err != nil {
		ctrl.Log.Error("AvailabilityController.UpdateAvailability invalid availability id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamAvailabilityID))
		return
	}

	ctrl.Log.Info("AvailabilityController.UpdateAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAvailabilityIDKey, availabilityID))

	request := new(requests.UpdateAvailability)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		ctrl.Log.Error("AvailabilityController.UpdateAvailability failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("AvailabilityController.UpdateAvailability validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AvailabilityUsecase.UpdateAvailability(ctx, sessionData, availabilityID, request)
	if err != nil {
		ctrl.Log.Error("AvailabilityController.UpdateAvailability AvailabilityUsecase.UpdateAvailability error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AvailabilityController.UpdateAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAvailabilitySuccessMessage, response)
}

func (ctrl *AvailabilityController) DeleteAvailability(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AvailabilityController.DeleteAvailability requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		ctrl.Log.Error("AvailabilityController.DeleteAvailability sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	availabilityID := chi.URLParam(r, constvars.URLParamAvailabilityID)
	if err := utils.ValidateUrlParamID(availabilityID); err != nil {
		ctrl.Log.Error("AvailabilityController.DeleteAvailability invalid availability id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamAvailabilityID))
		return
	}

	ctrl.Log.Info("AvailabilityController.DeleteAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAvailabilityIDKey, availabilityID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.AvailabilityUsecase.DeleteAvailability(ctx, sessionData, availabilityID)
	if err != nil {
		ctrl.Log.Error("AvailabilityController.DeleteAvailability AvailabilityUsecase.DeleteAvailability error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AvailabilityController.DeleteAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAvailabilitySuccessMessage, nil)
}
