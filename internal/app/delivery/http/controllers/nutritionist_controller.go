package controllers

import (
	"context"
	"errors"
	"net/http"
	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/exceptions"
	"nutricare-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NutritionistController struct {
	Log                 *zap.Logger
	NutritionistUsecase contracts.NutritionistUsecase
}

func NewNutritionistController(logger *zap.Logger, nutritionistUsecase contracts.NutritionistUsecase) *NutritionistController {
	return &NutritionistController{
		Log:                 logger,
		NutritionistUsecase: nutritionistUsecase,
	}
}

func (ctrl *NutritionistController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("NutritionistController.FindAll requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("NutritionistController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pagination := utils.BuildPaginationRequest(r)
	response, total, err := ctrl.NutritionistUsecase.FindAll(ctx, pagination)
	if err != nil {
		ctrl.Log.Error("NutritionistController.FindAll NutritionistUsecase.FindAll error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("NutritionistController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetNutritionistsSuccessMessage, paginationResponse, response)
}

func (ctrl *NutritionistController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("NutritionistController.FindByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	nutritionistID := chi.URLParam(r, constvars.URLParamNutritionistID)
	if err := utils.ValidateUrlParamID(nutritionistID); err != nil {
		ctrl.Log.Error("NutritionistController.FindByID invalid nutritionist id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamNutritionistID))
		return
	}

	ctrl.Log.Info("NutritionistController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNutritionistIDKey, nutritionistID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.NutritionistUsecase.FindByID(ctx, nutritionistID)
	if err != nil {
		ctrl.Log.Error("NutritionistController.FindByID NutritionistUsecase.FindByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("NutritionistController.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNutritionistSuccessMessage, response)
}
