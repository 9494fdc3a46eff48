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

type NutritionRecordController struct {
	Log                    *zap.Logger
	NutritionRecordUsecase contracts.NutritionRecordUsecase
}

func NewNutritionRecordController(logger *zap.Logger, nutritionRecordUsecase contracts.NutritionRecordUsecase) *NutritionRecordController {
	return &NutritionRecordController{
		Log:                    logger,
		NutritionRecordUsecase: nutritionRecordUsecase,
	}
}

func (ctrl *NutritionRecordController) CreateNutritionRecord(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("NutritionRecordController.CreateNutritionRecord requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		ctrl.Log.Error("NutritionRecordController.CreateNutritionRecord sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	ctrl.Log.Info("NutritionRecordController.CreateNutritionRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.CreateNutritionRecord)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		ctrl.Log.Error("NutritionRecordController.CreateNutritionRecord failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateNutritionRecordRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("NutritionRecordController.CreateNutritionRecord validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.NutritionRecordUsecase.CreateNutritionRecord(ctx, sessionData, request)
	if err != nil {
		ctrl.Log.Error("NutritionRecordController.CreateNutritionRecord NutritionRecordUsecase.CreateNutritionRecord error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("NutritionRecordController.CreateNutritionRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, response.ID))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateNutritionRecordSuccessMessage, response)
}

func (ctrl *NutritionRecordController) FindMyRecords(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("NutritionRecordController.FindMyRecords requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		ctrl.Log.Error("NutritionRecordController.FindMyRecords sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	ctrl.Log.Info("NutritionRecordController.FindMyRecords called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pagination := utils.BuildPaginationRequest(r)
	response, total, err := ctrl.NutritionRecordUsecase.FindMyRecords(ctx, sessionData, pagination)
	if err != nil {
		ctrl.Log.Error("NutritionRecordController.FindMyRecords NutritionRecordUsecase.FindMyRecords error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("NutritionRecordController.FindMyRecords succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetNutritionRecordsSuccessMessage, paginationResponse, response)
}

func (ctrl *NutritionRecordController) FindByClient(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("NutritionRecordController.FindByClient requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		ctrl.Log.Error("NutritionRecordController.FindByClient sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	clientID := chi.URLParam(r, constvars.URLParamClientID)
	if err := utils.ValidateUrlParamID(clientID); err != nil {
		ctrl.Log.Error("NutritionRecordController.FindByClient invalid client id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamClientID))
		return
	}

	ctrl.Log.Info("NutritionRecordController.FindByClient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientIDKey, clientID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pagination := utils.BuildPaginationRequest(r)
	response, total, err := ctrl.NutritionRecordUsecase.FindByClient(ctx, sessionData, clientID, pagination)
	if err != nil {
		ctrl.Log.Error("NutritionRecordController.FindByClient NutritionRecordUsecase.FindByClient error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("NutritionRecordController.FindByClient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetNutritionRecordsSuccessMessage, paginationResponse, response)
}

func (ctrl *NutritionRecordController) FindByClientAndDateRange(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("NutritionRecordController.FindByClientAndDateRange requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		ctrl.Log.Error("NutritionRecordController.FindByClientAndDateRange sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	clientID := chi.URLParam(r, constvars.URLParamClientID)
	if err := utils.ValidateUrlParamID(clientID); err != nil {
		ctrl.Log.Error("NutritionRecordController.FindByClientAndDateRange invalid client id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamClientID))
		return
	}

	dateRange := &requests.DateRange{
		StartDate: r.URL.Query().Get(constvars.URLQueryParamStartDate),
		EndDate:   r.URL.Query().Get(constvars.URLQueryParamEndDate),
	}

	err := utils.ValidateStruct(dateRange)
	if err != nil {
		ctrl.Log.Error("NutritionRecordController.FindByClientAndDateRange validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctrl.Log.Info("NutritionRecordController.FindByClientAndDateRange called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientIDKey, clientID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.NutritionRecordUsecase.FindByClientAndDateRange(ctx, sessionData, clientID, dateRange)
	if err != nil {
		ctrl.Log.Error("NutritionRecordController.FindByClientAndDateRange NutritionRecordUsecase.FindByClientAndDateRange error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("NutritionRecordController.FindByClientAndDateRange succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNutritionRecordsSuccessMessage, response)
}

func (ctrl *NutritionRecordController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("NutritionRecordController.FindByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		ctrl.Log.Error("NutritionRecordController.FindByID sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	recordID := chi.URLParam(r, constvars.URLParamRecordID)
	if err := utils.ValidateUrlParamID(recordID); err != nil {
		ctrl.Log.Error("NutritionRecordController.FindByID invalid record id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamRecordID))
		return
	}

	ctrl.Log.Info("NutritionRecordController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.NutritionRecordUsecase.FindByID(ctx, sessionData, recordID)
	if err != nil {
		ctrl.Log.Error("NutritionRecordController.FindByID NutritionRecordUsecase.FindByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("NutritionRecordController.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNutritionRecordSuccessMessage, response)
}

func (ctrl *NutritionRecordController) UpdateNutritionRecord(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("NutritionRecordController.UpdateNutritionRecord requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		ctrl.Log.Error("NutritionRecordController.UpdateNutritionRecord sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	recordID := chi.URLParam(r, constvars.URLParamRecordID)
	if err := utils.ValidateUrlParamID(recordID); err != nil {
		ctrl.Log.Error("NutritionRecordController.UpdateNutritionRecord invalid record id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamRecordID))
		return
	}

	ctrl.Log.Info("NutritionRecordController.UpdateNutritionRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID))

	request := new(requests.UpdateNutritionRecord)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		ctrl.Log.Error("NutritionRecordController.UpdateNutritionRecord failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("NutritionRecordController.UpdateNutritionRecord validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.NutritionRecordUsecase.UpdateNutritionRecord(ctx, sessionData, recordID, request)
	if err != nil {
		ctrl.Log.Error("NutritionRecordController.UpdateNutritionRecord NutritionRecordUsecase.UpdateNutritionRecord error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("NutritionRecordController.UpdateNutritionRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateNutritionRecordSuccessMessage, response)
}

func (ctrl *NutritionRecordController) DeleteNutritionRecord(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("NutritionRecordController.DeleteNutritionRecord requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		ctrl.Log.Error("NutritionRecordController.DeleteNutritionRecord sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	recordID := chi.URLParam(r, constvars.URLParamRecordID)
	if err := utils.ValidateUrlParamID(recordID); err != nil {
		ctrl.Log.Error("NutritionRecordController.DeleteNutritionRecord invalid record id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamRecordID))
		return
	}

	ctrl.Log.Info("NutritionRecordController.DeleteNutritionRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.NutritionRecordUsecase.DeleteNutritionRecord(ctx, sessionData, recordID)
	if err != nil {
		ctrl.Log.Error("NutritionRecordController.DeleteNutritionRecord NutritionRecordUsecase.DeleteNutritionRecord error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("NutritionRecordController.DeleteNutritionRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteNutritionRecordSuccessMessage, nil)
}
