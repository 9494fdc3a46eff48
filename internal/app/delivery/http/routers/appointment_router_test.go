package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"nutricare-service/internal/app/config"
	"nutricare-service/internal/app/delivery/http/controllers"
	"nutricare-service/internal/app/delivery/http/middlewares"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
	"nutricare-service/internal/pkg/utils"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) CreateAppointment(ctx context.Context, sessionData string, request *requests.CreateAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, sessionData, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) FindAll(ctx context.Context, sessionData, status string, pagination *requests.Pagination) ([]responses.Appointment, int, error) {
	args := m.Called(ctx, sessionData, status, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]responses.Appointment), args.Int(1), args.Error(2)
}

func (m *MockAppointmentUsecase) FindByDateRange(ctx context.Context, sessionData string, dateRange *requests.DateRange, status string) ([]responses.Appointment, error) {
	args := m.Called(ctx, sessionData, dateRange, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) FindByID(ctx context.Context, sessionData, appointmentID string) (*responses.Appointment, error) {
	args := m.Called(ctx, sessionData, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) UpdateAppointment(ctx context.Context, sessionData, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, sessionData, appointmentID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) CancelAppointment(ctx context.Context, sessionData, appointmentID string) error {
	args := m.Called(ctx, sessionData, appointmentID)
	return args.Error(0)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

const testJWTSecret = "test-jwt-secret"

func newAppointmentTestRouter(t *testing.T, appointmentUsecase *MockAppointmentUsecase, sessionService *MockSessionService) *chi.Mux {
	t.Helper()

	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: testJWTSecret, ExpTimeInHour: 1},
	}

	mws := middlewares.NewMiddlewares(logger, sessionService, internalConfig)
	appointmentController := controllers.NewAppointmentController(logger, appointmentUsecase)

	router := chi.NewRouter()
	router.Use(mws.RequestID)
	router.Route("/appointments", func(r chi.Router) {
		attachAppointmentRoutes(r, mws, appointmentController)
	})
	return router
}

func bearerToken(t *testing.T, sessionID string) string {
	t.Helper()
	token, err := utils.GenerateSessionJWT(sessionID, testJWTSecret, 1)
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return "Bearer " + token
}

func TestAppointmentRouter_Authentication(t *testing.T) {
	mockUsecase := new(MockAppointmentUsecase)
	mockSession := new(MockSessionService)
	router := newAppointmentTestRouter(t, mockUsecase, mockSession)

	t.Run("Create without token is rejected", func(t *testing.T) {
		body, _ := json.Marshal(requests.CreateAppointment{
			NutritionistID: "66a0c1f2e4b0a5d3c2b1a099",
			Date:           "2030-04-02",
			StartTime:      "10:00",
			EndTime:        "11:00",
		})

		req := httptest.NewRequest("POST", "/appointments/", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockUsecase.AssertNotCalled(t, "CreateAppointment")
	})

	t.Run("Create with unknown session is rejected", func(t *testing.T) {
		mockSession.On("GetSessionData", mock.Anything, "dead-session").
			Return("", assert.AnError).Once()

		body, _ := json.Marshal(requests.CreateAppointment{
			NutritionistID: "66a0c1f2e4b0a5d3c2b1a099",
			Date:           "2030-04-02",
			StartTime:      "10:00",
			EndTime:        "11:00",
		})

		req := httptest.NewRequest("POST", "/appointments/", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerToken(t, "dead-session"))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockUsecase.AssertNotCalled(t, "CreateAppointment")
	})
}

func TestAppointmentRouter_Create(t *testing.T) {
	sessionJSON := `{"SessionID":"sess-1","UserID":"66a0c1f2e4b0a5d3c2b1a001","UserType":"client"}`

	t.Run("Valid booking request reaches the usecase", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		mockSession := new(MockSessionService)
		router := newAppointmentTestRouter(t, mockUsecase, mockSession)

		mockSession.On("GetSessionData", mock.Anything, "sess-1").Return(sessionJSON, nil)
		mockUsecase.On("CreateAppointment", mock.Anything, sessionJSON, mock.AnythingOfType("*requests.CreateAppointment")).
			Return(&responses.Appointment{
				ID:             "66a0c1f2e4b0a5d3c2b1a777",
				ClientID:       "66a0c1f2e4b0a5d3c2b1a001",
				NutritionistID: "66a0c1f2e4b0a5d3c2b1a099",
				Date:           "2030-04-02",
				StartTime:      "10:00",
				EndTime:        "11:00",
				Status:         "scheduled",
			}, nil)

		body, _ := json.Marshal(requests.CreateAppointment{
			NutritionistID: "66a0c1f2e4b0a5d3c2b1a099",
			Date:           "2030-04-02",
			StartTime:      "10:00",
			EndTime:        "11:00",
		})

		req := httptest.NewRequest("POST", "/appointments/", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerToken(t, "sess-1"))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockUsecase.AssertExpectations(t)

		var response responses.ResponseDTO
		err := json.Unmarshal(rr.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.True(t, response.Success)
	})

	t.Run("Malformed time is rejected before the usecase", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		mockSession := new(MockSessionService)
		router := newAppointmentTestRouter(t, mockUsecase, mockSession)

		mockSession.On("GetSessionData", mock.Anything, "sess-1").Return(sessionJSON, nil)

		body, _ := json.Marshal(requests.CreateAppointment{
			NutritionistID: "66a0c1f2e4b0a5d3c2b1a099",
			Date:           "2030-04-02",
			StartTime:      "ten o'clock",
			EndTime:        "11:00",
		})

		req := httptest.NewRequest("POST", "/appointments/", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerToken(t, "sess-1"))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "CreateAppointment")
	})

	t.Run("Invalid JSON body is rejected", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		mockSession := new(MockSessionService)
		router := newAppointmentTestRouter(t, mockUsecase, mockSession)

		mockSession.On("GetSessionData", mock.Anything, "sess-1").Return(sessionJSON, nil)

		req := httptest.NewRequest("POST", "/appointments/", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerToken(t, "sess-1"))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "CreateAppointment")
	})
}

func TestAppointmentRouter_Cancel(t *testing.T) {
	sessionJSON := `{"SessionID":"sess-1","UserID":"66a0c1f2e4b0a5d3c2b1a001","UserType":"client"}`
	appointmentID := "66a0c1f2e4b0a5d3c2b1a777"

	t.Run("Cancel delegates to the usecase", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		mockSession := new(MockSessionService)
		router := newAppointmentTestRouter(t, mockUsecase, mockSession)

		mockSession.On("GetSessionData", mock.Anything, "sess-1").Return(sessionJSON, nil)
		mockUsecase.On("CancelAppointment", mock.Anything, sessionJSON, appointmentID).Return(nil)

		req := httptest.NewRequest("DELETE", "/appointments/"+appointmentID, nil)
		req.Header.Set("Authorization", bearerToken(t, "sess-1"))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUsecase.AssertExpectations(t)

		var response responses.ResponseDTO
		err := json.Unmarshal(rr.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "Appointment cancelled successfully", response.Message)
	})

	t.Run("Cancel with malformed id is rejected", func(t *testing.T) {
		mockUsecase := new(MockAppointmentUsecase)
		mockSession := new(MockSessionService)
		router := newAppointmentTestRouter(t, mockUsecase, mockSession)

		mockSession.On("GetSessionData", mock.Anything, "sess-1").Return(sessionJSON, nil)

		req := httptest.NewRequest("DELETE", "/appointments/not-an-object-id", nil)
		req.Header.Set("Authorization", bearerToken(t, "sess-1"))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "CancelAppointment")
	})
}
