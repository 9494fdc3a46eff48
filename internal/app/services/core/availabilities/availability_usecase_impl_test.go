package availabilities

import (
	"context"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAvailabilityRepository struct {
	mock.Mock
}

func (m *MockAvailabilityRepository) CreateAvailability(ctx context.Context, availability *models.Availability) (string, error) {
	args := m.Called(ctx, availability)
	return args.String(0), args.Error(1)
}

func (m *MockAvailabilityRepository) FindAvailabilityByID(ctx context.Context, availabilityID string) (*models.Availability, error) {
	args := m.Called(ctx, availabilityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Availability), args.Error(1)
}

func (m *MockAvailabilityRepository) FindAvailabilitiesByNutritionist(ctx context.Context, nutritionistID string) ([]models.Availability, error) {
	args := m.Called(ctx, nutritionistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Availability), args.Error(1)
}

func (m *MockAvailabilityRepository) FindAvailabilitiesByNutritionistPaginated(ctx context.Context, nutritionistID string, page, pageSize int) ([]models.Availability, error) {
	args := m.Called(ctx, nutritionistID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Availability), args.Error(1)
}

func (m *MockAvailabilityRepository) FindAvailabilitiesByNutritionistAndDateRange(ctx context.Context, nutritionistID, startDate, endDate string) ([]models.Availability, error) {
	args := m.Called(ctx, nutritionistID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Availability), args.Error(1)
}

func (m *MockAvailabilityRepository) CountAvailabilitiesByNutritionist(ctx context.Context, nutritionistID string) (int64, error) {
	args := m.Called(ctx, nutritionistID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAvailabilityRepository) UpdateAvailability(ctx context.Context, availability *models.Availability) error {
	args := m.Called(ctx, availability)
	return args.Error(0)
}

func (m *MockAvailabilityRepository) DeleteAvailability(ctx context.Context, availabilityID string) error {
	args := m.Called(ctx, availabilityID)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindUsersByType(ctx context.Context, userType string, page, pageSize int) ([]models.User, error) {
	args := m.Called(ctx, userType, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) CountUsersByType(ctx context.Context, userType string) (int64, error) {
	args := m.Called(ctx, userType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
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

type availabilityMocks struct {
	AvailabilityRepository *MockAvailabilityRepository
	UserRepository         *MockUserRepository
	SessionService         *MockSessionService
}

func newAvailabilityUsecaseForTest() (*availabilityUsecase, *availabilityMocks) {
	mocks := &availabilityMocks{
		AvailabilityRepository: new(MockAvailabilityRepository),
		UserRepository:         new(MockUserRepository),
		SessionService:         new(MockSessionService),
	}
	uc := &availabilityUsecase{
		AvailabilityRepository: mocks.AvailabilityRepository,
		UserRepository:         mocks.UserRepository,
		SessionService:         mocks.SessionService,
		Log:                    zap.NewNop(),
	}
	return uc, mocks
}

func nutritionistSession() *models.Session {
	return &models.Session{
		SessionID: "sess-1",
		UserID:    "nutritionist-1",
		UserType:  constvars.NutriCareRoleNutritionist,
	}
}

func clientSession() *models.Session {
	return &models.Session{
		SessionID: "sess-2",
		UserID:    "client-1",
		UserType:  constvars.NutriCareRoleClient,
	}
}

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func TestAvailabilityUsecase_CreateAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("Nutritionist creates a recurring rule", func(t *testing.T) {
		uc, mocks := newAvailabilityUsecaseForTest()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(nutritionistSession(), nil)
		mocks.AvailabilityRepository.On("CreateAvailability", mock.Anything, mock.AnythingOfType("*models.Availability")).Return("avail-1", nil)

		response, err := uc.CreateAvailability(ctx, "session-data", &requests.CreateAvailability{
			DayOfWeek: intPtr(1),
			StartTime: "09:00",
			EndTime:   "17:00",
		})

		assert.NoError(t, err)
		assert.Equal(t, "avail-1", response.ID)
		assert.Equal(t, "nutritionist-1", response.NutritionistID)
		assert.True(t, response.IsRecurring)
		mocks.AvailabilityRepository.AssertExpectations(t)
	})

	t.Run("Client is rejected", func(t *testing.T) {
		uc, mocks := newAvailabilityUsecaseForTest()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(clientSession(), nil)

		_, err := uc.CreateAvailability(ctx, "session-data", &requests.CreateAvailability{
			DayOfWeek: intPtr(1),
			StartTime: "09:00",
			EndTime:   "17:00",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientAvailabilityNutritionistsOnly, customErr.ClientMessage)
		mocks.AvailabilityRepository.AssertNotCalled(t, "CreateAvailability")
	})

	t.Run("End before start is rejected", func(t *testing.T) {
		uc, mocks := newAvailabilityUsecaseForTest()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(nutritionistSession(), nil)

		_, err := uc.CreateAvailability(ctx, "session-data", &requests.CreateAvailability{
			DayOfWeek: intPtr(1),
			StartTime: "17:00",
			EndTime:   "09:00",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientAppointmentEndBeforeStart, customErr.ClientMessage)
	})

	t.Run("Recurring rule without a day of week is rejected", func(t *testing.T) {
		uc, mocks := newAvailabilityUsecaseForTest()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(nutritionistSession(), nil)

		_, err := uc.CreateAvailability(ctx, "session-data", &requests.CreateAvailability{
			StartTime: "09:00",
			EndTime:   "17:00",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientAvailabilityDayOfWeekRequired, customErr.ClientMessage)
	})

	t.Run("One-off rule without a specific date is rejected", func(t *testing.T) {
		uc, mocks := newAvailabilityUsecaseForTest()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(nutritionistSession(), nil)

		_, err := uc.CreateAvailability(ctx, "session-data", &requests.CreateAvailability{
			IsRecurring: boolPtr(false),
			StartTime:   "09:00",
			EndTime:     "17:00",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientAvailabilityDateRequired, customErr.ClientMessage)
	})

	t.Run("One-off rule with a specific date passes", func(t *testing.T) {
		uc, mocks := newAvailabilityUsecaseForTest()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(nutritionistSession(), nil)
		mocks.AvailabilityRepository.On("CreateAvailability", mock.Anything, mock.AnythingOfType("*models.Availability")).Return("avail-2", nil)

		response, err := uc.CreateAvailability(ctx, "session-data", &requests.CreateAvailability{
			IsRecurring:  boolPtr(false),
			SpecificDate: "2030-04-02",
			StartTime:    "09:00",
			EndTime:      "12:00",
		})

		assert.NoError(t, err)
		assert.False(t, response.IsRecurring)
		assert.Equal(t, "2030-04-02", response.SpecificDate)
	})
}

func TestAvailabilityUsecase_FindByNutritionistAndDateRange(t *testing.T) {
	ctx := context.Background()

	t.Run("Inverted range is rejected before any lookup", func(t *testing.T) {
		uc, mocks := newAvailabilityUsecaseForTest()

		_, err := uc.FindByNutritionistAndDateRange(ctx, "nutritionist-1", &requests.DateRange{
			StartDate: "2030-04-10",
			EndDate:   "2030-04-01",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientDateRangeInverted, customErr.ClientMessage)
		mocks.UserRepository.AssertNotCalled(t, "FindUserByID")
	})

	t.Run("Unknown nutritionist yields not found", func(t *testing.T) {
		uc, mocks := newAvailabilityUsecaseForTest()
		mocks.UserRepository.On("FindUserByID", mock.Anything, "ghost").Return(nil, nil)

		_, err := uc.FindByNutritionistAndDateRange(ctx, "ghost", &requests.DateRange{
			StartDate: "2030-04-01",
			EndDate:   "2030-04-10",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientNutritionistNotFound, customErr.ClientMessage)
	})

	t.Run("Returns the nutritionist's rules in range", func(t *testing.T) {
		uc, mocks := newAvailabilityUsecaseForTest()
		mocks.UserRepository.On("FindUserByID", mock.Anything, "nutritionist-1").Return(&models.User{
			ID:       "nutritionist-1",
			UserType: constvars.NutriCareRoleNutritionist,
		}, nil)
		mocks.AvailabilityRepository.On("FindAvailabilitiesByNutritionistAndDateRange", mock.Anything, "nutritionist-1", "2030-04-01", "2030-04-10").
			Return([]models.Availability{
				{ID: "avail-1", NutritionistID: "nutritionist-1", DayOfWeek: intPtr(1), StartTime: "09:00", EndTime: "17:00", IsRecurring: true},
			}, nil)

		response, err := uc.FindByNutritionistAndDateRange(ctx, "nutritionist-1", &requests.DateRange{
			StartDate: "2030-04-01",
			EndDate:   "2030-04-10",
		})

		assert.NoError(t, err)
		assert.Len(t, response, 1)
		assert.Equal(t, "avail-1", response[0].ID)
	})
}

func TestAvailabilityUsecase_OwnerScoping(t *testing.T) {
	ctx := context.Background()
	stored := &models.Availability{
		ID:             "avail-1",
		NutritionistID: "nutritionist-1",
		DayOfWeek:      intPtr(1),
		StartTime:      "09:00",
		EndTime:        "17:00",
		IsRecurring:    true,
	}

	t.Run("Owner updates their rule", func(t *testing.T) {
		uc, mocks := newAvailabilityUsecaseForTest()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(nutritionistSession(), nil)
		mocks.AvailabilityRepository.On("FindAvailabilityByID", mock.Anything, "avail-1").Return(stored, nil)
		mocks.AvailabilityRepository.On("UpdateAvailability", mock.Anything, mock.AnythingOfType("*models.Availability")).Return(nil)

		response, err := uc.UpdateAvailability(ctx, "session-data", "avail-1", &requests.UpdateAvailability{
			StartTime: "10:00",
		})

		assert.NoError(t, err)
		assert.Equal(t, "10:00", response.StartTime)
		mocks.AvailabilityRepository.AssertExpectations(t)
	})

	t.Run("Another nutritionist cannot delete it", func(t *testing.T) {
		uc, mocks := newAvailabilityUsecaseForTest()
		otherSession := &models.Session{SessionID: "sess-3", UserID: "nutritionist-2", UserType: constvars.NutriCareRoleNutritionist}
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(otherSession, nil)
		mocks.AvailabilityRepository.On("FindAvailabilityByID", mock.Anything, "avail-1").Return(stored, nil)

		err := uc.DeleteAvailability(ctx, "session-data", "avail-1")

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientNotEnoughPermissions, customErr.ClientMessage)
		mocks.AvailabilityRepository.AssertNotCalled(t, "DeleteAvailability")
	})

	t.Run("Missing rule yields not found", func(t *testing.T) {
		uc, mocks := newAvailabilityUsecaseForTest()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(nutritionistSession(), nil)
		mocks.AvailabilityRepository.On("FindAvailabilityByID", mock.Anything, "ghost").Return(nil, nil)

		err := uc.DeleteAvailability(ctx, "session-data", "ghost")

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientAvailabilityNotFound, customErr.ClientMessage)
	})
}
