package nutritionrecords

import (
	"context"
	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockNutritionRecordRepository struct {
	mock.Mock
}

func (m *MockNutritionRecordRepository) CreateNutritionRecord(ctx context.Context, record *models.NutritionRecord) (string, error) {
	args := m.Called(ctx, record)
	return args.String(0), args.Error(1)
}

func (m *MockNutritionRecordRepository) FindNutritionRecordByID(ctx context.Context, recordID string) (*models.NutritionRecord, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NutritionRecord), args.Error(1)
}

func (m *MockNutritionRecordRepository) FindNutritionRecordsByClient(ctx context.Context, clientID string, page, pageSize int) ([]models.NutritionRecord, error) {
	args := m.Called(ctx, clientID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NutritionRecord), args.Error(1)
}

func (m *MockNutritionRecordRepository) CountNutritionRecordsByClient(ctx context.Context, clientID string) (int64, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNutritionRecordRepository) FindNutritionRecordsByClientAndDateRange(ctx context.Context, clientID, startDate, endDate string) ([]models.NutritionRecord, error) {
	args := m.Called(ctx, clientID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NutritionRecord), args.Error(1)
}

func (m *MockNutritionRecordRepository) UpdateNutritionRecord(ctx context.Context, record *models.NutritionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockNutritionRecordRepository) DeleteNutritionRecord(ctx context.Context, recordID string) error {
	args := m.Called(ctx, recordID)
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

type nutritionRecordUsecaseMocks struct {
	NutritionRecordRepository *MockNutritionRecordRepository
	UserRepository            *MockUserRepository
	SessionService            *MockSessionService
}

func newNutritionRecordUsecaseWithMocks() (contracts.NutritionRecordUsecase, *nutritionRecordUsecaseMocks) {
	mocks := &nutritionRecordUsecaseMocks{
		NutritionRecordRepository: new(MockNutritionRecordRepository),
		UserRepository:            new(MockUserRepository),
		SessionService:            new(MockSessionService),
	}
	uc := &nutritionRecordUsecase{
		NutritionRecordRepository: mocks.NutritionRecordRepository,
		UserRepository:            mocks.UserRepository,
		SessionService:            mocks.SessionService,
		Log:                       zap.NewNop(),
	}
	return uc, mocks
}

func assertCustomError(t *testing.T, err error, statusCode int, clientMessage string) {
	t.Helper()
	customErr, ok := err.(*exceptions.CustomError)
	if !assert.True(t, ok, "expected *exceptions.CustomError, got %T", err) {
		return
	}
	assert.Equal(t, statusCode, customErr.StatusCode)
	assert.Equal(t, clientMessage, customErr.ClientMessage)
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestNutritionRecordUsecase_CreateNutritionRecord(t *testing.T) {
	ctx := context.Background()
	clientUser := &models.User{Email: "client@example.com", UserType: constvars.NutriCareRoleClient}
	clientUser.ID = "client-1"

	t.Run("Client Creates Own Record", func(t *testing.T) {
		uc, mocks := newNutritionRecordUsecaseWithMocks()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "client-1", UserType: constvars.NutriCareRoleClient}, nil)
		mocks.UserRepository.On("FindUserByID", mock.Anything, "client-1").Return(clientUser, nil)
		mocks.NutritionRecordRepository.On("CreateNutritionRecord", mock.Anything, mock.MatchedBy(func(record *models.NutritionRecord) bool {
			return record.ClientID == "client-1" && record.CreatedByID == "client-1"
		})).Return("record-1", nil)

		response, err := uc.CreateNutritionRecord(ctx, "session-data", &requests.CreateNutritionRecord{
			ClientID: "client-1",
			Date:     "2030-01-15",
			Weight:   floatPtr(81),
			Height:   floatPtr(1.8),
		})

		assert.NoError(t, err)
		assert.Equal(t, "record-1", response.ID)
		assert.Equal(t, "client-1", response.CreatedByID)
		if assert.NotNil(t, response.BMI) {
			assert.InDelta(t, 25.0, *response.BMI, 0.001)
		}
	})

	t.Run("Client Cannot Create Record For Another Client", func(t *testing.T) {
		uc, mocks := newNutritionRecordUsecaseWithMocks()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "client-1", UserType: constvars.NutriCareRoleClient}, nil)

		_, err := uc.CreateNutritionRecord(ctx, "session-data", &requests.CreateNutritionRecord{
			ClientID: "client-2",
			Date:     "2030-01-15",
		})

		assertCustomError(t, err, constvars.StatusForbidden, constvars.ErrClientNotEnoughPermissions)
		mocks.NutritionRecordRepository.AssertNotCalled(t, "CreateNutritionRecord", mock.Anything, mock.Anything)
	})

	t.Run("Nutritionist Creates Record For Client", func(t *testing.T) {
		uc, mocks := newNutritionRecordUsecaseWithMocks()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "nutritionist-1", UserType: constvars.NutriCareRoleNutritionist}, nil)
		mocks.UserRepository.On("FindUserByID", mock.Anything, "client-1").Return(clientUser, nil)
		mocks.NutritionRecordRepository.On("CreateNutritionRecord", mock.Anything, mock.MatchedBy(func(record *models.NutritionRecord) bool {
			return record.ClientID == "client-1" && record.CreatedByID == "nutritionist-1"
		})).Return("record-2", nil)

		response, err := uc.CreateNutritionRecord(ctx, "session-data", &requests.CreateNutritionRecord{
			ClientID:        "client-1",
			Date:            "2030-01-15",
			Recommendations: "more fiber",
		})

		assert.NoError(t, err)
		assert.Equal(t, "nutritionist-1", response.CreatedByID)
	})

	t.Run("Target Client Not Found", func(t *testing.T) {
		uc, mocks := newNutritionRecordUsecaseWithMocks()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "nutritionist-1", UserType: constvars.NutriCareRoleNutritionist}, nil)
		mocks.UserRepository.On("FindUserByID", mock.Anything, "missing").Return(nil, nil)

		_, err := uc.CreateNutritionRecord(ctx, "session-data", &requests.CreateNutritionRecord{
			ClientID: "missing",
			Date:     "2030-01-15",
		})

		assertCustomError(t, err, constvars.StatusNotFound, constvars.ErrClientClientNotFound)
	})
}

func TestNutritionRecordUsecase_FindMyRecords(t *testing.T) {
	ctx := context.Background()
	pagination := &requests.Pagination{Page: 1, PageSize: 10}

	t.Run("Client Lists Own Records", func(t *testing.T) {
		uc, mocks := newNutritionRecordUsecaseWithMocks()
		stored := models.NutritionRecord{ClientID: "client-1", CreatedByID: "client-1", Date: "2030-01-15"}
		stored.ID = "record-1"
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "client-1", UserType: constvars.NutriCareRoleClient}, nil)
		mocks.NutritionRecordRepository.On("FindNutritionRecordsByClient", mock.Anything, "client-1", 1, 10).Return([]models.NutritionRecord{stored}, nil)
		mocks.NutritionRecordRepository.On("CountNutritionRecordsByClient", mock.Anything, "client-1").Return(int64(1), nil)

		records, total, err := uc.FindMyRecords(ctx, "session-data", pagination)

		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, records, 1)
	})

	t.Run("Nutritionist Denied", func(t *testing.T) {
		uc, mocks := newNutritionRecordUsecaseWithMocks()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "nutritionist-1", UserType: constvars.NutriCareRoleNutritionist}, nil)

		_, _, err := uc.FindMyRecords(ctx, "session-data", pagination)

		assertCustomError(t, err, constvars.StatusForbidden, constvars.ErrClientClientsOnlyEndpoint)
		mocks.NutritionRecordRepository.AssertNotCalled(t, "FindNutritionRecordsByClient", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestNutritionRecordUsecase_FindByClient(t *testing.T) {
	ctx := context.Background()
	pagination := &requests.Pagination{Page: 1, PageSize: 10}
	clientUser := &models.User{Email: "client@example.com", UserType: constvars.NutriCareRoleClient}
	clientUser.ID = "client-1"

	t.Run("Nutritionist Lists Client Records", func(t *testing.T) {
		uc, mocks := newNutritionRecordUsecaseWithMocks()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "nutritionist-1", UserType: constvars.NutriCareRoleNutritionist}, nil)
		mocks.UserRepository.On("FindUserByID", mock.Anything, "client-1").Return(clientUser, nil)
		mocks.NutritionRecordRepository.On("FindNutritionRecordsByClient", mock.Anything, "client-1", 1, 10).Return([]models.NutritionRecord{}, nil)
		mocks.NutritionRecordRepository.On("CountNutritionRecordsByClient", mock.Anything, "client-1").Return(int64(0), nil)

		_, total, err := uc.FindByClient(ctx, "session-data", "client-1", pagination)

		assert.NoError(t, err)
		assert.Equal(t, 0, total)
	})

	t.Run("Client Reading Another Client Denied", func(t *testing.T) {
		uc, mocks := newNutritionRecordUsecaseWithMocks()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "client-2", UserType: constvars.NutriCareRoleClient}, nil)

		_, _, err := uc.FindByClient(ctx, "session-data", "client-1", pagination)

		assertCustomError(t, err, constvars.StatusForbidden, constvars.ErrClientNotEnoughPermissions)
		mocks.UserRepository.AssertNotCalled(t, "FindUserByID", mock.Anything, mock.Anything)
	})
}

func TestNutritionRecordUsecase_FindByClientAndDateRange(t *testing.T) {
	ctx := context.Background()

	t.Run("Inverted Range Rejected", func(t *testing.T) {
		uc, mocks := newNutritionRecordUsecaseWithMocks()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "client-1", UserType: constvars.NutriCareRoleClient}, nil)

		_, err := uc.FindByClientAndDateRange(ctx, "session-data", "client-1", &requests.DateRange{StartDate: "2030-02-01", EndDate: "2030-01-01"})

		assertCustomError(t, err, constvars.StatusBadRequest, constvars.ErrClientDateRangeInverted)
	})

	t.Run("Range Query For Own Records", func(t *testing.T) {
		uc, mocks := newNutritionRecordUsecaseWithMocks()
		clientUser := &models.User{UserType: constvars.NutriCareRoleClient}
		clientUser.ID = "client-1"
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "client-1", UserType: constvars.NutriCareRoleClient}, nil)
		mocks.UserRepository.On("FindUserByID", mock.Anything, "client-1").Return(clientUser, nil)
		mocks.NutritionRecordRepository.On("FindNutritionRecordsByClientAndDateRange", mock.Anything, "client-1", "2030-01-01", "2030-01-31").Return([]models.NutritionRecord{}, nil)

		records, err := uc.FindByClientAndDateRange(ctx, "session-data", "client-1", &requests.DateRange{StartDate: "2030-01-01", EndDate: "2030-01-31"})

		assert.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestNutritionRecordUsecase_FindByID(t *testing.T) {
	ctx := context.Background()
	record := &models.NutritionRecord{ClientID: "client-1", CreatedByID: "nutritionist-1", Date: "2030-01-15", Weight: floatPtr(72), Height: floatPtr(1.6)}
	record.ID = "record-1"

	t.Run("Record Owner Reads With BMI", func(t *testing.T) {
		uc, mocks := newNutritionRecordUsecaseWithMocks()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "client-1", UserType: constvars.NutriCareRoleClient}, nil)
		mocks.NutritionRecordRepository.On("FindNutritionRecordByID", mock.Anything, "record-1").Return(record, nil)

		response, err := uc.FindByID(ctx, "session-data", "record-1")

		assert.NoError(t, err)
		if assert.NotNil(t, response.BMI) {
			assert.InDelta(t, 28.125, *response.BMI, 0.001)
		}
	})

	t.Run("Other Client Denied", func(t *testing.T) {
		uc, mocks := newNutritionRecordUsecaseWithMocks()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "client-2", UserType: constvars.NutriCareRoleClient}, nil)
		mocks.NutritionRecordRepository.On("FindNutritionRecordByID", mock.Anything, "record-1").Return(record, nil)

		_, err := uc.FindByID(ctx, "session-data", "record-1")

		assertCustomError(t, err, constvars.StatusForbidden, constvars.ErrClientNotEnoughPermissions)
	})

	t.Run("Record Not Found", func(t *testing.T) {
		uc, mocks := newNutritionRecordUsecaseWithMocks()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "client-1", UserType: constvars.NutriCareRoleClient}, nil)
		mocks.NutritionRecordRepository.On("FindNutritionRecordByID", mock.Anything, "missing").Return(nil, nil)

		_, err := uc.FindByID(ctx, "session-data", "missing")

		assertCustomError(t, err, constvars.StatusNotFound, constvars.ErrClientNutritionRecordNotFound)
	})
}

func TestNutritionRecordUsecase_UpdateNutritionRecord(t *testing.T) {
	ctx := context.Background()

	storedRecord := func() *models.NutritionRecord {
		record := &models.NutritionRecord{ClientID: "client-1", CreatedByID: "nutritionist-1", Date: "2030-01-15", Weight: floatPtr(72)}
		record.ID = "record-1"
		return record
	}

	t.Run("Creator Updates Record", func(t *testing.T) {
		uc, mocks := newNutritionRecordUsecaseWithMocks()
		record := storedRecord()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "nutritionist-1", UserType: constvars.NutriCareRoleNutritionist}, nil)
		mocks.NutritionRecordRepository.On("FindNutritionRecordByID", mock.Anything, "record-1").Return(record, nil)
		mocks.NutritionRecordRepository.On("UpdateNutritionRecord", mock.Anything, mock.MatchedBy(func(updated *models.NutritionRecord) bool {
			return updated.Weight != nil && *updated.Weight == 70.5
		})).Return(nil)

		response, err := uc.UpdateNutritionRecord(ctx, "session-data", "record-1", &requests.UpdateNutritionRecord{
			Weight: floatPtr(70.5),
		})

		assert.NoError(t, err)
		assert.Equal(t, 70.5, *response.Weight)
	})

	t.Run("Subject Client Is Not Creator", func(t *testing.T) {
		uc, mocks := newNutritionRecordUsecaseWithMocks()
		record := storedRecord()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "client-1", UserType: constvars.NutriCareRoleClient}, nil)
		mocks.NutritionRecordRepository.On("FindNutritionRecordByID", mock.Anything, "record-1").Return(record, nil)

		_, err := uc.UpdateNutritionRecord(ctx, "session-data", "record-1", &requests.UpdateNutritionRecord{
			Weight: floatPtr(70.5),
		})

		assertCustomError(t, err, constvars.StatusForbidden, constvars.ErrClientNotEnoughPermissions)
	})

	t.Run("Admin Updates Any Record", func(t *testing.T) {
		uc, mocks := newNutritionRecordUsecaseWithMocks()
		record := storedRecord()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "admin-1", UserType: constvars.NutriCareRoleAdmin}, nil)
		mocks.NutritionRecordRepository.On("FindNutritionRecordByID", mock.Anything, "record-1").Return(record, nil)
		mocks.NutritionRecordRepository.On("UpdateNutritionRecord", mock.Anything, mock.AnythingOfType("*models.NutritionRecord")).Return(nil)

		notes := "reviewed by admin"
		response, err := uc.UpdateNutritionRecord(ctx, "session-data", "record-1", &requests.UpdateNutritionRecord{
			Notes: &notes,
		})

		assert.NoError(t, err)
		assert.Equal(t, notes, response.Notes)
	})
}

func TestNutritionRecordUsecase_DeleteNutritionRecord(t *testing.T) {
	ctx := context.Background()

	storedRecord := func() *models.NutritionRecord {
		record := &models.NutritionRecord{ClientID: "client-1", CreatedByID: "nutritionist-1", Date: "2030-01-15"}
		record.ID = "record-1"
		return record
	}

	t.Run("Creator Deletes Record", func(t *testing.T) {
		uc, mocks := newNutritionRecordUsecaseWithMocks()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "nutritionist-1", UserType: constvars.NutriCareRoleNutritionist}, nil)
		mocks.NutritionRecordRepository.On("FindNutritionRecordByID", mock.Anything, "record-1").Return(storedRecord(), nil)
		mocks.NutritionRecordRepository.On("DeleteNutritionRecord", mock.Anything, "record-1").Return(nil)

		err := uc.DeleteNutritionRecord(ctx, "session-data", "record-1")

		assert.NoError(t, err)
		mocks.NutritionRecordRepository.AssertCalled(t, "DeleteNutritionRecord", mock.Anything, "record-1")
	})

	t.Run("Non Creator Denied", func(t *testing.T) {
		uc, mocks := newNutritionRecordUsecaseWithMocks()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "client-1", UserType: constvars.NutriCareRoleClient}, nil)
		mocks.NutritionRecordRepository.On("FindNutritionRecordByID", mock.Anything, "record-1").Return(storedRecord(), nil)

		err := uc.DeleteNutritionRecord(ctx, "session-data", "record-1")

		assertCustomError(t, err, constvars.StatusForbidden, constvars.ErrClientNotEnoughPermissions)
		mocks.NutritionRecordRepository.AssertNotCalled(t, "DeleteNutritionRecord", mock.Anything, mock.Anything)
	})

	t.Run("Record Not Found", func(t *testing.T) {
		uc, mocks := newNutritionRecordUsecaseWithMocks()
		mocks.SessionService.On("ParseSessionData", mock.Anything, "session-data").Return(&models.Session{UserID: "client-1", UserType: constvars.NutriCareRoleClient}, nil)
		mocks.NutritionRecordRepository.On("FindNutritionRecordByID", mock.Anything, "missing").Return(nil, nil)

		err := uc.DeleteNutritionRecord(ctx, "session-data", "missing")

		assertCustomError(t, err, constvars.StatusNotFound, constvars.ErrClientNutritionRecordNotFound)
	})
}
