package reminders

import (
	"context"
	"nutricare-service/internal/app/config"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAppointmentsByClient(ctx context.Context, clientID, status string, page, pageSize int) ([]models.Appointment, error) {
	args := m.Called(ctx, clientID, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAppointmentsByNutritionist(ctx context.Context, nutritionistID, status string, page, pageSize int) ([]models.Appointment, error) {
	args := m.Called(ctx, nutritionistID, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) CountAppointmentsByClient(ctx context.Context, clientID, status string) (int64, error) {
	args := m.Called(ctx, clientID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) CountAppointmentsByNutritionist(ctx context.Context, nutritionistID, status string) (int64, error) {
	args := m.Called(ctx, nutritionistID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) FindScheduledAppointmentsByNutritionistAndDate(ctx context.Context, nutritionistID, date string) ([]models.Appointment, error) {
	args := m.Called(ctx, nutritionistID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAppointmentsByClientAndDateRange(ctx context.Context, clientID, startDate, endDate, status string) ([]models.Appointment, error) {
	args := m.Called(ctx, clientID, startDate, endDate, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAppointmentsByNutritionistAndDateRange(ctx context.Context, nutritionistID, startDate, endDate, status string) ([]models.Appointment, error) {
	args := m.Called(ctx, nutritionistID, startDate, endDate, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindScheduledAppointmentsByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
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

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func (m *MockLockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	args := m.Called(ctx, key, lockValue, expiration)
	return args.Error(0)
}

type MockMailerService struct {
	mock.Mock
}

func (m *MockMailerService) SendEmail(ctx context.Context, payload *requests.EmailPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func TestReminderWorker_RunOnce(t *testing.T) {
	ctx := context.Background()
	cfg := &config.InternalConfig{
		App: config.App{
			MailerEmailSender:      "no-reply@nutricare.app",
			ReminderWorkerCronSpec: "@daily",
		},
	}
	clientUser := &models.User{Email: "client@example.com", FullName: "Jordan", UserType: constvars.NutriCareRoleClient}
	clientUser.ID = "client-1"
	nutritionistUser := &models.User{Email: "nutritionist@example.com", FullName: "Dr. Taylor", UserType: constvars.NutriCareRoleNutritionist}
	nutritionistUser.ID = "nutritionist-1"

	newWorker := func() (*Worker, *MockAppointmentRepository, *MockUserRepository, *MockLockerService, *MockMailerService) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		locker := new(MockLockerService)
		mailer := new(MockMailerService)
		worker := NewWorker(zap.NewNop(), cfg, locker, appointmentRepo, userRepo, mailer, time.UTC)
		return worker, appointmentRepo, userRepo, locker, mailer
	}

	t.Run("Reminds Both Parties Of Next Day Appointments", func(t *testing.T) {
		worker, appointmentRepo, userRepo, locker, mailer := newWorker()
		appointment := models.Appointment{ClientID: "client-1", NutritionistID: "nutritionist-1", Date: "2030-01-15", StartTime: "10:00", EndTime: "11:00", Status: constvars.AppointmentStatusScheduled}
		appointment.ID = "appointment-1"
		locker.On("TryLock", mock.Anything, constvars.ReminderLockKey, 2*time.Minute).Return(true, "lock-token", nil)
		locker.On("Unlock", mock.Anything, constvars.ReminderLockKey, "lock-token").Return(nil)
		appointmentRepo.On("FindScheduledAppointmentsByDate", mock.Anything, mock.AnythingOfType("string")).Return([]models.Appointment{appointment}, nil)
		userRepo.On("FindUserByID", mock.Anything, "client-1").Return(clientUser, nil)
		userRepo.On("FindUserByID", mock.Anything, "nutritionist-1").Return(nutritionistUser, nil)
		mailer.On("SendEmail", mock.Anything, mock.MatchedBy(func(payload *requests.EmailPayload) bool {
			return payload.Subject == constvars.EmailAppointmentReminderSubject &&
				strings.Contains(payload.HTMLCode, "reminder of your appointment")
		})).Return(nil)

		worker.runOnce(ctx)

		mailer.AssertNumberOfCalls(t, "SendEmail", 2)
		locker.AssertCalled(t, "Unlock", mock.Anything, constvars.ReminderLockKey, "lock-token")
	})

	t.Run("Skips Sweep When Lock Is Held Elsewhere", func(t *testing.T) {
		worker, appointmentRepo, _, locker, mailer := newWorker()
		locker.On("TryLock", mock.Anything, constvars.ReminderLockKey, 2*time.Minute).Return(false, "", nil)

		worker.runOnce(ctx)

		appointmentRepo.AssertNotCalled(t, "FindScheduledAppointmentsByDate", mock.Anything, mock.Anything)
		mailer.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	})

	t.Run("Skips Appointment When Participant Lookup Fails", func(t *testing.T) {
		worker, appointmentRepo, userRepo, locker, mailer := newWorker()
		appointment := models.Appointment{ClientID: "client-gone", NutritionistID: "nutritionist-1", Date: "2030-01-15", StartTime: "10:00", EndTime: "11:00", Status: constvars.AppointmentStatusScheduled}
		appointment.ID = "appointment-2"
		locker.On("TryLock", mock.Anything, constvars.ReminderLockKey, 2*time.Minute).Return(true, "lock-token", nil)
		locker.On("Unlock", mock.Anything, constvars.ReminderLockKey, "lock-token").Return(nil)
		appointmentRepo.On("FindScheduledAppointmentsByDate", mock.Anything, mock.AnythingOfType("string")).Return([]models.Appointment{appointment}, nil)
		userRepo.On("FindUserByID", mock.Anything, "client-gone").Return(nil, nil)

		worker.runOnce(ctx)

		mailer.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	})
}
