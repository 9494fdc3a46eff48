package contracts

import (
	"context"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, sessionData string, request *requests.CreateAppointment) (*responses.Appointment, error)
	FindAll(ctx context.Context, sessionData, status string, pagination *requests.Pagination) ([]responses.Appointment, int, error)
	FindByDateRange(ctx context.Context, sessionData string, dateRange *requests.DateRange, status string) ([]responses.Appointment, error)
	FindByID(ctx context.Context, sessionData, appointmentID string) (*responses.Appointment, error)
	UpdateAppointment(ctx context.Context, sessionData, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error)
	CancelAppointment(ctx context.Context, sessionData, appointmentID string) error
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAppointmentsByClient(ctx context.Context, clientID, status string, page, pageSize int) ([]models.Appointment, error)
	FindAppointmentsByNutritionist(ctx context.Context, nutritionistID, status string, page, pageSize int) ([]models.Appointment, error)
	CountAppointmentsByClient(ctx context.Context, clientID, status string) (int64, error)
	CountAppointmentsByNutritionist(ctx context.Context, nutritionistID, status string) (int64, error)
	FindScheduledAppointmentsByNutritionistAndDate(ctx context.Context, nutritionistID, date string) ([]models.Appointment, error)
	FindAppointmentsByClientAndDateRange(ctx context.Context, clientID, startDate, endDate, status string) ([]models.Appointment, error)
	FindAppointmentsByNutritionistAndDateRange(ctx context.Context, nutritionistID, startDate, endDate, status string) ([]models.Appointment, error)
	FindScheduledAppointmentsByDate(ctx context.Context, date string) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
}
