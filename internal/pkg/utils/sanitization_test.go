package utils

import (
	"nutricare-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterUserRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.RegisterUser{
			Email:    "  TEST@EXAMPLE.COM  ",
			Username: "janedoe01",
			UserType: "client",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "test@example.com", request.Email, "email should be lowercase and trimmed")
	})

	t.Run("UserType Sanitization", func(t *testing.T) {
		request := &requests.RegisterUser{
			Email:    "test@example.com",
			Username: "janedoe01",
			UserType: "  Nutritionist  ",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "nutritionist", request.UserType, "user type should be lowercase and trimmed")
	})

	t.Run("Mixed Sanitization", func(t *testing.T) {
		request := &requests.RegisterUser{
			Email:          "  USER@DOMAIN.ORG  ",
			Username:       "  janedoe01  ",
			Password:       " Sup3r$ecret ",
			RetypePassword: " Sup3r$ecret ",
			FullName:       "  Jane Doe  ",
			UserType:       "CLIENT",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "user@domain.org", request.Email)
		assert.Equal(t, "janedoe01", request.Username)
		assert.Equal(t, "Sup3r$ecret", request.Password)
		assert.Equal(t, "Sup3r$ecret", request.RetypePassword)
		assert.Equal(t, "Jane Doe", request.FullName)
		assert.Equal(t, "client", request.UserType)
	})
}

func TestSanitizeCreateAppointmentRequest(t *testing.T) {
	t.Run("Trims every field", func(t *testing.T) {
		request := &requests.CreateAppointment{
			NutritionistID: "  665f1d2b9c4a5e1234567890  ",
			Date:           " 2026-09-01 ",
			StartTime:      " 09:00 ",
			EndTime:        " 10:00 ",
			Notes:          "  follow up on meal plan  ",
		}

		SanitizeCreateAppointmentRequest(request)

		assert.Equal(t, "665f1d2b9c4a5e1234567890", request.NutritionistID)
		assert.Equal(t, "2026-09-01", request.Date)
		assert.Equal(t, "09:00", request.StartTime)
		assert.Equal(t, "10:00", request.EndTime)
		assert.Equal(t, "follow up on meal plan", request.Notes)
	})
}
