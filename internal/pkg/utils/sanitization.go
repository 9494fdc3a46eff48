package utils

import (
	"nutricare-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Username = strings.TrimSpace(input.Username)
	input.Password = strings.TrimSpace(input.Password)
	input.RetypePassword = strings.TrimSpace(input.RetypePassword)
	input.FullName = strings.TrimSpace(input.FullName)
	input.UserType = strings.TrimSpace(strings.ToLower(input.UserType))
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Username = strings.TrimSpace(input.Username)
	input.Password = strings.TrimSpace(input.Password)
}

func SanitizeCreateProfileRequest(input *requests.CreateProfile) {
	input.Phone = strings.TrimSpace(input.Phone)
	input.Address = strings.TrimSpace(input.Address)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Bio = strings.TrimSpace(input.Bio)
	input.Specialization = strings.TrimSpace(input.Specialization)
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	input.Phone = strings.TrimSpace(input.Phone)
	input.Address = strings.TrimSpace(input.Address)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Bio = strings.TrimSpace(input.Bio)
	input.Specialization = strings.TrimSpace(input.Specialization)
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.NutritionistID = strings.TrimSpace(input.NutritionistID)
	input.Date = strings.TrimSpace(input.Date)
	input.StartTime = strings.TrimSpace(input.StartTime)
	input.EndTime = strings.TrimSpace(input.EndTime)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeCreateNutritionRecordRequest(input *requests.CreateNutritionRecord) {
	input.ClientID = strings.TrimSpace(input.ClientID)
	input.Date = strings.TrimSpace(input.Date)
	input.Notes = strings.TrimSpace(input.Notes)
	input.Recommendations = strings.TrimSpace(input.Recommendations)
}
