package models

import (
	"time"

	"nutricare-service/internal/pkg/constvars"
)

type Session struct {
	SessionID string
	UserID    string
	Username  string
	Email     string
	UserType  string
	ExpiresAt time.Time
}

func (s *Session) IsClient() bool {
	return s.UserType == constvars.NutriCareRoleClient
}

func (s *Session) IsNutritionist() bool {
	return s.UserType == constvars.NutriCareRoleNutritionist
}

func (s *Session) IsAdmin() bool {
	return s.UserType == constvars.NutriCareRoleAdmin
}

func (s *Session) IsNotClient() bool {
	return !s.IsClient()
}

func (s *Session) IsNotNutritionist() bool {
	return !s.IsNutritionist()
}
