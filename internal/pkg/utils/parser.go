package utils

import (
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/exceptions"
	"time"
)

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(constvars.DateLayout, value)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseDate(err)
	}
	return parsed, nil
}

// ParseClock parses an HH:MM time of day.
func ParseClock(value string) (time.Time, error) {
	parsed, err := time.Parse(constvars.ClockLayout, value)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseTime(err)
	}
	return parsed, nil
}

func FormatDate(value time.Time) string {
	return value.Format(constvars.DateLayout)
}

func FormatClock(value time.Time) string {
	return value.Format(constvars.ClockLayout)
}
