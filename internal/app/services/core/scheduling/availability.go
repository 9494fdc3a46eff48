package scheduling

import (
	"time"

	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/constvars"
)

// AvailableWindows resolves the rules effective on one calendar date. A
// recurring rule applies when its weekday matches, a one-off rule when its
// specific date matches. Windows come back as stored, without merging
// overlaps; an empty result means the nutritionist takes no bookings that day.
func AvailableWindows(rules []models.Availability, date time.Time) []Window {
	day := date.Format(constvars.DateLayout)
	weekday := WeekdayIndex(date)
	var windows []Window
	for _, rule := range rules {
		if !appliesOn(rule, weekday, day) {
			continue
		}
		start, ok1 := ParseClock(rule.StartTime)
		end, ok2 := ParseClock(rule.EndTime)
		if !ok1 || !ok2 || start.MinuteOfDay() >= end.MinuteOfDay() {
			continue
		}
		windows = append(windows, Window{Start: start, End: end})
	}
	return windows
}

func appliesOn(rule models.Availability, weekday int, date string) bool {
	if rule.IsRecurring {
		return rule.DayOfWeek != nil && *rule.DayOfWeek == weekday
	}
	return rule.SpecificDate == date
}

// WithinAny reports whether the candidate nests entirely inside a single
// window. Two adjacent windows never combine to cover one candidate.
func WithinAny(candidate Interval, windows []Window) bool {
	s, e := candidate.Start.MinuteOfDay(), candidate.End.MinuteOfDay()
	for _, w := range windows {
		if s >= w.Start.MinuteOfDay() && e <= w.End.MinuteOfDay() {
			return true
		}
	}
	return false
}
