package scheduling

import (
	"testing"
	"time"

	"nutricare-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	assert.NoError(t, err)
	return parsed
}

func TestWeekdayIndex(t *testing.T) {
	// 2025-06-16 is a Monday.
	days := []string{"2025-06-16", "2025-06-17", "2025-06-18", "2025-06-19", "2025-06-20", "2025-06-21", "2025-06-22"}
	for expected, day := range days {
		assert.Equal(t, expected, WeekdayIndex(mustDate(t, day)), "weekday index of %s", day)
	}
}

func TestAvailableWindows(t *testing.T) {
	monday := 0
	tuesday := 1

	rules := []models.Availability{
		{ID: "rule-tue", NutritionistID: "n-1", IsRecurring: true, DayOfWeek: &tuesday, StartTime: "09:00", EndTime: "17:00"},
		{ID: "rule-mon", NutritionistID: "n-1", IsRecurring: true, DayOfWeek: &monday, StartTime: "08:00", EndTime: "12:00"},
		{ID: "rule-oneoff", NutritionistID: "n-1", IsRecurring: false, SpecificDate: "2025-06-18", StartTime: "19:00", EndTime: "21:00"},
	}

	t.Run("recurring rule matches its weekday", func(t *testing.T) {
		windows := AvailableWindows(rules, mustDate(t, "2025-06-17"))
		assert.Equal(t, []Window{{Start: Clock{H: 9}, End: Clock{H: 17}}}, windows)
	})

	t.Run("one-off rule matches only its date", func(t *testing.T) {
		windows := AvailableWindows(rules, mustDate(t, "2025-06-18"))
		assert.Equal(t, []Window{{Start: Clock{H: 19}, End: Clock{H: 21}}}, windows)
	})

	t.Run("day with no matching rule is fully unavailable", func(t *testing.T) {
		assert.Empty(t, AvailableWindows(rules, mustDate(t, "2025-06-20")))
	})

	t.Run("recurring rule without a weekday never matches", func(t *testing.T) {
		broken := []models.Availability{{ID: "rule-x", IsRecurring: true, StartTime: "09:00", EndTime: "17:00"}}
		assert.Empty(t, AvailableWindows(broken, mustDate(t, "2025-06-17")))
	})

	t.Run("overlapping rules stay unmerged", func(t *testing.T) {
		morning := 1
		doubled := []models.Availability{
			{ID: "rule-a", IsRecurring: true, DayOfWeek: &morning, StartTime: "09:00", EndTime: "13:00"},
			{ID: "rule-b", IsRecurring: true, DayOfWeek: &morning, StartTime: "11:00", EndTime: "17:00"},
		}
		windows := AvailableWindows(doubled, mustDate(t, "2025-06-17"))
		assert.Len(t, windows, 2)
	})
}

func TestWithinAny(t *testing.T) {
	workday := []Window{{Start: Clock{H: 9}, End: Clock{H: 17}}}
	split := []Window{
		{Start: Clock{H: 9}, End: Clock{H: 12}},
		{Start: Clock{H: 12}, End: Clock{H: 17}},
	}

	testCases := []struct {
		name      string
		candidate Interval
		windows   []Window
		expected  bool
	}{
		{name: "flush against opening", candidate: span(9, 0, 10, 0), windows: workday, expected: true},
		{name: "flush against closing", candidate: span(16, 0, 17, 0), windows: workday, expected: true},
		{name: "starts before opening", candidate: span(8, 0, 9, 30), windows: workday, expected: false},
		{name: "runs past closing", candidate: span(16, 30, 17, 30), windows: workday, expected: false},
		{name: "no windows rejects everything", candidate: span(9, 0, 10, 0), windows: nil, expected: false},
		{name: "never spans two adjacent windows", candidate: span(11, 0, 13, 0), windows: split, expected: false},
		{name: "fits entirely in the second window", candidate: span(12, 0, 13, 0), windows: split, expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, WithinAny(tc.candidate, tc.windows))
		})
	}
}

func TestParseClock(t *testing.T) {
	testCases := []struct {
		input    string
		expected Clock
		ok       bool
	}{
		{input: "09:30", expected: Clock{H: 9, M: 30}, ok: true},
		{input: "23:59", expected: Clock{H: 23, M: 59}, ok: true},
		{input: " 9:05 ", expected: Clock{H: 9, M: 5}, ok: true},
		{input: "9.15", expected: Clock{H: 9, M: 15}, ok: true},
		{input: "24:00", ok: false},
		{input: "10:60", ok: false},
		{input: "noon", ok: false},
		{input: "", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseClock(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}

func TestNewInterval(t *testing.T) {
	t.Run("start must precede end", func(t *testing.T) {
		_, ok := NewInterval(Clock{H: 11}, Clock{H: 10})
		assert.False(t, ok)
	})

	t.Run("zero length is rejected", func(t *testing.T) {
		_, ok := NewInterval(Clock{H: 10}, Clock{H: 10})
		assert.False(t, ok)
	})

	t.Run("valid span", func(t *testing.T) {
		iv, ok := NewInterval(Clock{H: 10}, Clock{H: 11})
		assert.True(t, ok)
		assert.Equal(t, span(10, 0, 11, 0), iv)
	})
}
