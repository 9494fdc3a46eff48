package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock holds a local wall time (hour and minute).
type Clock struct {
	H int
	M int
}

// MinuteOfDay positions the clock as minutes since midnight.
func (c Clock) MinuteOfDay() int {
	return c.H*60 + c.M
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.H, c.M)
}

// Interval is a half-open [Start, End) wall-clock span within a single date.
type Interval struct {
	Start Clock
	End   Clock
}

func (iv Interval) String() string {
	return iv.Start.String() + "-" + iv.End.String()
}

// Window is an availability span with the same half-open semantics as Interval.
type Window struct {
	Start Clock
	End   Clock
}

// ParseClock parses an HH:MM wall time, tolerating HH.MM and surrounding spaces.
func ParseClock(s string) (Clock, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", ":")
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return Clock{}, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, false
	}
	return Clock{H: h, M: m}, true
}

// NewInterval builds a candidate interval, rejecting empty or inverted spans.
func NewInterval(start, end Clock) (Interval, bool) {
	if start.MinuteOfDay() >= end.MinuteOfDay() {
		return Interval{}, false
	}
	return Interval{Start: start, End: end}, true
}

// At anchors the clock on day's calendar date in loc.
func At(day time.Time, c Clock, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, mo, d := day.Date()
	return time.Date(y, mo, d, c.H, c.M, 0, 0, loc)
}

// WeekdayIndex maps a calendar date onto rule numbering, 0=Monday through 6=Sunday.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
