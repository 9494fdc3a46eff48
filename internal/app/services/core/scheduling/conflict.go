package scheduling

import "nutricare-service/internal/app/models"

// relation captures how candidate a sits against existing b on the same date.
// The four flags are the full boundary vocabulary; Conflicts consumes three of
// them and containedBy is implied by startInside together with endInside.
type relation struct {
	startInside bool
	endInside   bool
	contains    bool
	containedBy bool
}

func relate(a, b Interval) relation {
	s1, e1 := a.Start.MinuteOfDay(), a.End.MinuteOfDay()
	s2, e2 := b.Start.MinuteOfDay(), b.End.MinuteOfDay()
	return relation{
		startInside: s1 >= s2 && s1 < e2,
		endInside:   e1 > s2 && e1 <= e2,
		contains:    s1 <= s2 && e1 >= e2,
		containedBy: s1 >= s2 && e1 <= e2,
	}
}

// Conflicts reports whether two same-date intervals overlap. A shared boundary,
// one interval ending exactly where the other starts, is not a conflict.
func Conflicts(a, b Interval) bool {
	r := relate(a, b)
	return r.startInside || r.endInside || r.contains
}

// overlapsHalfOpen is the algebraic short form of Conflicts. Tests hold the
// two in agreement over an exhaustive minute grid; Conflicts stays the
// authoritative predicate.
func overlapsHalfOpen(a, b Interval) bool {
	return a.Start.MinuteOfDay() < b.End.MinuteOfDay() && b.Start.MinuteOfDay() < a.End.MinuteOfDay()
}

// FirstConflict returns the first appointment whose interval collides with the
// candidate, skipping the appointment identified by excludeID. Callers pass
// only scheduled appointments for the same nutritionist and date. Rows whose
// clocks no longer parse are skipped.
func FirstConflict(candidate Interval, existing []models.Appointment, excludeID string) *models.Appointment {
	for i := range existing {
		if excludeID != "" && existing[i].ID == excludeID {
			continue
		}
		start, ok1 := ParseClock(existing[i].StartTime)
		end, ok2 := ParseClock(existing[i].EndTime)
		if !ok1 || !ok2 {
			continue
		}
		if Conflicts(candidate, Interval{Start: start, End: end}) {
			return &existing[i]
		}
	}
	return nil
}
