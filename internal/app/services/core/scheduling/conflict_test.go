package scheduling

import (
	"testing"

	"nutricare-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func span(sh, sm, eh, em int) Interval {
	return Interval{Start: Clock{H: sh, M: sm}, End: Clock{H: eh, M: em}}
}

func TestConflictDecisionTable(t *testing.T) {
	testCases := []struct {
		name        string
		a, b        Interval
		startInside bool
		endInside   bool
		contains    bool
		containedBy bool
		conflict    bool
	}{
		{
			name: "identical intervals",
			a:    span(10, 0, 11, 0), b: span(10, 0, 11, 0),
			startInside: true, endInside: true, contains: true, containedBy: true,
			conflict: true,
		},
		{
			name: "back to back, candidate after",
			a:    span(11, 0, 12, 0), b: span(10, 0, 11, 0),
			conflict: false,
		},
		{
			name: "back to back, candidate before",
			a:    span(9, 30, 10, 0), b: span(10, 0, 11, 0),
			conflict: false,
		},
		{
			name: "tail overlap by one minute",
			a:    span(10, 59, 11, 30), b: span(10, 0, 11, 0),
			startInside: true,
			conflict:    true,
		},
		{
			name: "head overlap",
			a:    span(9, 30, 10, 30), b: span(10, 0, 11, 0),
			endInside: true,
			conflict:  true,
		},
		{
			name: "candidate swallows existing",
			a:    span(9, 0, 12, 0), b: span(10, 0, 11, 0),
			contains: true,
			conflict: true,
		},
		{
			name: "candidate inside existing",
			a:    span(10, 15, 10, 45), b: span(10, 0, 11, 0),
			startInside: true, endInside: true, containedBy: true,
			conflict: true,
		},
		{
			name: "disjoint before",
			a:    span(7, 0, 8, 0), b: span(10, 0, 11, 0),
			conflict: false,
		},
		{
			name: "disjoint after",
			a:    span(13, 0, 14, 0), b: span(10, 0, 11, 0),
			conflict: false,
		},
		{
			name: "shares start, shorter",
			a:    span(10, 0, 10, 30), b: span(10, 0, 11, 0),
			startInside: true, endInside: true, containedBy: true,
			conflict: true,
		},
		{
			name: "shares end, shorter",
			a:    span(10, 30, 11, 0), b: span(10, 0, 11, 0),
			startInside: true, endInside: true, containedBy: true,
			conflict: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := relate(tc.a, tc.b)
			assert.Equal(t, tc.startInside, r.startInside, "startInside for %v vs %v", tc.a, tc.b)
			assert.Equal(t, tc.endInside, r.endInside, "endInside for %v vs %v", tc.a, tc.b)
			assert.Equal(t, tc.contains, r.contains, "contains for %v vs %v", tc.a, tc.b)
			assert.Equal(t, tc.containedBy, r.containedBy, "containedBy for %v vs %v", tc.a, tc.b)
			assert.Equal(t, tc.conflict, Conflicts(tc.a, tc.b), "Conflicts for %v vs %v", tc.a, tc.b)
		})
	}
}

// Every pair drawn from a dense minute grid must classify identically under the
// decision table and the short-form overlap predicate, and symmetrically.
func TestConflictsAgreesWithHalfOpenOverlap(t *testing.T) {
	const limit = 120
	const step = 5

	var grid []Interval
	for s := 0; s < limit; s += step {
		for e := s + step; e <= limit; e += step {
			grid = append(grid, Interval{
				Start: Clock{H: s / 60, M: s % 60},
				End:   Clock{H: e / 60, M: e % 60},
			})
		}
	}

	for _, a := range grid {
		for _, b := range grid {
			if Conflicts(a, b) != overlapsHalfOpen(a, b) {
				t.Fatalf("decision table disagrees with half-open overlap for %v vs %v", a, b)
			}
			if Conflicts(a, b) != Conflicts(b, a) {
				t.Fatalf("conflict check is not symmetric for %v vs %v", a, b)
			}
		}
	}
}

func TestFirstConflict(t *testing.T) {
	existing := []models.Appointment{
		{ID: "appt-1", StartTime: "09:00", EndTime: "10:00"},
		{ID: "appt-2", StartTime: "10:00", EndTime: "11:00"},
	}

	t.Run("reports the colliding appointment", func(t *testing.T) {
		hit := FirstConflict(span(10, 30, 11, 30), existing, "")
		if assert.NotNil(t, hit) {
			assert.Equal(t, "appt-2", hit.ID)
		}
	})

	t.Run("back to back bookings do not collide", func(t *testing.T) {
		assert.Nil(t, FirstConflict(span(11, 0, 12, 0), existing, ""))
	})

	t.Run("excludes the appointment being updated", func(t *testing.T) {
		assert.Nil(t, FirstConflict(span(10, 0, 11, 0), existing, "appt-2"))
	})

	t.Run("skips rows with unparseable clocks", func(t *testing.T) {
		dirty := []models.Appointment{{ID: "bad", StartTime: "late", EndTime: "later"}}
		assert.Nil(t, FirstConflict(span(9, 0, 17, 0), dirty, ""))
	})
}
