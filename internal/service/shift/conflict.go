package shift

import (
	"time"

	"github.com/jsgrayson/scheduler/internal/domain/shift"
	"github.com/jsgrayson/scheduler/internal/pkg/timeweek"
)

// FindConflicts returns the shifts in existing that belong to employeeID and
// overlap the half-open candidate interval [start, end). The shift being
// updated is excluded by id. Open shifts never conflict: a nil employee on
// either side means no double-booking is possible.
func FindConflicts(employeeID string, start, end time.Time, excludeID string, existing []shift.Shift) []shift.Shift {
	var conflicts []shift.Shift
	for _, s := range existing {
		if s.EmployeeID == nil || *s.EmployeeID != employeeID {
			continue
		}
		if excludeID != "" && s.ID == excludeID {
			continue
		}
		if timeweek.Overlaps(start, end, s.StartTime, s.EndTime) {
			conflicts = append(conflicts, s)
		}
	}
	return conflicts
}

func summaries(shifts []shift.Shift) []shift.Summary {
	out := make([]shift.Summary, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, s.Summary())
	}
	return out
}
