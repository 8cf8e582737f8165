// Package availability holds per-employee recurring weekly availability
// windows. Windows come in two polarities: positive ("I can work inside this")
// and negative ("never book me here"). They constrain recommendations, not
// manual scheduling — a supervisor can still force a shift anywhere.
package availability

import "time"

// Window is one recurring availability rule for an employee.
type Window struct {
	ID         string
	EmployeeID string
	// DayOfWeek is the business-week index: 0 = Saturday .. 6 = Friday.
	DayOfWeek int
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
	// IsAvailable selects the polarity: true = available window,
	// false = unavailable block.
	IsAvailable bool
	CreatedAt   time.Time
}

const clockLayout = "15:04"

// Violations applies one day's windows to a candidate interval. When any
// positive window exists the interval must fit entirely inside one of them;
// the interval must never overlap a negative window. Comparison is on
// clock-of-day only, matching how the windows are stored.
func Violations(windows []Window, start, end time.Time) []string {
	startHM := start.Format(clockLayout)
	endHM := end.Format(clockLayout)

	var reasons []string

	hasPositive := false
	fits := false
	for _, w := range windows {
		if !w.IsAvailable {
			continue
		}
		hasPositive = true
		if w.StartTime <= startHM && w.EndTime >= endHM {
			fits = true
			break
		}
	}
	if hasPositive && !fits {
		reasons = append(reasons, "outside available hours")
	}

	for _, w := range windows {
		if w.IsAvailable {
			continue
		}
		// "HH:MM" strings compare correctly as clock times.
		if startHM < w.EndTime && endHM > w.StartTime {
			reasons = append(reasons, "during unavailable block")
			break
		}
	}
	return reasons
}
