// Package hours is the single source of truth for worked-hours math. Every
// overtime decision in the system (call-sheet OT flags, recommendation
// penalties, validation warnings) goes through this calculator so the numbers
// never disagree with what the roster displays.
package hours

import (
	"math"
	"strings"
	"time"

	"github.com/jsgrayson/scheduler/internal/domain/role"
	"github.com/jsgrayson/scheduler/internal/domain/shift"
	"github.com/jsgrayson/scheduler/internal/pkg/timeweek"
)

const (
	// LunchThresholdMinutes: shifts strictly longer than 5 hours get an unpaid
	// lunch deducted, unless the role is exempt.
	LunchThresholdMinutes = 300
	LunchDeductionMinutes = 30

	// DailyOvertimeHours is the single-day total beyond which a candidate is
	// flagged as overtime exposure.
	DailyOvertimeHours = 8.0
)

type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// ShiftMinutes returns the payable minutes for one shift: the absolute
// duration (midnight crossings count in full), minus the lunch deduction when
// the effective role is not cashier-like. The effective role is the shift's
// role, falling back to the employee's default role when the shift has none.
func (c *Calculator) ShiftMinutes(s shift.Shift, defaultRoleID *string, roles map[string]role.Role) int {
	minutes := int(s.Duration() / time.Minute)
	if minutes <= LunchThresholdMinutes {
		return minutes
	}

	roleID := s.RoleID
	if roleID == "" && defaultRoleID != nil {
		roleID = *defaultRoleID
	}
	if isLunchExempt(roleID, roles) {
		return minutes
	}
	return minutes - LunchDeductionMinutes
}

// WeeklyHours sums the payable hours of the employee's shifts whose start
// falls inside the 7-day window beginning at weekStart, rounded to one
// decimal. An empty shift set yields 0.0.
func (c *Calculator) WeeklyHours(employeeID string, weekStart time.Time, shifts []shift.Shift, defaultRoleID *string, roles map[string]role.Role) float64 {
	weekEnd := weekStart.AddDate(0, 0, 7)
	total := 0
	for _, s := range shifts {
		if s.EmployeeID == nil || *s.EmployeeID != employeeID {
			continue
		}
		if s.StartTime.Before(weekStart) || !s.StartTime.Before(weekEnd) {
			continue
		}
		total += c.ShiftMinutes(s, defaultRoleID, roles)
	}
	return roundHours(total)
}

// DayHours sums the payable hours of the employee's shifts starting on the
// calendar day containing t.
func (c *Calculator) DayHours(employeeID string, t time.Time, shifts []shift.Shift, defaultRoleID *string, roles map[string]role.Role) float64 {
	dayStart, dayEnd := timeweek.DayBounds(t)
	total := 0
	for _, s := range shifts {
		if s.EmployeeID == nil || *s.EmployeeID != employeeID {
			continue
		}
		if s.StartTime.Before(dayStart) || !s.StartTime.Before(dayEnd) {
			continue
		}
		total += c.ShiftMinutes(s, defaultRoleID, roles)
	}
	return roundHours(total)
}

// isLunchExempt: the role category is authoritative; a "cashier" name
// substring is a legacy fallback for roles imported before categories existed.
func isLunchExempt(roleID string, roles map[string]role.Role) bool {
	r, ok := roles[roleID]
	if !ok {
		return false
	}
	if r.Category == role.CategoryCashier {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), "cashier")
}

func roundHours(minutes int) float64 {
	return math.Round(float64(minutes)/60.0*10) / 10
}
