package shift

import (
	"strings"
	"time"
)

// Shift is a time-boxed assignment of an employee to a role at a location.
// A nil EmployeeID means the shift is open (unfilled coverage). Locked shifts
// represent committed reality and are read-only to bulk and template
// operations.
type Shift struct {
	ID          string
	EmployeeID  *string
	RoleID      string
	StartTime   time.Time
	EndTime     time.Time
	Location    *string
	BoothNumber *string
	Notes       *string
	IsVacation  bool
	IsLocked    bool
	// ParentID groups shifts created together by a repeat option; the first
	// shift of the series references itself.
	ParentID *string
	// TemplateID records which master template materialized this shift, if any.
	TemplateID *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (s Shift) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// Summary is the structured detail attached to conflict errors so the caller
// can render which shifts are in the way.
type Summary struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

func (s Shift) Summary() Summary {
	return Summary{ID: s.ID, StartTime: s.StartTime, EndTime: s.EndTime}
}

// NormalizeLocation upper-cases and trims a free-form location tag so "elot",
// "Elot" and "ELOT " collapse to one value.
func NormalizeLocation(loc *string) *string {
	if loc == nil {
		return nil
	}
	normalized := strings.ToUpper(strings.TrimSpace(*loc))
	if normalized == "" {
		return nil
	}
	return &normalized
}
