package employee

import "time"

type Employee struct {
	ID            string
	FirstName     string
	LastName      string
	Email         *string
	Phone         *string
	DefaultRoleID *string
	// RoleIDs is the set of roles the employee is eligible to work.
	// Invariant: DefaultRoleID, when set, is a member of this set.
	RoleIDs                   []string
	IsFullTime                bool
	MaxWeeklyHours            float64
	WillingToWorkVacationWeek bool
	HireDate                  *time.Time
	LastCallTime              *time.Time
	IsActive                  bool
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// DefaultMaxWeeklyHours applies when an employee record has no explicit cap.
const DefaultMaxWeeklyHours = 40.0

func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// WeeklyHoursCap returns the employee's cap, falling back to the 40-hour
// default when unset.
func (e Employee) WeeklyHoursCap() float64 {
	if e.MaxWeeklyHours > 0 {
		return e.MaxWeeklyHours
	}
	return DefaultMaxWeeklyHours
}

// HasRole reports whether roleID is in the employee's eligible role set.
func (e Employee) HasRole(roleID string) bool {
	for _, id := range e.RoleIDs {
		if id == roleID {
			return true
		}
	}
	return false
}
