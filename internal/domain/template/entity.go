package template

import "time"

// ShiftTemplate is a recurring weekly shift definition on the master
// schedule: a day-of-week (0 = Saturday, the business week start) plus
// times-of-day, projected into concrete shifts week by week. At most one
// template exists per (employee, day of week); saving replaces the prior one.
type ShiftTemplate struct {
	ID         string
	EmployeeID string
	// DayOfWeek is the business-week index: 0 = Saturday .. 6 = Friday.
	DayOfWeek   int
	RoleID      string
	StartTime   string // "HH:MM"
	EndTime     string // "HH:MM"
	Location    *string
	BoothNumber *string
	// SyncToLocked also patches future locked shifts generated from the
	// replaced template when this one is saved.
	SyncToLocked bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Materialize combines the template's times-of-day with a concrete date.
// Templates whose end time is not after their start time roll the end over to
// the next calendar day (overnight shift).
func (t ShiftTemplate) Materialize(date time.Time) (time.Time, time.Time) {
	start := atTimeOfDay(date, t.StartTime)
	end := atTimeOfDay(date, t.EndTime)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end
}

func atTimeOfDay(date time.Time, hhmm string) time.Time {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	}
	return time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, date.Location())
}
