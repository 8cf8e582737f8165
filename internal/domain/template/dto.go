package template

import (
	"github.com/jsgrayson/scheduler/internal/pkg/validator"
)

type SaveTemplateRequest struct {
	EmployeeID   string  `json:"employee_id"`
	DayOfWeek    *int    `json:"day_of_week"`
	RoleID       string  `json:"role_id"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Location     *string `json:"location"`
	BoothNumber  *string `json:"booth_number"`
	SyncToLocked bool    `json:"sync_to_locked"`
}

func (r *SaveTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.RoleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "role_id",
			Message: "role_id is required",
		})
	}
	if r.DayOfWeek == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "day_of_week",
			Message: "day_of_week is required",
		})
	} else if *r.DayOfWeek < 0 || *r.DayOfWeek > 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "day_of_week",
			Message: "day_of_week must be 0-6 (0 = Saturday)",
		})
	}
	if _, ok := validator.IsValidTimeOfDay(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be HH:MM",
		})
	}
	if _, ok := validator.IsValidTimeOfDay(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be HH:MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProjectScheduleRequest struct {
	StartDate string `json:"start_date"`
	NumWeeks  int    `json:"num_weeks"`
}

func (r *ProjectScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if r.NumWeeks < 1 || r.NumWeeks > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "num_weeks",
			Message: "num_weeks must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ImportLockedRequest struct {
	WeekStartDate string `json:"week_start_date"`
}

func (r *ImportLockedRequest) Validate() error {
	if _, ok := validator.IsValidDate(r.WeekStartDate); !ok {
		return validator.ValidationErrors{{
			Field:   "week_start_date",
			Message: "week_start_date must be in YYYY-MM-DD format",
		}}
	}
	return nil
}

// ProjectionReport is the best-effort outcome of a projection run.
type ProjectionReport struct {
	CreatedCount int      `json:"created_count"`
	SkippedCount int      `json:"skipped_count"`
	Errors       []string `json:"errors"`
}

type TemplateResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	DayOfWeek    int     `json:"day_of_week"`
	RoleID       string  `json:"role_id"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Location     *string `json:"location,omitempty"`
	BoothNumber  *string `json:"booth_number,omitempty"`
	SyncToLocked bool    `json:"sync_to_locked"`
}

func ToResponse(t ShiftTemplate) TemplateResponse {
	return TemplateResponse{
		ID:           t.ID,
		EmployeeID:   t.EmployeeID,
		DayOfWeek:    t.DayOfWeek,
		RoleID:       t.RoleID,
		StartTime:    t.StartTime,
		EndTime:      t.EndTime,
		Location:     t.Location,
		BoothNumber:  t.BoothNumber,
		SyncToLocked: t.SyncToLocked,
	}
}
