package employee

import (
	"time"

	"github.com/jsgrayson/scheduler/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName                 string   `json:"first_name"`
	LastName                  string   `json:"last_name"`
	Email                     *string  `json:"email"`
	Phone                     *string  `json:"phone"`
	DefaultRoleID             *string  `json:"default_role_id"`
	RoleIDs                   []string `json:"role_ids"`
	IsFullTime                bool     `json:"is_full_time"`
	MaxWeeklyHours            *float64 `json:"max_weekly_hours"`
	WillingToWorkVacationWeek *bool    `json:"willing_to_work_vacation_week"`
	HireDate                  *string  `json:"hire_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}
	if r.DefaultRoleID != nil && !validator.IsValidUUID(*r.DefaultRoleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_role_id",
			Message: "default_role_id must be a valid id",
		})
	}
	for _, id := range r.RoleIDs {
		if !validator.IsValidUUID(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "role_ids",
				Message: "role_ids must all be valid ids",
			})
			break
		}
	}
	if r.DefaultRoleID != nil && !validator.IsInSlice(*r.DefaultRoleID, r.RoleIDs) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_role_id",
			Message: "default_role_id must be one of role_ids",
		})
	}
	if r.MaxWeeklyHours != nil && *r.MaxWeeklyHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_weekly_hours",
			Message: "max_weekly_hours must be a positive number",
		})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	FirstName                 *string  `json:"first_name"`
	LastName                  *string  `json:"last_name"`
	Email                     *string  `json:"email"`
	Phone                     *string  `json:"phone"`
	DefaultRoleID             *string  `json:"default_role_id"`
	RoleIDs                   []string `json:"role_ids"`
	IsFullTime                *bool    `json:"is_full_time"`
	MaxWeeklyHours            *float64 `json:"max_weekly_hours"`
	WillingToWorkVacationWeek *bool    `json:"willing_to_work_vacation_week"`
	HireDate                  *string  `json:"hire_date"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name cannot be blank",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}
	if r.MaxWeeklyHours != nil && *r.MaxWeeklyHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_weekly_hours",
			Message: "max_weekly_hours must be a positive number",
		})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                        string   `json:"id"`
	FirstName                 string   `json:"first_name"`
	LastName                  string   `json:"last_name"`
	Email                     *string  `json:"email,omitempty"`
	Phone                     *string  `json:"phone,omitempty"`
	DefaultRoleID             *string  `json:"default_role_id,omitempty"`
	RoleIDs                   []string `json:"role_ids"`
	IsFullTime                bool     `json:"is_full_time"`
	MaxWeeklyHours            float64  `json:"max_weekly_hours"`
	WillingToWorkVacationWeek bool     `json:"willing_to_work_vacation_week"`
	HireDate                  *string  `json:"hire_date,omitempty"`
	LastCallTime              *string  `json:"last_call_time,omitempty"`
	IsActive                  bool     `json:"is_active"`
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                        e.ID,
		FirstName:                 e.FirstName,
		LastName:                  e.LastName,
		Email:                     e.Email,
		Phone:                     e.Phone,
		DefaultRoleID:             e.DefaultRoleID,
		RoleIDs:                   e.RoleIDs,
		IsFullTime:                e.IsFullTime,
		MaxWeeklyHours:            e.WeeklyHoursCap(),
		WillingToWorkVacationWeek: e.WillingToWorkVacationWeek,
		IsActive:                  e.IsActive,
	}
	if e.HireDate != nil {
		d := e.HireDate.Format("2006-01-02")
		resp.HireDate = &d
	}
	if e.LastCallTime != nil {
		t := e.LastCallTime.Format(time.RFC3339)
		resp.LastCallTime = &t
	}
	return resp
}
