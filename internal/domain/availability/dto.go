package availability

import (
	"github.com/jsgrayson/scheduler/internal/pkg/validator"
)

type CreateWindowRequest struct {
	EmployeeID string `json:"employee_id"`
	DayOfWeek  *int   `json:"day_of_week"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	// IsAvailable defaults to true (an available window) when omitted.
	IsAvailable *bool `json:"is_available"`
}

func (r *CreateWindowRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
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
	start, startOK := validator.IsValidTimeOfDay(r.StartTime)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be HH:MM",
		})
	}
	end, endOK := validator.IsValidTimeOfDay(r.EndTime)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be HH:MM",
		})
	}
	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateWindowRequest) Available() bool {
	if r.IsAvailable == nil {
		return true
	}
	return *r.IsAvailable
}

type WindowResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	DayOfWeek   int    `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

func ToResponse(w Window) WindowResponse {
	return WindowResponse{
		ID:          w.ID,
		EmployeeID:  w.EmployeeID,
		DayOfWeek:   w.DayOfWeek,
		StartTime:   w.StartTime,
		EndTime:     w.EndTime,
		IsAvailable: w.IsAvailable,
	}
}

func ToResponses(windows []Window) []WindowResponse {
	out := make([]WindowResponse, 0, len(windows))
	for _, w := range windows {
		out = append(out, ToResponse(w))
	}
	return out
}
