package rotation

import "github.com/jsgrayson/scheduler/internal/pkg/validator"

type MarkCalledRequest struct {
	ContextKey     string `json:"context_key"`
	LastEmployeeID string `json:"last_employee_id"`
}

func (r *MarkCalledRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ContextKey) {
		errs = append(errs, validator.ValidationError{
			Field:   "context_key",
			Message: "context_key is required",
		})
	}
	if validator.IsEmpty(r.LastEmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_employee_id",
			Message: "last_employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
