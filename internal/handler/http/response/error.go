package response

import (
	"errors"
	"net/http"

	"github.com/jsgrayson/scheduler/internal/domain/auth"
	"github.com/jsgrayson/scheduler/internal/domain/availability"
	"github.com/jsgrayson/scheduler/internal/domain/employee"
	"github.com/jsgrayson/scheduler/internal/domain/role"
	"github.com/jsgrayson/scheduler/internal/domain/shift"
	"github.com/jsgrayson/scheduler/internal/domain/template"
	"github.com/jsgrayson/scheduler/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var conflict *shift.ConflictError
	if errors.As(err, &conflict) {
		ShiftConflict(w, "Shift overlaps existing shifts for this employee", conflict.Overlaps)
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")

	// Employees and roles
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeReferenced):
		Conflict(w, "Employee has shifts; deactivate instead of deleting")
	case errors.Is(err, employee.ErrDefaultRoleNotEligible):
		BadRequest(w, "Default role must be one of the employee's eligible roles", nil)
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")
	case errors.Is(err, availability.ErrWindowNotFound):
		NotFound(w, "Availability window not found")

	// Shifts
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftLocked):
		Conflict(w, "Shift is locked")

	// Templates
	case errors.Is(err, template.ErrTemplateNotFound):
		NotFound(w, "Shift template not found")
	case errors.Is(err, template.ErrStartNotWeekStart):
		BadRequest(w, "Start date must fall on the business week start day", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
