package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrEmployeeReferenced is returned when a hard delete is attempted for an
	// employee that still owns shifts; the caller gets a soft deactivation
	// instead.
	ErrEmployeeReferenced = errors.New("employee is referenced by shifts")
	ErrDefaultRoleNotEligible = errors.New("default role must be one of the employee's eligible roles")
)
