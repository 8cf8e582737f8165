package employee

import "context"

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, includeInactive bool) ([]EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Delete removes an employee with no shift history outright. Anyone
	// referenced by shifts gets ErrEmployeeReferenced; deactivate instead.
	Delete(ctx context.Context, id string) error

	// Deactivate soft-deletes: the employee drops out of pools and listings
	// but their shift history survives.
	Deactivate(ctx context.Context, id string) error

	// MarkCalled stamps the employee's last-call time, feeding the
	// part-time call ordering.
	MarkCalled(ctx context.Context, id string) error
}
