package shift

import (
	"context"
	"time"
)

type Service interface {
	// Create creates one shift, or a series when a repeat option is set, and
	// returns everything created (vacation cover shifts included).
	Create(ctx context.Context, req CreateShiftRequest) ([]ShiftResponse, error)

	Update(ctx context.Context, id string, req UpdateShiftRequest) (ShiftResponse, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (ShiftResponse, error)
	ListRange(ctx context.Context, start, end time.Time) ([]ShiftResponse, error)

	// Agenda returns the employee's upcoming shifts ordered by start time.
	Agenda(ctx context.Context, employeeID string) ([]ShiftResponse, error)

	BulkUpdate(ctx context.Context, req BulkUpdateRequest) (BulkReport, error)
	BulkDelete(ctx context.Context, req BulkDeleteRequest) (BulkReport, error)

	// ValidateSchedule dry-runs a batch of proposed shifts against stored
	// shifts and against each other without writing anything.
	ValidateSchedule(ctx context.Context, req ValidateScheduleRequest) (ValidationReport, error)
}

// TxRunner is the per-employee critical section: implementations serialize
// fn against other writers for the same employee.
type TxRunner interface {
	WithEmployeeTx(ctx context.Context, employeeID string, fn func(ctx context.Context) error) error
}
