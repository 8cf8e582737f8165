package shift

import (
	"context"
	"time"
)

// Repository is the shift store. Writes that participate in the per-employee
// critical section run inside a transaction installed on the context by the
// service layer.
type Repository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	Update(ctx context.Context, s Shift) (Shift, error)
	Delete(ctx context.Context, id string) error

	// ListRange returns shifts whose interval intersects [start, end).
	ListRange(ctx context.Context, start, end time.Time) ([]Shift, error)

	// ListByEmployee returns the employee's shifts intersecting [start, end).
	ListByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]Shift, error)

	// ListFuture returns the employee's shifts starting at or after from,
	// ordered by start time.
	ListFuture(ctx context.Context, employeeID string, from time.Time) ([]Shift, error)

	// FindOverlapping returns the employee's shifts overlapping [start, end),
	// excluding excludeID when non-empty (the shift being updated).
	FindOverlapping(ctx context.Context, employeeID string, start, end time.Time, excludeID string) ([]Shift, error)

	// FindAt returns the employee's shift starting exactly at start, if any.
	// Used by template projection to keep re-runs add-only.
	FindAt(ctx context.Context, employeeID string, start time.Time) (*Shift, error)

	// ListLockedByTemplate returns future locked shifts materialized from the
	// template, for sync-to-locked patching.
	ListLockedByTemplate(ctx context.Context, templateID string, from time.Time) ([]Shift, error)
}
