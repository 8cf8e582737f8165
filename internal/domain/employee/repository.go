package employee

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, includeInactive bool) ([]Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)

	// Delete removes the row. Callers must check HasShifts first; the
	// schema restricts deleting a referenced employee.
	Delete(ctx context.Context, id string) error

	// Deactivate soft-deletes the employee; shifts keep referencing the row.
	Deactivate(ctx context.Context, id string) error

	// SetLastCallTime records when the employee was last phoned for coverage.
	SetLastCallTime(ctx context.Context, id string, calledAt time.Time) error

	// HasShifts reports whether any shift references the employee.
	HasShifts(ctx context.Context, id string) (bool, error)
}
