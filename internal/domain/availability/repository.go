package availability

import "context"

type Repository interface {
	// List returns windows, optionally filtered by employee. Pass nil to
	// list everyone's.
	List(ctx context.Context, employeeID *string) ([]Window, error)

	// ListForDay returns every employee's windows for one business day,
	// for grouping in scoring passes.
	ListForDay(ctx context.Context, dayOfWeek int) ([]Window, error)

	Create(ctx context.Context, w Window) (Window, error)
	Delete(ctx context.Context, id string) error
}
