package template

import "context"

type Repository interface {
	// List returns templates, optionally filtered by employee and/or day.
	// Pass nil to leave a filter open.
	List(ctx context.Context, employeeID *string, dayOfWeek *int) ([]ShiftTemplate, error)
	GetByID(ctx context.Context, id string) (ShiftTemplate, error)
	Create(ctx context.Context, t ShiftTemplate) (ShiftTemplate, error)
	Delete(ctx context.Context, id string) error

	// DeleteForSlot removes any template for the (employee, day) pair and
	// returns the removed templates, enabling the transactional
	// delete-then-insert replace.
	DeleteForSlot(ctx context.Context, employeeID string, dayOfWeek int) ([]ShiftTemplate, error)
}
