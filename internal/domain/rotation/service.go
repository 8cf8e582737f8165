package rotation

import (
	"context"

	"github.com/jsgrayson/scheduler/internal/domain/employee"
)

type Service interface {
	// Order returns the pool in fair-call order for the context: canonical
	// order rotated so the employee after the last-called one goes first.
	Order(ctx context.Context, contextKey string, pool []employee.Employee) ([]employee.Employee, error)

	// MarkCalled overwrites the context's last-called pointer.
	MarkCalled(ctx context.Context, req MarkCalledRequest) error
}
