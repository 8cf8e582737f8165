package rotation

import "context"

type Repository interface {
	// Get returns nil when no pointer is recorded for the context yet.
	Get(ctx context.Context, contextKey string) (*State, error)

	// Upsert unconditionally overwrites the pointer (last-writer-wins).
	Upsert(ctx context.Context, contextKey string, lastEmployeeID string) error
}
