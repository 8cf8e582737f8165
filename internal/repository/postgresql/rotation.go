package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jsgrayson/scheduler/internal/domain/rotation"
	"github.com/jsgrayson/scheduler/internal/pkg/database"
)

type rotationRepositoryImpl struct {
	db *database.DB
}

func NewRotationRepository(db *database.DB) rotation.Repository {
	return &rotationRepositoryImpl{db: db}
}

// Get implements rotation.Repository.
func (r *rotationRepositoryImpl) Get(ctx context.Context, contextKey string) (*rotation.State, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT context_key, last_employee_id, updated_at
		FROM rotation_states
		WHERE context_key = $1
	`
	var state rotation.State
	err := q.QueryRow(ctx, query, contextKey).Scan(&state.ContextKey, &state.LastEmployeeID, &state.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

// Upsert implements rotation.Repository. Single-row last-writer-wins.
func (r *rotationRepositoryImpl) Upsert(ctx context.Context, contextKey string, lastEmployeeID string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO rotation_states (context_key, last_employee_id, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (context_key)
		DO UPDATE SET last_employee_id = EXCLUDED.last_employee_id, updated_at = NOW()
	`
	_, err := q.Exec(ctx, query, contextKey, lastEmployeeID)
	return err
}
