package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jsgrayson/scheduler/internal/domain/role"
	"github.com/jsgrayson/scheduler/internal/pkg/database"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.Repository {
	return &roleRepositoryImpl{db: db}
}

// List implements role.Repository.
func (r *roleRepositoryImpl) List(ctx context.Context) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, color_hex, category, created_at, updated_at
		FROM roles
		ORDER BY name
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []role.Role
	for rows.Next() {
		var rl role.Role
		if err := rows.Scan(&rl.ID, &rl.Name, &rl.ColorHex, &rl.Category, &rl.CreatedAt, &rl.UpdatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, rl)
	}
	return roles, rows.Err()
}

// GetByID implements role.Repository.
func (r *roleRepositoryImpl) GetByID(ctx context.Context, id string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, color_hex, category, created_at, updated_at
		FROM roles
		WHERE id = $1
	`
	var rl role.Role
	err := q.QueryRow(ctx, query, id).Scan(&rl.ID, &rl.Name, &rl.ColorHex, &rl.Category, &rl.CreatedAt, &rl.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return role.Role{}, role.ErrRoleNotFound
		}
		return role.Role{}, err
	}
	return rl, nil
}
