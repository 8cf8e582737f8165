package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jsgrayson/scheduler/internal/domain/template"
	"github.com/jsgrayson/scheduler/internal/pkg/database"
)

type templateRepositoryImpl struct {
	db *database.DB
}

func NewTemplateRepository(db *database.DB) template.Repository {
	return &templateRepositoryImpl{db: db}
}

const templateColumns = `
	id, employee_id, day_of_week, role_id,
	to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
	location, booth_number, sync_to_locked, created_at, updated_at
`

func scanTemplate(row pgx.Row) (template.ShiftTemplate, error) {
	var t template.ShiftTemplate
	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.DayOfWeek, &t.RoleID,
		&t.StartTime, &t.EndTime,
		&t.Location, &t.BoothNumber, &t.SyncToLocked, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// List implements template.Repository.
func (r *templateRepositoryImpl) List(ctx context.Context, employeeID *string, dayOfWeek *int) ([]template.ShiftTemplate, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + templateColumns + `
		FROM shift_templates
		WHERE ($1::uuid IS NULL OR employee_id = $1)
		  AND ($2::int IS NULL OR day_of_week = $2)
		ORDER BY day_of_week, start_time, id
	`
	rows, err := q.Query(ctx, query, employeeID, dayOfWeek)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []template.ShiftTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// GetByID implements template.Repository.
func (r *templateRepositoryImpl) GetByID(ctx context.Context, id string) (template.ShiftTemplate, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + templateColumns + ` FROM shift_templates WHERE id = $1`
	t, err := scanTemplate(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return template.ShiftTemplate{}, template.ErrTemplateNotFound
		}
		return template.ShiftTemplate{}, err
	}
	return t, nil
}

// Create implements template.Repository.
func (r *templateRepositoryImpl) Create(ctx context.Context, t template.ShiftTemplate) (template.ShiftTemplate, error) {
	q := GetQuerier(ctx, r.db)
	t.ID = uuid.New().String()

	query := `
		INSERT INTO shift_templates (id, employee_id, day_of_week, role_id,
			start_time, end_time, location, booth_number, sync_to_locked)
		VALUES ($1, $2, $3, $4, $5::time, $6::time, $7, $8, $9)
		RETURNING ` + templateColumns
	created, err := scanTemplate(q.QueryRow(ctx, query,
		t.ID, t.EmployeeID, t.DayOfWeek, t.RoleID,
		t.StartTime, t.EndTime, t.Location, t.BoothNumber, t.SyncToLocked,
	))
	if err != nil {
		return template.ShiftTemplate{}, err
	}
	return created, nil
}

// Delete implements template.Repository.
func (r *templateRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM shift_templates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return template.ErrTemplateNotFound
	}
	return nil
}

// DeleteForSlot implements template.Repository.
func (r *templateRepositoryImpl) DeleteForSlot(ctx context.Context, employeeID string, dayOfWeek int) ([]template.ShiftTemplate, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM shift_templates
		WHERE employee_id = $1 AND day_of_week = $2
		RETURNING ` + templateColumns
	rows, err := q.Query(ctx, query, employeeID, dayOfWeek)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var removed []template.ShiftTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		removed = append(removed, t)
	}
	return removed, rows.Err()
}
