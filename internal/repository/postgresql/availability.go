package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jsgrayson/scheduler/internal/domain/availability"
	"github.com/jsgrayson/scheduler/internal/pkg/database"
)

type availabilityRepositoryImpl struct {
	db *database.DB
}

func NewAvailabilityRepository(db *database.DB) availability.Repository {
	return &availabilityRepositoryImpl{db: db}
}

const availabilityColumns = `
	id, employee_id, day_of_week,
	to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
	is_available, created_at
`

func scanWindow(row pgx.Row) (availability.Window, error) {
	var w availability.Window
	err := row.Scan(
		&w.ID, &w.EmployeeID, &w.DayOfWeek,
		&w.StartTime, &w.EndTime,
		&w.IsAvailable, &w.CreatedAt,
	)
	return w, err
}

func (r *availabilityRepositoryImpl) queryWindows(ctx context.Context, query string, args ...interface{}) ([]availability.Window, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var windows []availability.Window
	for rows.Next() {
		w, err := scanWindow(rows)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, rows.Err()
}

// List implements availability.Repository.
func (r *availabilityRepositoryImpl) List(ctx context.Context, employeeID *string) ([]availability.Window, error) {
	query := `
		SELECT ` + availabilityColumns + `
		FROM availability_windows
		WHERE ($1::uuid IS NULL OR employee_id = $1)
		ORDER BY employee_id, day_of_week, start_time, id
	`
	return r.queryWindows(ctx, query, employeeID)
}

// ListForDay implements availability.Repository.
func (r *availabilityRepositoryImpl) ListForDay(ctx context.Context, dayOfWeek int) ([]availability.Window, error) {
	query := `
		SELECT ` + availabilityColumns + `
		FROM availability_windows
		WHERE day_of_week = $1
		ORDER BY employee_id, start_time, id
	`
	return r.queryWindows(ctx, query, dayOfWeek)
}

// Create implements availability.Repository.
func (r *availabilityRepositoryImpl) Create(ctx context.Context, w availability.Window) (availability.Window, error) {
	q := GetQuerier(ctx, r.db)
	w.ID = uuid.New().String()

	query := `
		INSERT INTO availability_windows (id, employee_id, day_of_week, start_time, end_time, is_available)
		VALUES ($1, $2, $3, $4::time, $5::time, $6)
		RETURNING ` + availabilityColumns
	created, err := scanWindow(q.QueryRow(ctx, query,
		w.ID, w.EmployeeID, w.DayOfWeek, w.StartTime, w.EndTime, w.IsAvailable,
	))
	if err != nil {
		return availability.Window{}, err
	}
	return created, nil
}

// Delete implements availability.Repository.
func (r *availabilityRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM availability_windows WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return availability.ErrWindowNotFound
	}
	return nil
}
