package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jsgrayson/scheduler/internal/domain/shift"
	"github.com/jsgrayson/scheduler/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `
	id, employee_id, role_id, start_time, end_time, location, booth_number,
	notes, is_vacation, is_locked, parent_id, template_id, created_at, updated_at
`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.RoleID, &s.StartTime, &s.EndTime, &s.Location, &s.BoothNumber,
		&s.Notes, &s.IsVacation, &s.IsLocked, &s.ParentID, &s.TemplateID, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *shiftRepositoryImpl) queryShifts(ctx context.Context, query string, args ...any) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

// Create implements shift.Repository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)
	s.ID = uuid.New().String()

	query := `
		INSERT INTO shifts (id, employee_id, role_id, start_time, end_time, location,
			booth_number, notes, is_vacation, is_locked, parent_id, template_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + shiftColumns
	return scanShiftRow(q.QueryRow(ctx, query,
		s.ID, s.EmployeeID, s.RoleID, s.StartTime, s.EndTime, s.Location,
		s.BoothNumber, s.Notes, s.IsVacation, s.IsLocked, s.ParentID, s.TemplateID,
	))
}

// GetByID implements shift.Repository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`
	return scanShiftRow(q.QueryRow(ctx, query, id))
}

// Update implements shift.Repository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE shifts
		SET employee_id = $2, role_id = $3, start_time = $4, end_time = $5, location = $6,
			booth_number = $7, notes = $8, is_vacation = $9, is_locked = $10,
			parent_id = $11, template_id = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + shiftColumns
	return scanShiftRow(q.QueryRow(ctx, query,
		s.ID, s.EmployeeID, s.RoleID, s.StartTime, s.EndTime, s.Location,
		s.BoothNumber, s.Notes, s.IsVacation, s.IsLocked, s.ParentID, s.TemplateID,
	))
}

// Delete implements shift.Repository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// ListRange implements shift.Repository.
func (r *shiftRepositoryImpl) ListRange(ctx context.Context, start, end time.Time) ([]shift.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE start_time < $2 AND end_time > $1
		ORDER BY start_time, id
	`
	return r.queryShifts(ctx, query, start, end)
}

// ListByEmployee implements shift.Repository.
func (r *shiftRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]shift.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE employee_id = $1 AND start_time < $3 AND end_time > $2
		ORDER BY start_time, id
	`
	return r.queryShifts(ctx, query, employeeID, start, end)
}

// ListFuture implements shift.Repository.
func (r *shiftRepositoryImpl) ListFuture(ctx context.Context, employeeID string, from time.Time) ([]shift.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE employee_id = $1 AND start_time >= $2
		ORDER BY start_time, id
	`
	return r.queryShifts(ctx, query, employeeID, from)
}

// FindOverlapping implements shift.Repository. Half-open interval overlap:
// back-to-back shifts do not collide.
func (r *shiftRepositoryImpl) FindOverlapping(ctx context.Context, employeeID string, start, end time.Time, excludeID string) ([]shift.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE employee_id = $1
		  AND start_time < $3 AND end_time > $2
		  AND (NULLIF($4, '') IS NULL OR id != NULLIF($4, '')::uuid)
		ORDER BY start_time, id
	`
	return r.queryShifts(ctx, query, employeeID, start, end, excludeID)
}

// FindAt implements shift.Repository.
func (r *shiftRepositoryImpl) FindAt(ctx context.Context, employeeID string, start time.Time) (*shift.Shift, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE employee_id = $1 AND start_time = $2
		LIMIT 1
	`
	s, err := scanShift(q.QueryRow(ctx, query, employeeID, start))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// ListLockedByTemplate implements shift.Repository.
func (r *shiftRepositoryImpl) ListLockedByTemplate(ctx context.Context, templateID string, from time.Time) ([]shift.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE template_id = $1 AND is_locked AND start_time >= $2
		ORDER BY start_time, id
	`
	return r.queryShifts(ctx, query, templateID, from)
}

func scanShiftRow(row pgx.Row) (shift.Shift, error) {
	s, err := scanShift(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, err
	}
	return s, nil
}
