package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jsgrayson/scheduler/internal/domain/employee"
	"github.com/jsgrayson/scheduler/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.first_name, e.last_name, e.email, e.phone, e.default_role_id,
	COALESCE(array_agg(er.role_id ORDER BY er.role_id) FILTER (WHERE er.role_id IS NOT NULL), '{}'),
	e.is_full_time, e.max_weekly_hours, e.willing_to_work_vacation_week,
	e.hire_date, e.last_call_time, e.is_active, e.created_at, e.updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Phone, &e.DefaultRoleID,
		&e.RoleIDs,
		&e.IsFullTime, &e.MaxWeeklyHours, &e.WillingToWorkVacationWeek,
		&e.HireDate, &e.LastCallTime, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Create implements employee.Repository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	emp.ID = uuid.New().String()

	query := `
		INSERT INTO employees (id, first_name, last_name, email, phone, default_role_id,
			is_full_time, max_weekly_hours, willing_to_work_vacation_week, hire_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE)
	`
	_, err := q.Exec(ctx, query,
		emp.ID, emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.DefaultRoleID,
		emp.IsFullTime, emp.MaxWeeklyHours, emp.WillingToWorkVacationWeek, emp.HireDate,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	if err := r.replaceRoles(ctx, emp.ID, emp.RoleIDs); err != nil {
		return employee.Employee{}, err
	}
	return r.GetByID(ctx, emp.ID)
}

// GetByID implements employee.Repository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN employee_roles er ON er.employee_id = e.id
		WHERE e.id = $1
		GROUP BY e.id
	`
	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// List implements employee.Repository.
func (r *employeeRepositoryImpl) List(ctx context.Context, includeInactive bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN employee_roles er ON er.employee_id = e.id
		WHERE ($1 OR e.is_active)
		GROUP BY e.id
		ORDER BY e.first_name, e.last_name, e.id
	`
	rows, err := q.Query(ctx, query, includeInactive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// Update implements employee.Repository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, email = $4, phone = $5, default_role_id = $6,
			is_full_time = $7, max_weekly_hours = $8, willing_to_work_vacation_week = $9,
			hire_date = $10, is_active = $11, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		emp.ID, emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.DefaultRoleID,
		emp.IsFullTime, emp.MaxWeeklyHours, emp.WillingToWorkVacationWeek,
		emp.HireDate, emp.IsActive,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	if tag.RowsAffected() == 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err := r.replaceRoles(ctx, emp.ID, emp.RoleIDs); err != nil {
		return employee.Employee{}, err
	}
	return r.GetByID(ctx, emp.ID)
}

// Delete implements employee.Repository. The shifts FK restricts deleting a
// referenced employee; callers check HasShifts first.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Deactivate implements employee.Repository.
func (r *employeeRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE employees
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// SetLastCallTime implements employee.Repository.
func (r *employeeRepositoryImpl) SetLastCallTime(ctx context.Context, id string, calledAt time.Time) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE employees
		SET last_call_time = $2, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, id, calledAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// HasShifts implements employee.Repository.
func (r *employeeRepositoryImpl) HasShifts(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)
	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM shifts WHERE employee_id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *employeeRepositoryImpl) replaceRoles(ctx context.Context, employeeID string, roleIDs []string) error {
	q := GetQuerier(ctx, r.db)
	if _, err := q.Exec(ctx, `DELETE FROM employee_roles WHERE employee_id = $1`, employeeID); err != nil {
		return err
	}
	for _, roleID := range roleIDs {
		_, err := q.Exec(ctx,
			`INSERT INTO employee_roles (employee_id, role_id) VALUES ($1, $2)`,
			employeeID, roleID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
