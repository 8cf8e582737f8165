// Package servicetest provides in-memory repository fakes shared by the
// service layer tests.
package servicetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsgrayson/scheduler/internal/domain/availability"
	"github.com/jsgrayson/scheduler/internal/domain/employee"
	"github.com/jsgrayson/scheduler/internal/domain/role"
	"github.com/jsgrayson/scheduler/internal/domain/rotation"
	"github.com/jsgrayson/scheduler/internal/domain/shift"
	"github.com/jsgrayson/scheduler/internal/domain/template"
	"github.com/jsgrayson/scheduler/internal/pkg/timeweek"
)

// TxRunner satisfies shift.TxRunner without a database: the callback runs
// under a process-wide mutex, which is serialization enough for tests.
type TxRunner struct {
	mu sync.Mutex
	// Calls records the employee IDs locked, in order.
	Calls []string
}

func (t *TxRunner) WithEmployeeTx(ctx context.Context, employeeID string, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Calls = append(t.Calls, employeeID)
	return fn(ctx)
}

type ShiftRepo struct {
	mu     sync.Mutex
	shifts map[string]shift.Shift
}

func NewShiftRepo() *ShiftRepo {
	return &ShiftRepo{shifts: make(map[string]shift.Shift)}
}

// Seed stores a shift as-is, assigning an ID when missing.
func (r *ShiftRepo) Seed(s shift.Shift) shift.Shift {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	r.shifts[s.ID] = s
	return s
}

func (r *ShiftRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.shifts)
}

func (r *ShiftRepo) All() []shift.Shift {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]shift.Shift, 0, len(r.shifts))
	for _, s := range r.shifts {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}

func (r *ShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = uuid.New().String()
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	r.shifts[s.ID] = s
	return s, nil
}

func (r *ShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (r *ShiftRepo) Update(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shifts[s.ID]; !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	s.UpdatedAt = time.Now()
	r.shifts[s.ID] = s
	return s, nil
}

func (r *ShiftRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shifts[id]; !ok {
		return shift.ErrShiftNotFound
	}
	delete(r.shifts, id)
	return nil
}

func (r *ShiftRepo) ListRange(ctx context.Context, start, end time.Time) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range r.All() {
		if timeweek.Overlaps(s.StartTime, s.EndTime, start, end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *ShiftRepo) ListByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range r.All() {
		if s.EmployeeID != nil && *s.EmployeeID == employeeID &&
			timeweek.Overlaps(s.StartTime, s.EndTime, start, end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *ShiftRepo) ListFuture(ctx context.Context, employeeID string, from time.Time) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range r.All() {
		if s.EmployeeID != nil && *s.EmployeeID == employeeID && !s.StartTime.Before(from) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *ShiftRepo) FindOverlapping(ctx context.Context, employeeID string, start, end time.Time, excludeID string) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range r.All() {
		if s.ID == excludeID || s.EmployeeID == nil || *s.EmployeeID != employeeID {
			continue
		}
		if timeweek.Overlaps(s.StartTime, s.EndTime, start, end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *ShiftRepo) FindAt(ctx context.Context, employeeID string, start time.Time) (*shift.Shift, error) {
	for _, s := range r.All() {
		if s.EmployeeID != nil && *s.EmployeeID == employeeID && s.StartTime.Equal(start) {
			found := s
			return &found, nil
		}
	}
	return nil, nil
}

func (r *ShiftRepo) ListLockedByTemplate(ctx context.Context, templateID string, from time.Time) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range r.All() {
		if s.TemplateID != nil && *s.TemplateID == templateID && s.IsLocked && !s.StartTime.Before(from) {
			out = append(out, s)
		}
	}
	return out, nil
}

type EmployeeRepo struct {
	mu        sync.Mutex
	employees map[string]employee.Employee
	// ShiftCheck backs HasShifts; nil means no employee has shifts.
	ShiftCheck func(employeeID string) bool
}

func NewEmployeeRepo(seed ...employee.Employee) *EmployeeRepo {
	r := &EmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range seed {
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		if !e.IsActive {
			e.IsActive = true
		}
		r.employees[e.ID] = e
	}
	return r
}

func (r *EmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	emp.ID = uuid.New().String()
	emp.IsActive = true
	now := time.Now()
	emp.CreatedAt = now
	emp.UpdatedAt = now
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *EmployeeRepo) List(ctx context.Context, includeInactive bool) ([]employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]employee.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		if !includeInactive && !e.IsActive {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *EmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[emp.ID]; !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	emp.UpdatedAt = time.Now()
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

func (r *EmployeeRepo) Deactivate(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.IsActive = false
	r.employees[id] = e
	return nil
}

func (r *EmployeeRepo) SetLastCallTime(ctx context.Context, id string, calledAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.LastCallTime = &calledAt
	r.employees[id] = e
	return nil
}

func (r *EmployeeRepo) HasShifts(ctx context.Context, id string) (bool, error) {
	if r.ShiftCheck == nil {
		return false, nil
	}
	return r.ShiftCheck(id), nil
}

type RoleRepo struct {
	roles map[string]role.Role
}

func NewRoleRepo(seed ...role.Role) *RoleRepo {
	r := &RoleRepo{roles: make(map[string]role.Role)}
	for _, rl := range seed {
		if rl.ID == "" {
			rl.ID = uuid.New().String()
		}
		r.roles[rl.ID] = rl
	}
	return r
}

func (r *RoleRepo) List(ctx context.Context) ([]role.Role, error) {
	out := make([]role.Role, 0, len(r.roles))
	for _, rl := range r.roles {
		out = append(out, rl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *RoleRepo) GetByID(ctx context.Context, id string) (role.Role, error) {
	rl, ok := r.roles[id]
	if !ok {
		return role.Role{}, role.ErrRoleNotFound
	}
	return rl, nil
}

type TemplateRepo struct {
	mu        sync.Mutex
	templates map[string]template.ShiftTemplate
}

func NewTemplateRepo() *TemplateRepo {
	return &TemplateRepo{templates: make(map[string]template.ShiftTemplate)}
}

func (r *TemplateRepo) Seed(t template.ShiftTemplate) template.ShiftTemplate {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	r.templates[t.ID] = t
	return t
}

func (r *TemplateRepo) List(ctx context.Context, employeeID *string, dayOfWeek *int) ([]template.ShiftTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []template.ShiftTemplate
	for _, t := range r.templates {
		if employeeID != nil && t.EmployeeID != *employeeID {
			continue
		}
		if dayOfWeek != nil && t.DayOfWeek != *dayOfWeek {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DayOfWeek != out[j].DayOfWeek {
			return out[i].DayOfWeek < out[j].DayOfWeek
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (r *TemplateRepo) GetByID(ctx context.Context, id string) (template.ShiftTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.templates[id]
	if !ok {
		return template.ShiftTemplate{}, template.ErrTemplateNotFound
	}
	return t, nil
}

func (r *TemplateRepo) Create(ctx context.Context, t template.ShiftTemplate) (template.ShiftTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = uuid.New().String()
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	r.templates[t.ID] = t
	return t, nil
}

func (r *TemplateRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[id]; !ok {
		return template.ErrTemplateNotFound
	}
	delete(r.templates, id)
	return nil
}

func (r *TemplateRepo) DeleteForSlot(ctx context.Context, employeeID string, dayOfWeek int) ([]template.ShiftTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed []template.ShiftTemplate
	for id, t := range r.templates {
		if t.EmployeeID == employeeID && t.DayOfWeek == dayOfWeek {
			removed = append(removed, t)
			delete(r.templates, id)
		}
	}
	return removed, nil
}

type RotationRepo struct {
	mu     sync.Mutex
	states map[string]rotation.State
}

func NewRotationRepo() *RotationRepo {
	return &RotationRepo{states: make(map[string]rotation.State)}
}

func (r *RotationRepo) Get(ctx context.Context, contextKey string) (*rotation.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.states[contextKey]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *RotationRepo) Upsert(ctx context.Context, contextKey string, lastEmployeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[contextKey] = rotation.State{
		ContextKey:     contextKey,
		LastEmployeeID: lastEmployeeID,
		UpdatedAt:      time.Now(),
	}
	return nil
}

type AvailabilityRepo struct {
	mu      sync.Mutex
	windows map[string]availability.Window
}

func NewAvailabilityRepo() *AvailabilityRepo {
	return &AvailabilityRepo{windows: make(map[string]availability.Window)}
}

func (r *AvailabilityRepo) Seed(w availability.Window) availability.Window {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	r.windows[w.ID] = w
	return w
}

func (r *AvailabilityRepo) List(ctx context.Context, employeeID *string) ([]availability.Window, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []availability.Window
	for _, w := range r.windows {
		if employeeID != nil && w.EmployeeID != *employeeID {
			continue
		}
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *AvailabilityRepo) ListForDay(ctx context.Context, dayOfWeek int) ([]availability.Window, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []availability.Window
	for _, w := range r.windows {
		if w.DayOfWeek == dayOfWeek {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *AvailabilityRepo) Create(ctx context.Context, w availability.Window) (availability.Window, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w.ID = uuid.New().String()
	w.CreatedAt = time.Now()
	r.windows[w.ID] = w
	return w, nil
}

func (r *AvailabilityRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.windows[id]; !ok {
		return availability.ErrWindowNotFound
	}
	delete(r.windows, id)
	return nil
}
