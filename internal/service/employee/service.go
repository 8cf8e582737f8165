package employee

import (
	"context"
	"time"

	"github.com/jsgrayson/scheduler/internal/domain/employee"
	"github.com/jsgrayson/scheduler/internal/domain/role"
	"github.com/jsgrayson/scheduler/internal/pkg/validator"
)

type employeeServiceImpl struct {
	repo     employee.Repository
	roleRepo role.Repository
}

func NewEmployeeService(repo employee.Repository, roleRepo role.Repository) employee.Service {
	return &employeeServiceImpl{repo: repo, roleRepo: roleRepo}
}

// Create implements employee.Service. Full-timers never carry the
// vacation-week opt-in; it only means something for part-time coverage.
func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := s.checkRolesExist(ctx, req.RoleIDs); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		DefaultRoleID: req.DefaultRoleID,
		RoleIDs:       req.RoleIDs,
		IsFullTime:    req.IsFullTime,
	}
	if req.MaxWeeklyHours != nil {
		emp.MaxWeeklyHours = *req.MaxWeeklyHours
	}
	if req.WillingToWorkVacationWeek != nil && !req.IsFullTime {
		emp.WillingToWorkVacationWeek = *req.WillingToWorkVacationWeek
	}
	if req.HireDate != nil {
		hire, _ := validator.IsValidDate(*req.HireDate)
		emp.HireDate = &hire
	}

	created, err := s.repo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(created), nil
}

// GetByID implements employee.Service.
func (s *employeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements employee.Service.
func (s *employeeServiceImpl) List(ctx context.Context, includeInactive bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, employee.ToResponse(e))
	}
	return out, nil
}

// Update implements employee.Service. Partial update; the default-role-in-
// eligible-set invariant is re-checked against the merged record.
func (s *employeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Email != nil {
		emp.Email = req.Email
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.RoleIDs != nil {
		if err := s.checkRolesExist(ctx, req.RoleIDs); err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.RoleIDs = req.RoleIDs
	}
	if req.DefaultRoleID != nil {
		emp.DefaultRoleID = req.DefaultRoleID
	}
	if req.IsFullTime != nil {
		emp.IsFullTime = *req.IsFullTime
	}
	if req.MaxWeeklyHours != nil {
		emp.MaxWeeklyHours = *req.MaxWeeklyHours
	}
	if req.WillingToWorkVacationWeek != nil {
		emp.WillingToWorkVacationWeek = *req.WillingToWorkVacationWeek
	}
	if req.HireDate != nil {
		hire, _ := validator.IsValidDate(*req.HireDate)
		emp.HireDate = &hire
	}

	if emp.IsFullTime {
		emp.WillingToWorkVacationWeek = false
	}
	if emp.DefaultRoleID != nil && !emp.HasRole(*emp.DefaultRoleID) {
		return employee.EmployeeResponse{}, employee.ErrDefaultRoleNotEligible
	}

	updated, err := s.repo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(updated), nil
}

// Delete implements employee.Service.
func (s *employeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	referenced, err := s.repo.HasShifts(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return employee.ErrEmployeeReferenced
	}
	return s.repo.Delete(ctx, id)
}

// Deactivate implements employee.Service.
func (s *employeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}

// MarkCalled implements employee.Service.
func (s *employeeServiceImpl) MarkCalled(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SetLastCallTime(ctx, id, time.Now())
}

func (s *employeeServiceImpl) checkRolesExist(ctx context.Context, roleIDs []string) error {
	for _, id := range roleIDs {
		if _, err := s.roleRepo.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
