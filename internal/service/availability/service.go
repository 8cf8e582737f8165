package availability

import (
	"context"

	"github.com/jsgrayson/scheduler/internal/domain/availability"
	"github.com/jsgrayson/scheduler/internal/domain/employee"
)

type availabilityServiceImpl struct {
	repo         availability.Repository
	employeeRepo employee.Repository
}

func NewAvailabilityService(repo availability.Repository, employeeRepo employee.Repository) availability.Service {
	return &availabilityServiceImpl{
		repo:         repo,
		employeeRepo: employeeRepo,
	}
}

// Create implements availability.Service.
func (s *availabilityServiceImpl) Create(ctx context.Context, req availability.CreateWindowRequest) (availability.WindowResponse, error) {
	if err := req.Validate(); err != nil {
		return availability.WindowResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return availability.WindowResponse{}, err
	}

	created, err := s.repo.Create(ctx, availability.Window{
		EmployeeID:  req.EmployeeID,
		DayOfWeek:   *req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: req.Available(),
	})
	if err != nil {
		return availability.WindowResponse{}, err
	}
	return availability.ToResponse(created), nil
}

// List implements availability.Service.
func (s *availabilityServiceImpl) List(ctx context.Context, employeeID *string) ([]availability.WindowResponse, error) {
	if employeeID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *employeeID); err != nil {
			return nil, err
		}
	}
	windows, err := s.repo.List(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return availability.ToResponses(windows), nil
}

// Delete implements availability.Service.
func (s *availabilityServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
