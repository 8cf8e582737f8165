package rotation

import (
	"context"
	"sort"

	"github.com/jsgrayson/scheduler/internal/domain/employee"
	"github.com/jsgrayson/scheduler/internal/domain/rotation"
)

type rotationServiceImpl struct {
	repo rotation.Repository
}

func NewRotationService(repo rotation.Repository) rotation.Service {
	return &rotationServiceImpl{repo: repo}
}

// Order implements rotation.Service. The pool is sorted canonically (hire
// date ascending, never-hired last, ties by ID) and then rotated so the
// employee after the last-called one goes first, wrapping around. With no
// pointer recorded, or a pointer to someone no longer in the pool, the
// canonical order stands.
func (s *rotationServiceImpl) Order(ctx context.Context, contextKey string, pool []employee.Employee) ([]employee.Employee, error) {
	ordered := CanonicalOrder(pool)
	if len(ordered) == 0 {
		return ordered, nil
	}

	state, err := s.repo.Get(ctx, contextKey)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return ordered, nil
	}

	pivot := -1
	for i, e := range ordered {
		if e.ID == state.LastEmployeeID {
			pivot = i
			break
		}
	}
	if pivot < 0 {
		return ordered, nil
	}

	rotated := make([]employee.Employee, 0, len(ordered))
	rotated = append(rotated, ordered[pivot+1:]...)
	rotated = append(rotated, ordered[:pivot+1]...)
	return rotated, nil
}

// MarkCalled implements rotation.Service. Last-writer-wins pointer update.
func (s *rotationServiceImpl) MarkCalled(ctx context.Context, req rotation.MarkCalledRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.repo.Upsert(ctx, req.ContextKey, req.LastEmployeeID)
}

// CanonicalOrder sorts a copy of the pool by hire date ascending with unset
// hire dates last, ties broken by ID.
func CanonicalOrder(pool []employee.Employee) []employee.Employee {
	ordered := make([]employee.Employee, len(pool))
	copy(ordered, pool)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		switch {
		case a.HireDate == nil && b.HireDate == nil:
			return a.ID < b.ID
		case a.HireDate == nil:
			return false
		case b.HireDate == nil:
			return true
		case !a.HireDate.Equal(*b.HireDate):
			return a.HireDate.Before(*b.HireDate)
		default:
			return a.ID < b.ID
		}
	})
	return ordered
}
