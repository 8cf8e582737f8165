package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsgrayson/scheduler/internal/domain/availability"
	"github.com/jsgrayson/scheduler/internal/domain/employee"
	"github.com/jsgrayson/scheduler/internal/service/servicetest"
)

const empAlice = "11111111-1111-1111-1111-111111111111"

func newService(t *testing.T) (availability.Service, *servicetest.AvailabilityRepo) {
	t.Helper()
	repo := servicetest.NewAvailabilityRepo()
	employees := servicetest.NewEmployeeRepo(employee.Employee{
		ID:        empAlice,
		FirstName: "Alice",
	})
	return NewAvailabilityService(repo, employees), repo
}

func intPtr(i int) *int { return &i }

func TestCreateWindowDefaultsToAvailable(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.Create(context.Background(), availability.CreateWindowRequest{
		EmployeeID: empAlice,
		DayOfWeek:  intPtr(0),
		StartTime:  "09:00",
		EndTime:    "17:00",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsAvailable)
	assert.Equal(t, "09:00", created.StartTime)
}

func TestCreateUnavailableBlock(t *testing.T) {
	svc, _ := newService(t)
	unavailable := false

	created, err := svc.Create(context.Background(), availability.CreateWindowRequest{
		EmployeeID:  empAlice,
		DayOfWeek:   intPtr(2),
		StartTime:   "18:00",
		EndTime:     "22:00",
		IsAvailable: &unavailable,
	})
	require.NoError(t, err)
	assert.False(t, created.IsAvailable)
}

func TestCreateRejectsBadTimes(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(context.Background(), availability.CreateWindowRequest{
		EmployeeID: empAlice,
		DayOfWeek:  intPtr(0),
		StartTime:  "17:00",
		EndTime:    "09:00",
	})
	require.Error(t, err)

	_, err = svc.Create(context.Background(), availability.CreateWindowRequest{
		EmployeeID: empAlice,
		DayOfWeek:  intPtr(9),
		StartTime:  "09:00",
		EndTime:    "17:00",
	})
	require.Error(t, err)
}

func TestCreateRejectsUnknownEmployee(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(context.Background(), availability.CreateWindowRequest{
		EmployeeID: "22222222-2222-2222-2222-222222222222",
		DayOfWeek:  intPtr(0),
		StartTime:  "09:00",
		EndTime:    "17:00",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListFiltersByEmployee(t *testing.T) {
	svc, repo := newService(t)
	repo.Seed(availability.Window{EmployeeID: empAlice, DayOfWeek: 0, StartTime: "09:00", EndTime: "17:00", IsAvailable: true})
	repo.Seed(availability.Window{EmployeeID: "someone-else", DayOfWeek: 0, StartTime: "09:00", EndTime: "17:00", IsAvailable: true})

	all, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	alice := empAlice
	mine, err := svc.List(context.Background(), &alice)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, empAlice, mine[0].EmployeeID)
}

func TestDeleteMissingWindow(t *testing.T) {
	svc, repo := newService(t)
	seeded := repo.Seed(availability.Window{EmployeeID: empAlice, DayOfWeek: 0, StartTime: "09:00", EndTime: "17:00"})

	require.NoError(t, svc.Delete(context.Background(), seeded.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), seeded.ID), availability.ErrWindowNotFound)
}
