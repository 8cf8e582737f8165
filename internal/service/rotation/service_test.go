package rotation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsgrayson/scheduler/internal/domain/employee"
	"github.com/jsgrayson/scheduler/internal/domain/rotation"
	"github.com/jsgrayson/scheduler/internal/service/servicetest"
)

func hiredEmployee(id string, hiredYearsAgo int) employee.Employee {
	hire := time.Now().AddDate(-hiredYearsAgo, 0, 0)
	return employee.Employee{ID: id, FirstName: id, HireDate: &hire, IsActive: true}
}

func ids(pool []employee.Employee) []string {
	out := make([]string, 0, len(pool))
	for _, e := range pool {
		out = append(out, e.ID)
	}
	return out
}

func TestOrderWithoutPointerIsCanonical(t *testing.T) {
	svc := NewRotationService(servicetest.NewRotationRepo())

	// Seniority: e1 hired first, then e2, then e3.
	pool := []employee.Employee{hiredEmployee("e3", 1), hiredEmployee("e1", 5), hiredEmployee("e2", 3)}

	ordered, err := svc.Order(context.Background(), "maint_ft", pool)
	require.NoError(t, err)
	assert.Equal(t, []string{"e1", "e2", "e3"}, ids(ordered))
}

func TestOrderRotatesAfterLastCalled(t *testing.T) {
	repo := servicetest.NewRotationRepo()
	svc := NewRotationService(repo)
	require.NoError(t, repo.Upsert(context.Background(), "maint_ft", "e2"))

	pool := []employee.Employee{hiredEmployee("e1", 5), hiredEmployee("e2", 3), hiredEmployee("e3", 1)}

	ordered, err := svc.Order(context.Background(), "maint_ft", pool)
	require.NoError(t, err)
	assert.Equal(t, []string{"e3", "e1", "e2"}, ids(ordered), "last-called goes to the back")
}

func TestOrderWrapsAroundFromLastPosition(t *testing.T) {
	repo := servicetest.NewRotationRepo()
	svc := NewRotationService(repo)
	require.NoError(t, repo.Upsert(context.Background(), "maint_ft", "e3"))

	pool := []employee.Employee{hiredEmployee("e1", 5), hiredEmployee("e2", 3), hiredEmployee("e3", 1)}

	ordered, err := svc.Order(context.Background(), "maint_ft", pool)
	require.NoError(t, err)
	assert.Equal(t, []string{"e1", "e2", "e3"}, ids(ordered))
}

func TestOrderIgnoresDepartedPointer(t *testing.T) {
	repo := servicetest.NewRotationRepo()
	svc := NewRotationService(repo)
	require.NoError(t, repo.Upsert(context.Background(), "maint_ft", "quit-long-ago"))

	pool := []employee.Employee{hiredEmployee("e2", 3), hiredEmployee("e1", 5)}

	ordered, err := svc.Order(context.Background(), "maint_ft", pool)
	require.NoError(t, err)
	assert.Equal(t, []string{"e1", "e2"}, ids(ordered))
}

func TestOrderEmptyPool(t *testing.T) {
	svc := NewRotationService(servicetest.NewRotationRepo())
	ordered, err := svc.Order(context.Background(), "maint_ft", nil)
	require.NoError(t, err)
	assert.Empty(t, ordered)
}

func TestOrderNilHireDatesSortLast(t *testing.T) {
	svc := NewRotationService(servicetest.NewRotationRepo())

	noDate := employee.Employee{ID: "e9", IsActive: true}
	pool := []employee.Employee{noDate, hiredEmployee("e1", 5)}

	ordered, err := svc.Order(context.Background(), "cashier_ft", pool)
	require.NoError(t, err)
	assert.Equal(t, []string{"e1", "e9"}, ids(ordered))
}

func TestMarkCalledOverwritesPointer(t *testing.T) {
	repo := servicetest.NewRotationRepo()
	svc := NewRotationService(repo)

	require.NoError(t, svc.MarkCalled(context.Background(), rotation.MarkCalledRequest{
		ContextKey:     "maint_ft",
		LastEmployeeID: "e1",
	}))
	require.NoError(t, svc.MarkCalled(context.Background(), rotation.MarkCalledRequest{
		ContextKey:     "maint_ft",
		LastEmployeeID: "e2",
	}))

	state, err := repo.Get(context.Background(), "maint_ft")
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, "e2", state.LastEmployeeID)
}

func TestMarkCalledValidation(t *testing.T) {
	svc := NewRotationService(servicetest.NewRotationRepo())
	err := svc.MarkCalled(context.Background(), rotation.MarkCalledRequest{ContextKey: "maint_ft"})
	require.Error(t, err)
}

func TestContextsAreIndependent(t *testing.T) {
	repo := servicetest.NewRotationRepo()
	svc := NewRotationService(repo)
	require.NoError(t, repo.Upsert(context.Background(), "maint_ft", "e1"))

	pool := []employee.Employee{hiredEmployee("e1", 5), hiredEmployee("e2", 3)}

	maint, err := svc.Order(context.Background(), "maint_ft", pool)
	require.NoError(t, err)
	assert.Equal(t, []string{"e2", "e1"}, ids(maint))

	cashier, err := svc.Order(context.Background(), "cashier_ft", pool)
	require.NoError(t, err)
	assert.Equal(t, []string{"e1", "e2"}, ids(cashier))
}
