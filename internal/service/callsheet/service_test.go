package callsheet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsgrayson/scheduler/internal/domain/callsheet"
	"github.com/jsgrayson/scheduler/internal/domain/employee"
	"github.com/jsgrayson/scheduler/internal/domain/role"
	"github.com/jsgrayson/scheduler/internal/domain/shift"
	"github.com/jsgrayson/scheduler/internal/service/hours"
	"github.com/jsgrayson/scheduler/internal/service/rotation"
	"github.com/jsgrayson/scheduler/internal/service/servicetest"
)

const (
	roleCashID = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	roleMntID  = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
)

type env struct {
	svc       callsheet.Service
	shifts    *servicetest.ShiftRepo
	rotations *servicetest.RotationRepo
	employees *servicetest.EmployeeRepo
}

func newEnv(t *testing.T, emps ...employee.Employee) *env {
	t.Helper()
	shifts := servicetest.NewShiftRepo()
	rotations := servicetest.NewRotationRepo()
	employees := servicetest.NewEmployeeRepo(emps...)
	roles := servicetest.NewRoleRepo(
		role.Role{ID: roleCashID, Name: "Cashier", Category: role.CategoryCashier},
		role.Role{ID: roleMntID, Name: "Maintenance", Category: role.CategoryMaintenance},
	)
	tracker := rotation.NewRotationService(rotations)
	svc := NewCallSheetService(shifts, employees, roles, tracker, hours.NewCalculator(), time.Saturday)
	return &env{svc: svc, shifts: shifts, rotations: rotations, employees: employees}
}

func ftWorker(id string, roleID string, hiredYearsAgo int) employee.Employee {
	hire := time.Date(2025-hiredYearsAgo, 1, 15, 0, 0, 0, 0, time.UTC)
	return employee.Employee{
		ID:         id,
		FirstName:  id,
		RoleIDs:    []string{roleID},
		IsFullTime: true,
		HireDate:   &hire,
		IsActive:   true,
	}
}

func ptWorker(id string, roleID string, lastCalled *time.Time) employee.Employee {
	return employee.Employee{
		ID:             id,
		FirstName:      id,
		RoleIDs:        []string{roleID},
		MaxWeeklyHours: 25,
		LastCallTime:   lastCalled,
		IsActive:       true,
	}
}

// 2025-12-06 is a Saturday; the vacant shift sits mid-week.
func seedVacant(e *env, roleID string) shift.Shift {
	return e.shifts.Seed(shift.Shift{
		ID:        "vacant-1",
		RoleID:    roleID,
		StartTime: time.Date(2025, 12, 10, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 12, 10, 17, 0, 0, 0, time.UTC),
	})
}

func seedWorking(e *env, employeeID string, day, startHour, endHour int) {
	empID := employeeID
	e.shifts.Seed(shift.Shift{
		EmployeeID: &empID,
		RoleID:     roleMntID,
		StartTime:  time.Date(2025, 12, day, startHour, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2025, 12, day, endHour, 0, 0, 0, time.UTC),
	})
}

func candidateIDs(sec callsheet.Section) []string {
	out := make([]string, 0, len(sec.Candidates))
	for _, c := range sec.Candidates {
		out = append(out, c.EmployeeID)
	}
	return out
}

func TestMaintenanceSheetIsSingleRotationList(t *testing.T) {
	e := newEnv(t,
		ftWorker("m1", roleMntID, 10),
		ftWorker("m2", roleMntID, 5),
		ftWorker("m3", roleMntID, 2),
	)
	vacant := seedVacant(e, roleMntID)

	sheet, err := e.svc.BuildCallSheet(context.Background(), vacant.ID)
	require.NoError(t, err)
	assert.False(t, sheet.NoCandidates)
	require.Len(t, sheet.Sections, 1)
	assert.Equal(t, []string{"m1", "m2", "m3"}, candidateIDs(sheet.Sections[0]), "canonical seniority order without a pointer")
}

func TestRotationPointerShiftsCallOrder(t *testing.T) {
	e := newEnv(t,
		ftWorker("m1", roleMntID, 10),
		ftWorker("m2", roleMntID, 5),
		ftWorker("m3", roleMntID, 2),
	)
	require.NoError(t, e.rotations.Upsert(context.Background(), "maint_ft", "m1"))
	vacant := seedVacant(e, roleMntID)

	sheet, err := e.svc.BuildCallSheet(context.Background(), vacant.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"m2", "m3", "m1"}, candidateIDs(sheet.Sections[0]))
}

func TestWorkingCandidateSinksToBottom(t *testing.T) {
	e := newEnv(t,
		ftWorker("m1", roleMntID, 10),
		ftWorker("m2", roleMntID, 5),
	)
	vacant := seedVacant(e, roleMntID)
	seedWorking(e, "m1", 10, 8, 16) // overlaps the vacant 09:00-17:00

	sheet, err := e.svc.BuildCallSheet(context.Background(), vacant.ID)
	require.NoError(t, err)
	got := sheet.Sections[0].Candidates
	require.Len(t, got, 2)
	assert.Equal(t, "m2", got[0].EmployeeID)
	assert.Equal(t, callsheet.StatusAvailable, got[0].Status)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, "m1", got[1].EmployeeID)
	assert.Equal(t, callsheet.StatusWorking, got[1].Status)
	assert.Equal(t, 2, got[1].Rank)
	assert.Contains(t, got[1].Details, "working")
}

func TestBackToBackShiftIsNotWorking(t *testing.T) {
	e := newEnv(t, ftWorker("m1", roleMntID, 10))
	vacant := seedVacant(e, roleMntID)
	seedWorking(e, "m1", 10, 17, 21) // starts exactly when the vacant ends

	sheet, err := e.svc.BuildCallSheet(context.Background(), vacant.ID)
	require.NoError(t, err)
	got := sheet.Sections[0].Candidates
	require.Len(t, got, 1)
	assert.NotEqual(t, callsheet.StatusWorking, got[0].Status)
}

func TestOvertimeExposureFlagsOT(t *testing.T) {
	e := newEnv(t, ftWorker("m1", roleMntID, 10))
	vacant := seedVacant(e, roleMntID)
	// Four 9-hour maintenance days already scheduled: 34h after lunch
	// deductions; the 8-hour vacant shift lands the week at 41.5h.
	for _, day := range []int{6, 7, 8, 9} {
		seedWorking(e, "m1", day, 8, 17)
	}

	sheet, err := e.svc.BuildCallSheet(context.Background(), vacant.ID)
	require.NoError(t, err)
	got := sheet.Sections[0].Candidates
	require.Len(t, got, 1)
	assert.Equal(t, callsheet.StatusOT, got[0].Status)
	assert.Contains(t, got[0].Details, "limit")
}

func TestLongDayFlagsOT(t *testing.T) {
	e := newEnv(t, ftWorker("m1", roleMntID, 10))
	vacant := seedVacant(e, roleMntID)
	seedWorking(e, "m1", 10, 4, 8) // same day, before the vacant shift

	sheet, err := e.svc.BuildCallSheet(context.Background(), vacant.ID)
	require.NoError(t, err)
	got := sheet.Sections[0].Candidates
	require.Len(t, got, 1)
	assert.Equal(t, callsheet.StatusOT, got[0].Status)
	assert.Contains(t, got[0].Details, "that day")
}

func TestCashierSheetIsPaged(t *testing.T) {
	lastWeek := time.Date(2025, 11, 28, 12, 0, 0, 0, time.UTC)
	e := newEnv(t,
		ftWorker("c1", roleCashID, 10),
		ftWorker("c2", roleCashID, 5),
		ptWorker("p1", roleCashID, nil),
		ptWorker("p2", roleCashID, &lastWeek),
	)
	vacant := seedVacant(e, roleCashID)

	sheet, err := e.svc.BuildCallSheet(context.Background(), vacant.ID)
	require.NoError(t, err)
	require.Len(t, sheet.Sections, 3)
	// Nobody is overtime exposed, so everyone lands on page 1: part-timers
	// first (never-called ahead), then the full-time rotation.
	assert.Equal(t, []string{"p1", "p2", "c1", "c2"}, candidateIDs(sheet.Sections[0]))
	assert.Empty(t, sheet.Sections[1].Candidates)
	assert.Empty(t, sheet.Sections[2].Candidates)
}

func TestNeverCalledPartTimersTieBreakByName(t *testing.T) {
	first := ptWorker("a1", roleCashID, nil)
	first.FirstName = "Zoe"
	first.LastName = "Young"
	second := ptWorker("z9", roleCashID, nil)
	second.FirstName = "Ann"
	second.LastName = "Baker"
	e := newEnv(t, first, second)
	vacant := seedVacant(e, roleCashID)

	sheet, err := e.svc.BuildCallSheet(context.Background(), vacant.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"z9", "a1"}, candidateIDs(sheet.Sections[0]),
		"never-called part-timers sort alphabetically, not by id")
}

func TestCashierOvertimePaging(t *testing.T) {
	e := newEnv(t,
		ftWorker("c1", roleCashID, 10),
		ptWorker("p1", roleCashID, nil),
	)
	vacant := seedVacant(e, roleCashID)
	// Cashier shifts take no lunch deduction: five 8-hour days is a full 40h
	// for c1; p1's cap is 25h, so three days already puts the vacant shift
	// over it.
	for _, day := range []int{6, 7, 8, 9, 11} {
		empID := "c1"
		e.shifts.Seed(shift.Shift{
			EmployeeID: &empID,
			RoleID:     roleCashID,
			StartTime:  time.Date(2025, 12, day, 9, 0, 0, 0, time.UTC),
			EndTime:    time.Date(2025, 12, day, 17, 0, 0, 0, time.UTC),
		})
	}
	for _, day := range []int{6, 7, 8} {
		empID := "p1"
		e.shifts.Seed(shift.Shift{
			EmployeeID: &empID,
			RoleID:     roleCashID,
			StartTime:  time.Date(2025, 12, day, 9, 0, 0, 0, time.UTC),
			EndTime:    time.Date(2025, 12, day, 17, 0, 0, 0, time.UTC),
		})
	}

	sheet, err := e.svc.BuildCallSheet(context.Background(), vacant.ID)
	require.NoError(t, err)
	require.Len(t, sheet.Sections, 3)
	assert.Empty(t, sheet.Sections[0].Candidates)
	assert.Equal(t, []string{"c1"}, candidateIDs(sheet.Sections[1]))
	assert.Equal(t, []string{"p1"}, candidateIDs(sheet.Sections[2]))
	assert.Equal(t, 1, sheet.Sections[1].Candidates[0].Rank, "rank restarts per section")
}

func TestVacationWeekExclusion(t *testing.T) {
	willing := ptWorker("p1", roleMntID, nil)
	willing.WillingToWorkVacationWeek = true
	e := newEnv(t,
		ftWorker("m1", roleMntID, 10),
		willing,
		ptWorker("p2", roleMntID, nil),
	)
	vacant := seedVacant(e, roleMntID)
	for _, id := range []string{"m1", "p1", "p2"} {
		empID := id
		e.shifts.Seed(shift.Shift{
			EmployeeID: &empID,
			RoleID:     roleMntID,
			StartTime:  time.Date(2025, 12, 8, 0, 0, 0, 0, time.UTC),
			EndTime:    time.Date(2025, 12, 9, 0, 0, 0, 0, time.UTC),
			IsVacation: true,
		})
	}

	sheet, err := e.svc.BuildCallSheet(context.Background(), vacant.ID)
	require.NoError(t, err)
	// m1 (full-time on vacation) and p2 (unwilling part-timer) are out.
	require.Len(t, sheet.Sections, 1)
	got := candidateIDs(sheet.Sections[0])
	assert.Equal(t, []string{"p1"}, got)
}

func TestNoEligibleCandidates(t *testing.T) {
	e := newEnv(t, ftWorker("c1", roleCashID, 5))
	vacant := seedVacant(e, roleMntID)

	sheet, err := e.svc.BuildCallSheet(context.Background(), vacant.ID)
	require.NoError(t, err)
	assert.True(t, sheet.NoCandidates)
	assert.Empty(t, sheet.Sections)
	assert.Equal(t, "Maintenance", sheet.RoleName)
}

func TestVacatedShiftOwnerExcluded(t *testing.T) {
	e := newEnv(t,
		ftWorker("m1", roleMntID, 10),
		ftWorker("m2", roleMntID, 5),
	)
	empID := "m1"
	vacated := e.shifts.Seed(shift.Shift{
		EmployeeID: &empID,
		RoleID:     roleMntID,
		StartTime:  time.Date(2025, 12, 10, 9, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2025, 12, 10, 17, 0, 0, 0, time.UTC),
	})

	sheet, err := e.svc.BuildCallSheet(context.Background(), vacated.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"m2"}, candidateIDs(sheet.Sections[0]))
}

func TestUnknownShift(t *testing.T) {
	e := newEnv(t)
	_, err := e.svc.BuildCallSheet(context.Background(), "missing")
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}
