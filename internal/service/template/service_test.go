package template

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsgrayson/scheduler/internal/domain/employee"
	"github.com/jsgrayson/scheduler/internal/domain/role"
	"github.com/jsgrayson/scheduler/internal/domain/shift"
	"github.com/jsgrayson/scheduler/internal/domain/template"
	"github.com/jsgrayson/scheduler/internal/service/servicetest"
)

const (
	empCarla   = "11111111-1111-1111-1111-111111111111"
	empDeepak  = "22222222-2222-2222-2222-222222222222"
	roleCashID = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	roleMntID  = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
)

type env struct {
	svc       template.Service
	templates *servicetest.TemplateRepo
	shifts    *servicetest.ShiftRepo
}

func newEnv(t *testing.T) *env {
	t.Helper()
	templates := servicetest.NewTemplateRepo()
	shifts := servicetest.NewShiftRepo()
	employees := servicetest.NewEmployeeRepo(
		employee.Employee{ID: empCarla, FirstName: "Carla", RoleIDs: []string{roleCashID}},
		employee.Employee{ID: empDeepak, FirstName: "Deepak", RoleIDs: []string{roleMntID}},
	)
	roles := servicetest.NewRoleRepo(
		role.Role{ID: roleCashID, Name: "Cashier", Category: role.CategoryCashier},
		role.Role{ID: roleMntID, Name: "Maintenance", Category: role.CategoryMaintenance},
	)
	svc := NewTemplateService(&servicetest.TxRunner{}, templates, shifts, employees, roles, time.Saturday)
	return &env{svc: svc, templates: templates, shifts: shifts}
}

func intPtr(i int) *int { return &i }

func servicetestShift(employeeID string, start time.Time, hoursLong int, locked bool) shift.Shift {
	s := shift.Shift{
		RoleID:    roleCashID,
		StartTime: start,
		EndTime:   start.Add(time.Duration(hoursLong) * time.Hour),
		IsLocked:  locked,
	}
	if employeeID != "" {
		s.EmployeeID = &employeeID
	}
	return s
}

func servicetestShiftFromTemplate(employeeID string, start time.Time, hoursLong int, templateID *string) shift.Shift {
	s := servicetestShift(employeeID, start, hoursLong, true)
	s.TemplateID = templateID
	return s
}

// nextWeekday returns the start of the first day at or after t falling on wd.
func nextWeekday(t time.Time, wd time.Weekday) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	for day.Weekday() != wd {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

func TestSaveReplacesSlot(t *testing.T) {
	e := newEnv(t)

	first, err := e.svc.Save(context.Background(), template.SaveTemplateRequest{
		EmployeeID: empCarla,
		DayOfWeek:  intPtr(0),
		RoleID:     roleCashID,
		StartTime:  "09:00",
		EndTime:    "17:00",
	})
	require.NoError(t, err)

	second, err := e.svc.Save(context.Background(), template.SaveTemplateRequest{
		EmployeeID: empCarla,
		DayOfWeek:  intPtr(0),
		RoleID:     roleCashID,
		StartTime:  "10:00",
		EndTime:    "18:00",
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	listed, err := e.svc.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, listed, 1, "slot holds one template after replace")
	assert.Equal(t, "10:00", listed[0].StartTime)
}

func TestSaveKeepsOtherDays(t *testing.T) {
	e := newEnv(t)

	for _, day := range []int{0, 1, 2} {
		_, err := e.svc.Save(context.Background(), template.SaveTemplateRequest{
			EmployeeID: empCarla,
			DayOfWeek:  intPtr(day),
			RoleID:     roleCashID,
			StartTime:  "09:00",
			EndTime:    "17:00",
		})
		require.NoError(t, err)
	}

	listed, err := e.svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, listed, 3)
}

func TestSaveRejectsBadDay(t *testing.T) {
	e := newEnv(t)
	_, err := e.svc.Save(context.Background(), template.SaveTemplateRequest{
		EmployeeID: empCarla,
		DayOfWeek:  intPtr(7),
		RoleID:     roleCashID,
		StartTime:  "09:00",
		EndTime:    "17:00",
	})
	require.Error(t, err)
}

func TestSaveRejectsUnknownEmployee(t *testing.T) {
	e := newEnv(t)
	_, err := e.svc.Save(context.Background(), template.SaveTemplateRequest{
		EmployeeID: "ffffffff-ffff-ffff-ffff-ffffffffffff",
		DayOfWeek:  intPtr(0),
		RoleID:     roleCashID,
		StartTime:  "09:00",
		EndTime:    "17:00",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

// 2025-12-06 is a Saturday, the business week start.
const weekStart = "2025-12-06"

func seedTemplate(e *env, employeeID string, day int, startHHMM, endHHMM string) template.ShiftTemplate {
	return e.templates.Seed(template.ShiftTemplate{
		EmployeeID: employeeID,
		DayOfWeek:  day,
		RoleID:     roleCashID,
		StartTime:  startHHMM,
		EndTime:    endHHMM,
	})
}

func TestProjectCreatesShiftsForEachWeek(t *testing.T) {
	e := newEnv(t)
	tpl := seedTemplate(e, empCarla, 0, "09:00", "17:00") // Saturdays
	seedTemplate(e, empCarla, 2, "12:00", "20:00")        // Mondays

	report, err := e.svc.Project(context.Background(), template.ProjectScheduleRequest{
		StartDate: weekStart,
		NumWeeks:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, report.CreatedCount)
	assert.Equal(t, 0, report.SkippedCount)
	assert.Empty(t, report.Errors)

	all := e.shifts.All()
	require.Len(t, all, 4)
	assert.Equal(t, time.Date(2025, 12, 6, 9, 0, 0, 0, time.UTC), all[0].StartTime)
	require.NotNil(t, all[0].TemplateID)
	assert.Equal(t, tpl.ID, *all[0].TemplateID)
	assert.Equal(t, time.Date(2025, 12, 8, 12, 0, 0, 0, time.UTC), all[1].StartTime)
	assert.Equal(t, time.Date(2025, 12, 13, 9, 0, 0, 0, time.UTC), all[2].StartTime)
}

func TestProjectIsIdempotent(t *testing.T) {
	e := newEnv(t)
	seedTemplate(e, empCarla, 0, "09:00", "17:00")

	first, err := e.svc.Project(context.Background(), template.ProjectScheduleRequest{StartDate: weekStart, NumWeeks: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, first.CreatedCount)

	second, err := e.svc.Project(context.Background(), template.ProjectScheduleRequest{StartDate: weekStart, NumWeeks: 3})
	require.NoError(t, err)
	assert.Equal(t, 0, second.CreatedCount, "re-run adds nothing")
	assert.Equal(t, 3, e.shifts.Count())
}

func TestProjectSkipsAndCountsLocked(t *testing.T) {
	e := newEnv(t)
	seedTemplate(e, empCarla, 0, "09:00", "17:00")

	empID := empCarla
	e.shifts.Seed(servicetestShift(empID, time.Date(2025, 12, 6, 9, 0, 0, 0, time.UTC), 8, true))

	report, err := e.svc.Project(context.Background(), template.ProjectScheduleRequest{StartDate: weekStart, NumWeeks: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, report.CreatedCount, "only the unoccupied week is created")
	assert.Equal(t, 1, report.SkippedCount, "locked shift is counted")
}

func TestProjectNeverOverwritesExistingUnlocked(t *testing.T) {
	e := newEnv(t)
	seedTemplate(e, empCarla, 0, "09:00", "17:00")

	seeded := e.shifts.Seed(servicetestShift(empCarla, time.Date(2025, 12, 6, 9, 0, 0, 0, time.UTC), 4, false))

	report, err := e.svc.Project(context.Background(), template.ProjectScheduleRequest{StartDate: weekStart, NumWeeks: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, report.CreatedCount)
	assert.Equal(t, 0, report.SkippedCount, "unlocked duplicates pass silently")

	got, err := e.shifts.GetByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.EndTime, got.EndTime, "existing shift untouched")
}

func TestProjectRejectsMidWeekStart(t *testing.T) {
	e := newEnv(t)
	seedTemplate(e, empCarla, 0, "09:00", "17:00")

	_, err := e.svc.Project(context.Background(), template.ProjectScheduleRequest{
		StartDate: "2025-12-08", // a Monday
		NumWeeks:  1,
	})
	assert.ErrorIs(t, err, template.ErrStartNotWeekStart)
}

func TestProjectOvernightTemplate(t *testing.T) {
	e := newEnv(t)
	seedTemplate(e, empCarla, 0, "22:00", "06:00")

	report, err := e.svc.Project(context.Background(), template.ProjectScheduleRequest{StartDate: weekStart, NumWeeks: 1})
	require.NoError(t, err)
	require.Equal(t, 1, report.CreatedCount)

	all := e.shifts.All()
	assert.Equal(t, time.Date(2025, 12, 6, 22, 0, 0, 0, time.UTC), all[0].StartTime)
	assert.Equal(t, time.Date(2025, 12, 7, 6, 0, 0, 0, time.UTC), all[0].EndTime)
}

func TestSyncToLockedPatchesFutureShifts(t *testing.T) {
	e := newEnv(t)

	first, err := e.svc.Save(context.Background(), template.SaveTemplateRequest{
		EmployeeID: empCarla,
		DayOfWeek:  intPtr(0),
		RoleID:     roleCashID,
		StartTime:  "09:00",
		EndTime:    "17:00",
	})
	require.NoError(t, err)

	futureDay := nextWeekday(time.Now().AddDate(0, 0, 14), time.Saturday)
	oldID := first.ID
	locked := e.shifts.Seed(servicetestShiftFromTemplate(empCarla, futureDay.Add(9*time.Hour), 8, &oldID))

	pastDay := futureDay.AddDate(0, 0, -28)
	past := e.shifts.Seed(servicetestShiftFromTemplate(empCarla, pastDay.Add(9*time.Hour), 8, &oldID))

	updated, err := e.svc.Save(context.Background(), template.SaveTemplateRequest{
		EmployeeID:   empCarla,
		DayOfWeek:    intPtr(0),
		RoleID:       roleMntID,
		StartTime:    "10:00",
		EndTime:      "18:00",
		SyncToLocked: true,
	})
	require.NoError(t, err)

	patched, err := e.shifts.GetByID(context.Background(), locked.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, patched.StartTime.Hour())
	assert.Equal(t, 18, patched.EndTime.Hour())
	assert.Equal(t, roleMntID, patched.RoleID)
	require.NotNil(t, patched.TemplateID)
	assert.Equal(t, updated.ID, *patched.TemplateID)

	untouched, err := e.shifts.GetByID(context.Background(), past.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, untouched.StartTime.Hour(), "past shifts stay as worked")
}

func TestSaveWithoutSyncLeavesLockedAlone(t *testing.T) {
	e := newEnv(t)

	first, err := e.svc.Save(context.Background(), template.SaveTemplateRequest{
		EmployeeID: empCarla,
		DayOfWeek:  intPtr(0),
		RoleID:     roleCashID,
		StartTime:  "09:00",
		EndTime:    "17:00",
	})
	require.NoError(t, err)

	futureDay := nextWeekday(time.Now().AddDate(0, 0, 14), time.Saturday)
	oldID := first.ID
	locked := e.shifts.Seed(servicetestShiftFromTemplate(empCarla, futureDay.Add(9*time.Hour), 8, &oldID))

	_, err = e.svc.Save(context.Background(), template.SaveTemplateRequest{
		EmployeeID: empCarla,
		DayOfWeek:  intPtr(0),
		RoleID:     roleCashID,
		StartTime:  "10:00",
		EndTime:    "18:00",
	})
	require.NoError(t, err)

	got, err := e.shifts.GetByID(context.Background(), locked.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, got.StartTime.Hour())
}

func TestImportFromLocked(t *testing.T) {
	e := newEnv(t)

	// Saturday and Monday locked shifts, one unlocked, one open.
	e.shifts.Seed(servicetestShift(empCarla, time.Date(2025, 12, 6, 9, 0, 0, 0, time.UTC), 8, true))
	e.shifts.Seed(servicetestShift(empDeepak, time.Date(2025, 12, 8, 7, 0, 0, 0, time.UTC), 8, true))
	e.shifts.Seed(servicetestShift(empCarla, time.Date(2025, 12, 9, 9, 0, 0, 0, time.UTC), 8, false))
	open := servicetestShift("", time.Date(2025, 12, 10, 9, 0, 0, 0, time.UTC), 8, true)
	open.EmployeeID = nil
	e.shifts.Seed(open)

	report, err := e.svc.ImportFromLocked(context.Background(), template.ImportLockedRequest{WeekStartDate: weekStart})
	require.NoError(t, err)
	assert.Equal(t, 2, report.CreatedCount)

	listed, err := e.svc.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, 0, listed[0].DayOfWeek, "Saturday maps to business day 0")
	assert.Equal(t, "09:00", listed[0].StartTime)
	assert.Equal(t, 2, listed[1].DayOfWeek, "Monday maps to business day 2")
}

func TestImportFromLockedFirstPerSlotWins(t *testing.T) {
	e := newEnv(t)
	e.shifts.Seed(servicetestShift(empCarla, time.Date(2025, 12, 6, 9, 0, 0, 0, time.UTC), 4, true))
	e.shifts.Seed(servicetestShift(empCarla, time.Date(2025, 12, 6, 15, 0, 0, 0, time.UTC), 4, true))

	report, err := e.svc.ImportFromLocked(context.Background(), template.ImportLockedRequest{WeekStartDate: weekStart})
	require.NoError(t, err)
	assert.Equal(t, 1, report.CreatedCount)
	assert.Equal(t, 1, report.SkippedCount)
}

func TestDeleteTemplate(t *testing.T) {
	e := newEnv(t)
	tpl := seedTemplate(e, empCarla, 3, "09:00", "17:00")

	require.NoError(t, e.svc.Delete(context.Background(), tpl.ID))
	err := e.svc.Delete(context.Background(), tpl.ID)
	assert.ErrorIs(t, err, template.ErrTemplateNotFound)
}
