package hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jsgrayson/scheduler/internal/domain/role"
	"github.com/jsgrayson/scheduler/internal/domain/shift"
)

const (
	cashierRoleID = "11111111-1111-1111-1111-111111111111"
	maintRoleID   = "22222222-2222-2222-2222-222222222222"
	legacyRoleID  = "33333333-3333-3333-3333-333333333333"
	empID         = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
)

func testRoles() map[string]role.Role {
	return map[string]role.Role{
		cashierRoleID: {ID: cashierRoleID, Name: "FT Cashier", Category: role.CategoryCashier},
		maintRoleID:   {ID: maintRoleID, Name: "Maintenance", Category: role.CategoryMaintenance},
		// Renamed away from "Cashier" but never categorized: only the name
		// fallback would catch it, and the name no longer matches.
		legacyRoleID: {ID: legacyRoleID, Name: "Booth Attendant", Category: role.CategoryGeneral},
	}
}

func shiftAt(day, startHour, endHour int, roleID string) shift.Shift {
	e := empID
	return shift.Shift{
		ID:         "shift-" + time.Date(2025, 12, day, startHour, 0, 0, 0, time.UTC).Format("02-15"),
		EmployeeID: &e,
		RoleID:     roleID,
		StartTime:  time.Date(2025, 12, day, startHour, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2025, 12, day, endHour, 0, 0, 0, time.UTC),
	}
}

func TestCalculator_ShiftMinutes_LunchDeducted(t *testing.T) {
	c := NewCalculator()

	// 9h maintenance shift: 540 - 30 lunch.
	s := shiftAt(8, 9, 18, maintRoleID)
	assert.Equal(t, 510, c.ShiftMinutes(s, nil, testRoles()))
}

func TestCalculator_ShiftMinutes_CashierExempt(t *testing.T) {
	c := NewCalculator()

	s := shiftAt(8, 9, 18, cashierRoleID)
	assert.Equal(t, 540, c.ShiftMinutes(s, nil, testRoles()))
}

func TestCalculator_ShiftMinutes_ExactlyFiveHours(t *testing.T) {
	c := NewCalculator()

	// 300 minutes is not strictly over the threshold: no deduction.
	s := shiftAt(8, 9, 14, maintRoleID)
	assert.Equal(t, 300, c.ShiftMinutes(s, nil, testRoles()))
}

func TestCalculator_ShiftMinutes_NameFallback(t *testing.T) {
	c := NewCalculator()

	roles := testRoles()
	// Uncategorized role whose name still says cashier: exempt via fallback.
	roles[legacyRoleID] = role.Role{ID: legacyRoleID, Name: "Night Cashier", Category: role.CategoryGeneral}
	s := shiftAt(8, 9, 18, legacyRoleID)
	assert.Equal(t, 540, c.ShiftMinutes(s, nil, roles))
}

func TestCalculator_ShiftMinutes_DefaultRoleFallback(t *testing.T) {
	c := NewCalculator()

	s := shiftAt(8, 9, 18, "")
	def := cashierRoleID
	assert.Equal(t, 540, c.ShiftMinutes(s, &def, testRoles()))
	assert.Equal(t, 510, c.ShiftMinutes(s, nil, testRoles()))
}

func TestCalculator_WeeklyHours_CashierWeek(t *testing.T) {
	c := NewCalculator()

	// Mon-Thu 9:00-18:00 cashier (exempt): 4 x 9h = 36.0.
	weekStart := time.Date(2025, 12, 6, 0, 0, 0, 0, time.UTC) // Saturday
	shifts := []shift.Shift{
		shiftAt(8, 9, 18, cashierRoleID),
		shiftAt(9, 9, 18, cashierRoleID),
		shiftAt(10, 9, 18, cashierRoleID),
		shiftAt(11, 9, 18, cashierRoleID),
	}
	assert.Equal(t, 36.0, c.WeeklyHours(empID, weekStart, shifts, nil, testRoles()))
}

func TestCalculator_WeeklyHours_LunchDeductedWeek(t *testing.T) {
	c := NewCalculator()

	// Same four days on a non-exempt role: 8.5h per day, 34.0 total.
	weekStart := time.Date(2025, 12, 6, 0, 0, 0, 0, time.UTC)
	shifts := []shift.Shift{
		shiftAt(8, 9, 18, maintRoleID),
		shiftAt(9, 9, 18, maintRoleID),
		shiftAt(10, 9, 18, maintRoleID),
		shiftAt(11, 9, 18, maintRoleID),
	}
	assert.Equal(t, 34.0, c.WeeklyHours(empID, weekStart, shifts, nil, testRoles()))
}

func TestCalculator_WeeklyHours_EmptyIsZero(t *testing.T) {
	c := NewCalculator()

	weekStart := time.Date(2025, 12, 6, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0.0, c.WeeklyHours(empID, weekStart, nil, nil, testRoles()))
}

func TestCalculator_WeeklyHours_Monotonic(t *testing.T) {
	c := NewCalculator()

	weekStart := time.Date(2025, 12, 6, 0, 0, 0, 0, time.UTC)
	shifts := []shift.Shift{shiftAt(8, 9, 18, maintRoleID)}
	before := c.WeeklyHours(empID, weekStart, shifts, nil, testRoles())

	shifts = append(shifts, shiftAt(9, 12, 14, maintRoleID))
	after := c.WeeklyHours(empID, weekStart, shifts, nil, testRoles())
	assert.GreaterOrEqual(t, after, before)
}

func TestCalculator_WeeklyHours_WindowByStartTime(t *testing.T) {
	c := NewCalculator()

	weekStart := time.Date(2025, 12, 6, 0, 0, 0, 0, time.UTC)
	shifts := []shift.Shift{
		shiftAt(5, 9, 13, maintRoleID),  // Friday before the window
		shiftAt(13, 9, 13, maintRoleID), // next Saturday, out of window
		shiftAt(12, 9, 13, maintRoleID), // last day of the window
	}
	assert.Equal(t, 4.0, c.WeeklyHours(empID, weekStart, shifts, nil, testRoles()))
}

func TestCalculator_WeeklyHours_OvernightCountedInFull(t *testing.T) {
	c := NewCalculator()

	e := empID
	overnight := shift.Shift{
		EmployeeID: &e,
		RoleID:     cashierRoleID,
		StartTime:  time.Date(2025, 12, 8, 22, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2025, 12, 9, 6, 0, 0, 0, time.UTC),
	}
	weekStart := time.Date(2025, 12, 6, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 8.0, c.WeeklyHours(empID, weekStart, []shift.Shift{overnight}, nil, testRoles()))
}

func TestCalculator_DayHours(t *testing.T) {
	c := NewCalculator()

	shifts := []shift.Shift{
		shiftAt(8, 7, 11, cashierRoleID),
		shiftAt(8, 12, 16, cashierRoleID),
		shiftAt(9, 9, 17, cashierRoleID),
	}
	day := time.Date(2025, 12, 8, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, 8.0, c.DayHours(empID, day, shifts, nil, testRoles()))
}
