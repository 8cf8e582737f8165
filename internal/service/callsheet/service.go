package callsheet

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jsgrayson/scheduler/internal/domain/callsheet"
	"github.com/jsgrayson/scheduler/internal/domain/employee"
	"github.com/jsgrayson/scheduler/internal/domain/role"
	"github.com/jsgrayson/scheduler/internal/domain/rotation"
	"github.com/jsgrayson/scheduler/internal/domain/shift"
	"github.com/jsgrayson/scheduler/internal/pkg/timeweek"
	"github.com/jsgrayson/scheduler/internal/service/hours"
	shiftsvc "github.com/jsgrayson/scheduler/internal/service/shift"
)

// Section labels. Cashier-like roles page the sheet by overtime exposure;
// everything else is a single rotation list.
const (
	sectionRotation = "Rotation"
	sectionPage1    = "Page 1 - Part-Time & Full-Time Under Cap"
	sectionPage2    = "Page 2 - Full-Time Overtime"
	sectionPage3    = "Page 3 - Part-Time Overtime"
)

type callSheetServiceImpl struct {
	shiftRepo    shift.Repository
	employeeRepo employee.Repository
	roleRepo     role.Repository
	tracker      rotation.Service
	calc         *hours.Calculator
	weekStart    time.Weekday
}

func NewCallSheetService(
	shiftRepo shift.Repository,
	employeeRepo employee.Repository,
	roleRepo role.Repository,
	tracker rotation.Service,
	calc *hours.Calculator,
	weekStart time.Weekday,
) callsheet.Service {
	return &callSheetServiceImpl{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		roleRepo:     roleRepo,
		tracker:      tracker,
		calc:         calc,
		weekStart:    weekStart,
	}
}

// BuildCallSheet implements callsheet.Service.
func (s *callSheetServiceImpl) BuildCallSheet(ctx context.Context, shiftID string) (callsheet.CallSheet, error) {
	vacant, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return callsheet.CallSheet{}, err
	}
	vacantRole, err := s.roleRepo.GetByID(ctx, vacant.RoleID)
	if err != nil {
		return callsheet.CallSheet{}, err
	}
	roles, err := s.roleMap(ctx)
	if err != nil {
		return callsheet.CallSheet{}, err
	}

	sheet := callsheet.CallSheet{
		ShiftID:  vacant.ID,
		RoleID:   vacantRole.ID,
		RoleName: vacantRole.Name,
		Sections: []callsheet.Section{},
	}

	weekFrom, weekTo := timeweek.WeekBounds(vacant.StartTime, s.weekStart)
	weekShifts, err := s.shiftRepo.ListRange(ctx, weekFrom, weekTo)
	if err != nil {
		return callsheet.CallSheet{}, err
	}

	pool, err := s.eligiblePool(ctx, vacant, vacantRole, weekShifts)
	if err != nil {
		return callsheet.CallSheet{}, err
	}
	if len(pool) == 0 {
		sheet.NoCandidates = true
		return sheet, nil
	}

	var fullTime, partTime []employee.Employee
	for _, e := range pool {
		if e.IsFullTime {
			fullTime = append(fullTime, e)
		} else {
			partTime = append(partTime, e)
		}
	}
	fullTime, err = s.tracker.Order(ctx, vacantRole.RotationContext(), fullTime)
	if err != nil {
		return callsheet.CallSheet{}, err
	}
	sortPartTime(partTime)

	ftCandidates := s.classify(fullTime, vacant, weekFrom, weekShifts, roles)
	ptCandidates := s.classify(partTime, vacant, weekFrom, weekShifts, roles)

	if vacantRole.Category == role.CategoryCashier {
		sheet.Sections = pagedSections(ftCandidates, ptCandidates)
	} else {
		sheet.Sections = []callsheet.Section{
			rankSection(sectionRotation, append(ftCandidates, ptCandidates...)),
		}
	}
	return sheet, nil
}

// eligiblePool filters employees to those who can work the shift's role. A
// candidate on vacation that week is out entirely for full-timers; part-timers
// stay only when they opted into vacation-week work. The vacated shift's own
// employee is never a candidate to cover it.
func (s *callSheetServiceImpl) eligiblePool(ctx context.Context, vacant shift.Shift, vacantRole role.Role, weekShifts []shift.Shift) ([]employee.Employee, error) {
	all, err := s.employeeRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}

	onVacation := make(map[string]bool)
	for _, sh := range weekShifts {
		if sh.IsVacation && sh.EmployeeID != nil {
			onVacation[*sh.EmployeeID] = true
		}
	}

	var pool []employee.Employee
	for _, e := range all {
		if !e.HasRole(vacantRole.ID) {
			continue
		}
		if vacant.EmployeeID != nil && e.ID == *vacant.EmployeeID {
			continue
		}
		if onVacation[e.ID] {
			if e.IsFullTime || !e.WillingToWorkVacationWeek {
				continue
			}
		}
		pool = append(pool, e)
	}
	return pool, nil
}

// classify computes each candidate's status and details, then orders the
// tier groups Available, OT, Working while preserving the incoming fairness
// order inside each tier.
func (s *callSheetServiceImpl) classify(pool []employee.Employee, vacant shift.Shift, weekFrom time.Time, weekShifts []shift.Shift, roles map[string]role.Role) []callsheet.Candidate {
	var candidates []callsheet.Candidate
	for _, e := range pool {
		candidates = append(candidates, s.classifyOne(e, vacant, weekFrom, weekShifts, roles))
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return statusTier(candidates[i].Status) < statusTier(candidates[j].Status)
	})
	return candidates
}

func (s *callSheetServiceImpl) classifyOne(e employee.Employee, vacant shift.Shift, weekFrom time.Time, weekShifts []shift.Shift, roles map[string]role.Role) callsheet.Candidate {
	c := callsheet.Candidate{
		EmployeeID: e.ID,
		Name:       e.FullName(),
		Phone:      e.Phone,
		IsFullTime: e.IsFullTime,
	}

	conflicts := shiftsvc.FindConflicts(e.ID, vacant.StartTime, vacant.EndTime, vacant.ID, weekShifts)
	if len(conflicts) > 0 {
		c.Status = callsheet.StatusWorking
		c.Details = fmt.Sprintf("working %s-%s",
			conflicts[0].StartTime.Format("15:04"), conflicts[0].EndTime.Format("15:04"))
		return c
	}

	// Hypothetical load: the week's shifts plus the vacant one reassigned to
	// this candidate.
	hypothetical := vacant
	hypothetical.EmployeeID = &e.ID
	combined := append(append([]shift.Shift{}, weekShifts...), hypothetical)

	projected := s.calc.WeeklyHours(e.ID, weekFrom, combined, e.DefaultRoleID, roles)
	dayTotal := s.calc.DayHours(e.ID, vacant.StartTime, combined, e.DefaultRoleID, roles)

	switch {
	case projected > e.WeeklyHoursCap():
		c.Status = callsheet.StatusOT
		c.Details = fmt.Sprintf("would reach %.1fh this week (limit %.0f)", projected, e.WeeklyHoursCap())
	case dayTotal > hours.DailyOvertimeHours:
		c.Status = callsheet.StatusOT
		c.Details = fmt.Sprintf("would work %.1fh that day", dayTotal)
	default:
		c.Status = callsheet.StatusAvailable
		c.Details = fmt.Sprintf("%.1fh scheduled this week", projected)
	}
	return c
}

// pagedSections lays out a cashier-style sheet: everyone under their cap on
// page 1, overtime-exposed full-timers on page 2, overtime-exposed
// part-timers on page 3.
func pagedSections(fullTime, partTime []callsheet.Candidate) []callsheet.Section {
	var page1, page2, page3 []callsheet.Candidate
	for _, c := range partTime {
		if c.Status == callsheet.StatusOT {
			page3 = append(page3, c)
		} else {
			page1 = append(page1, c)
		}
	}
	for _, c := range fullTime {
		if c.Status == callsheet.StatusOT {
			page2 = append(page2, c)
		} else {
			page1 = append(page1, c)
		}
	}
	sort.SliceStable(page1, func(i, j int) bool {
		return statusTier(page1[i].Status) < statusTier(page1[j].Status)
	})
	return []callsheet.Section{
		rankSection(sectionPage1, page1),
		rankSection(sectionPage2, page2),
		rankSection(sectionPage3, page3),
	}
}

func rankSection(label string, candidates []callsheet.Candidate) callsheet.Section {
	if candidates == nil {
		candidates = []callsheet.Candidate{}
	}
	for i := range candidates {
		candidates[i].Rank = i + 1
		candidates[i].Section = label
	}
	return callsheet.Section{Label: label, Candidates: candidates}
}

func statusTier(s callsheet.Status) int {
	switch s {
	case callsheet.StatusAvailable:
		return 0
	case callsheet.StatusOT:
		return 1
	default:
		return 2
	}
}

// sortPartTime orders part-timers least-recently-called first, with
// never-called employees ahead of everyone. Ties break by name.
func sortPartTime(pool []employee.Employee) {
	sort.SliceStable(pool, func(i, j int) bool {
		a, b := pool[i], pool[j]
		switch {
		case a.LastCallTime == nil && b.LastCallTime == nil:
			return a.FullName() < b.FullName()
		case a.LastCallTime == nil:
			return true
		case b.LastCallTime == nil:
			return false
		case !a.LastCallTime.Equal(*b.LastCallTime):
			return a.LastCallTime.Before(*b.LastCallTime)
		default:
			return a.FullName() < b.FullName()
		}
	})
}

func (s *callSheetServiceImpl) roleMap(ctx context.Context) (map[string]role.Role, error) {
	all, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[string]role.Role, len(all))
	for _, r := range all {
		m[r.ID] = r
	}
	return m, nil
}
