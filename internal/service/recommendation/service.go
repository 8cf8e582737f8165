package recommendation

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jsgrayson/scheduler/internal/domain/availability"
	"github.com/jsgrayson/scheduler/internal/domain/employee"
	"github.com/jsgrayson/scheduler/internal/domain/recommendation"
	"github.com/jsgrayson/scheduler/internal/domain/role"
	"github.com/jsgrayson/scheduler/internal/domain/shift"
	"github.com/jsgrayson/scheduler/internal/pkg/timeweek"
	"github.com/jsgrayson/scheduler/internal/service/hours"
	shiftsvc "github.com/jsgrayson/scheduler/internal/service/shift"
)

// Score adjustments. A conflict or an availability violation zeroes the score
// outright but the candidate stays listed so the caller can see why.
const (
	baseScore           = 100
	conflictPenalty     = 100
	availabilityPenalty = 100
	weeklyCapPenalty    = 50
	longDayPenalty      = 20
	defaultRoleBonus    = 10
	eligibleRoleBonus   = 5
)

type recommendationServiceImpl struct {
	shiftRepo        shift.Repository
	employeeRepo     employee.Repository
	roleRepo         role.Repository
	availabilityRepo availability.Repository
	calc             *hours.Calculator
	weekStart        time.Weekday
}

func NewRecommendationService(
	shiftRepo shift.Repository,
	employeeRepo employee.Repository,
	roleRepo role.Repository,
	availabilityRepo availability.Repository,
	calc *hours.Calculator,
	weekStart time.Weekday,
) recommendation.Service {
	return &recommendationServiceImpl{
		shiftRepo:        shiftRepo,
		employeeRepo:     employeeRepo,
		roleRepo:         roleRepo,
		availabilityRepo: availabilityRepo,
		calc:             calc,
		weekStart:        weekStart,
	}
}

// Recommend implements recommendation.Service.
func (s *recommendationServiceImpl) Recommend(ctx context.Context, req recommendation.RecommendRequest) ([]recommendation.ScoredEmployee, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.RoleID != nil {
		if _, err := s.roleRepo.GetByID(ctx, *req.RoleID); err != nil {
			return nil, err
		}
	}

	start, end := req.Interval()

	employees, err := s.employeeRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}
	allRoles, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	roles := make(map[string]role.Role, len(allRoles))
	for _, r := range allRoles {
		roles[r.ID] = r
	}

	weekFrom, weekTo := timeweek.WeekBounds(start, s.weekStart)
	weekShifts, err := s.shiftRepo.ListRange(ctx, weekFrom, weekTo)
	if err != nil {
		return nil, err
	}

	dayWindows, err := s.availabilityRepo.ListForDay(ctx, timeweek.BusinessDay(start, s.weekStart))
	if err != nil {
		return nil, err
	}
	windowsByEmployee := make(map[string][]availability.Window)
	for _, w := range dayWindows {
		windowsByEmployee[w.EmployeeID] = append(windowsByEmployee[w.EmployeeID], w)
	}

	scored := make([]recommendation.ScoredEmployee, 0, len(employees))
	for _, e := range employees {
		scored = append(scored, s.scoreOne(e, req.RoleID, start, end, weekFrom, weekShifts, windowsByEmployee[e.ID], roles))
	}

	// Descending score, ties by name for a stable presentation order.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Name < scored[j].Name
	})
	return scored, nil
}

func (s *recommendationServiceImpl) scoreOne(e employee.Employee, roleID *string, start, end, weekFrom time.Time, weekShifts []shift.Shift, windows []availability.Window, roles map[string]role.Role) recommendation.ScoredEmployee {
	score := baseScore
	reasons := []string{}

	conflicts := shiftsvc.FindConflicts(e.ID, start, end, "", weekShifts)
	if len(conflicts) > 0 {
		score -= conflictPenalty
		c := conflicts[0]
		reasons = append(reasons, fmt.Sprintf("already working %s-%s",
			c.StartTime.Format("15:04"), c.EndTime.Format("15:04")))
	}

	for _, reason := range availability.Violations(windows, start, end) {
		score -= availabilityPenalty
		reasons = append(reasons, reason)
	}

	proposed := shift.Shift{
		EmployeeID: &e.ID,
		StartTime:  start,
		EndTime:    end,
	}
	if roleID != nil {
		proposed.RoleID = *roleID
	}
	combined := append(append([]shift.Shift{}, weekShifts...), proposed)

	projected := s.calc.WeeklyHours(e.ID, weekFrom, combined, e.DefaultRoleID, roles)
	if limit := e.WeeklyHoursCap(); projected > limit {
		score -= weeklyCapPenalty
		reasons = append(reasons, fmt.Sprintf("would reach %.1fh this week (limit %.0f)", projected, limit))
	}

	dayTotal := s.calc.DayHours(e.ID, start, combined, e.DefaultRoleID, roles)
	if dayTotal > hours.DailyOvertimeHours {
		score -= longDayPenalty
		reasons = append(reasons, fmt.Sprintf("long day: %.1fh total", dayTotal))
	}

	if roleID != nil {
		switch {
		case e.DefaultRoleID != nil && *e.DefaultRoleID == *roleID:
			score += defaultRoleBonus
			reasons = append(reasons, "default role match")
		case e.HasRole(*roleID):
			score += eligibleRoleBonus
			reasons = append(reasons, "eligible for role")
		default:
			reasons = append(reasons, "not an eligible role")
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return recommendation.ScoredEmployee{
		EmployeeID: e.ID,
		Name:       e.FullName(),
		IsFullTime: e.IsFullTime,
		Score:      score,
		Reasons:    reasons,
	}
}
