package template

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsgrayson/scheduler/internal/domain/employee"
	"github.com/jsgrayson/scheduler/internal/domain/role"
	"github.com/jsgrayson/scheduler/internal/domain/shift"
	"github.com/jsgrayson/scheduler/internal/domain/template"
	"github.com/jsgrayson/scheduler/internal/pkg/timeweek"
	"github.com/jsgrayson/scheduler/internal/pkg/validator"
)

// projectionWorkers bounds the fan-out of a projection run. Writes stay
// serialized per employee through the advisory lock.
const projectionWorkers = 4

type templateServiceImpl struct {
	tx           shift.TxRunner
	templateRepo template.Repository
	shiftRepo    shift.Repository
	employeeRepo employee.Repository
	roleRepo     role.Repository
	weekStart    time.Weekday
}

func NewTemplateService(
	tx shift.TxRunner,
	templateRepo template.Repository,
	shiftRepo shift.Repository,
	employeeRepo employee.Repository,
	roleRepo role.Repository,
	weekStart time.Weekday,
) template.Service {
	return &templateServiceImpl{
		tx:           tx,
		templateRepo: templateRepo,
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		roleRepo:     roleRepo,
		weekStart:    weekStart,
	}
}

// Save implements template.Service. The replace is a transactional
// delete-then-insert on the (employee, day of week) slot, not a merge.
func (s *templateServiceImpl) Save(ctx context.Context, req template.SaveTemplateRequest) (template.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return template.TemplateResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return template.TemplateResponse{}, err
	}
	if _, err := s.roleRepo.GetByID(ctx, req.RoleID); err != nil {
		return template.TemplateResponse{}, err
	}

	var saved template.ShiftTemplate
	err := s.tx.WithEmployeeTx(ctx, req.EmployeeID, func(txCtx context.Context) error {
		replaced, err := s.templateRepo.DeleteForSlot(txCtx, req.EmployeeID, *req.DayOfWeek)
		if err != nil {
			return fmt.Errorf("replace template slot: %w", err)
		}

		saved, err = s.templateRepo.Create(txCtx, template.ShiftTemplate{
			EmployeeID:   req.EmployeeID,
			DayOfWeek:    *req.DayOfWeek,
			RoleID:       req.RoleID,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			Location:     shift.NormalizeLocation(req.Location),
			BoothNumber:  req.BoothNumber,
			SyncToLocked: req.SyncToLocked,
		})
		if err != nil {
			return fmt.Errorf("create template: %w", err)
		}

		if req.SyncToLocked {
			for _, old := range replaced {
				if err := s.syncLockedShifts(txCtx, old.ID, saved); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return template.TemplateResponse{}, err
	}
	return template.ToResponse(saved), nil
}

// syncLockedShifts patches future locked shifts materialized from the
// replaced template to the new definition. Past shifts stay as worked.
func (s *templateServiceImpl) syncLockedShifts(ctx context.Context, oldTemplateID string, current template.ShiftTemplate) error {
	stale, err := s.shiftRepo.ListLockedByTemplate(ctx, oldTemplateID, time.Now())
	if err != nil {
		return fmt.Errorf("list locked shifts for sync: %w", err)
	}
	for _, sh := range stale {
		start, end := current.Materialize(timeweek.StartOfDay(sh.StartTime))
		sh.StartTime = start
		sh.EndTime = end
		sh.RoleID = current.RoleID
		sh.Location = current.Location
		sh.BoothNumber = current.BoothNumber
		sh.TemplateID = &current.ID
		if _, err := s.shiftRepo.Update(ctx, sh); err != nil {
			return fmt.Errorf("sync locked shift %s: %w", sh.ID, err)
		}
	}
	return nil
}

// Delete implements template.Service.
func (s *templateServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.templateRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.templateRepo.Delete(ctx, id)
}

// List implements template.Service.
func (s *templateServiceImpl) List(ctx context.Context, employeeID *string) ([]template.TemplateResponse, error) {
	templates, err := s.templateRepo.List(ctx, employeeID, nil)
	if err != nil {
		return nil, err
	}
	out := make([]template.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, template.ToResponse(t))
	}
	return out, nil
}

// Project implements template.Service. Work fans out per employee; each
// employee's writes run inside their own critical section so projection
// cannot race a manual edit into a double-create.
func (s *templateServiceImpl) Project(ctx context.Context, req template.ProjectScheduleRequest) (template.ProjectionReport, error) {
	if err := req.Validate(); err != nil {
		return template.ProjectionReport{}, err
	}
	startDate, _ := validator.IsValidDate(req.StartDate)
	if timeweek.BusinessDay(startDate, s.weekStart) != 0 {
		return template.ProjectionReport{}, template.ErrStartNotWeekStart
	}

	templates, err := s.templateRepo.List(ctx, nil, nil)
	if err != nil {
		return template.ProjectionReport{}, err
	}

	byEmployee := make(map[string][]template.ShiftTemplate)
	for _, t := range templates {
		byEmployee[t.EmployeeID] = append(byEmployee[t.EmployeeID], t)
	}

	report := template.ProjectionReport{Errors: []string{}}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(projectionWorkers)
	for employeeID, empTemplates := range byEmployee {
		employeeID, empTemplates := employeeID, empTemplates
		g.Go(func() error {
			created, skipped, errs := s.projectEmployee(gctx, employeeID, empTemplates, startDate, req.NumWeeks)
			mu.Lock()
			report.CreatedCount += created
			report.SkippedCount += skipped
			report.Errors = append(report.Errors, errs...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return template.ProjectionReport{}, err
	}
	sort.Strings(report.Errors)
	return report, nil
}

// projectEmployee materializes one employee's templates over the window.
// Add-only: a shift already sitting at a projected start is never touched —
// locked ones are counted as skips, unlocked ones pass silently.
func (s *templateServiceImpl) projectEmployee(ctx context.Context, employeeID string, templates []template.ShiftTemplate, startDate time.Time, numWeeks int) (created, skipped int, errs []string) {
	err := s.tx.WithEmployeeTx(ctx, employeeID, func(txCtx context.Context) error {
		for week := 0; week < numWeeks; week++ {
			for _, t := range templates {
				date := startDate.AddDate(0, 0, week*7+t.DayOfWeek)
				start, end := t.Materialize(date)

				existing, err := s.shiftRepo.FindAt(txCtx, employeeID, start)
				if err != nil {
					errs = append(errs, fmt.Sprintf("template %s at %s: %v", t.ID, start.Format("2006-01-02"), err))
					continue
				}
				if existing != nil {
					if existing.IsLocked {
						skipped++
					}
					continue
				}

				templateID := t.ID
				_, err = s.shiftRepo.Create(txCtx, shift.Shift{
					EmployeeID:  &t.EmployeeID,
					RoleID:      t.RoleID,
					StartTime:   start,
					EndTime:     end,
					Location:    t.Location,
					BoothNumber: t.BoothNumber,
					TemplateID:  &templateID,
				})
				if err != nil {
					errs = append(errs, fmt.Sprintf("template %s at %s: %v", t.ID, start.Format("2006-01-02"), err))
					continue
				}
				created++
			}
		}
		return nil
	})
	if err != nil {
		errs = append(errs, fmt.Sprintf("employee %s: %v", employeeID, err))
	}
	return created, skipped, errs
}

// ImportFromLocked implements template.Service: the locked shifts of one week
// become the master schedule. First locked shift per (employee, day) slot
// wins; later ones in the same slot are counted as skips.
func (s *templateServiceImpl) ImportFromLocked(ctx context.Context, req template.ImportLockedRequest) (template.ProjectionReport, error) {
	if err := req.Validate(); err != nil {
		return template.ProjectionReport{}, err
	}
	weekDate, _ := validator.IsValidDate(req.WeekStartDate)
	if timeweek.BusinessDay(weekDate, s.weekStart) != 0 {
		return template.ProjectionReport{}, template.ErrStartNotWeekStart
	}
	weekFrom, weekTo := timeweek.WeekBounds(weekDate, s.weekStart)

	shifts, err := s.shiftRepo.ListRange(ctx, weekFrom, weekTo)
	if err != nil {
		return template.ProjectionReport{}, err
	}

	report := template.ProjectionReport{Errors: []string{}}
	type slot struct {
		employeeID string
		day        int
	}
	seen := make(map[slot]bool)

	for _, sh := range shifts {
		if !sh.IsLocked || sh.EmployeeID == nil || sh.IsVacation {
			continue
		}
		day := timeweek.BusinessDay(sh.StartTime, s.weekStart)
		key := slot{employeeID: *sh.EmployeeID, day: day}
		if seen[key] {
			report.SkippedCount++
			continue
		}
		seen[key] = true

		employeeID := *sh.EmployeeID
		startTime := sh.StartTime.Format("15:04")
		endTime := sh.EndTime.Format("15:04")
		err := s.tx.WithEmployeeTx(ctx, employeeID, func(txCtx context.Context) error {
			if _, err := s.templateRepo.DeleteForSlot(txCtx, employeeID, day); err != nil {
				return err
			}
			_, err := s.templateRepo.Create(txCtx, template.ShiftTemplate{
				EmployeeID:  employeeID,
				DayOfWeek:   day,
				RoleID:      sh.RoleID,
				StartTime:   startTime,
				EndTime:     endTime,
				Location:    sh.Location,
				BoothNumber: sh.BoothNumber,
			})
			return err
		})
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("shift %s: %v", sh.ID, err))
			continue
		}
		report.CreatedCount++
	}
	return report, nil
}
