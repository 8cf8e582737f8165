package shift

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jsgrayson/scheduler/internal/domain/employee"
	"github.com/jsgrayson/scheduler/internal/domain/role"
	"github.com/jsgrayson/scheduler/internal/domain/shift"
	"github.com/jsgrayson/scheduler/internal/pkg/timeweek"
	"github.com/jsgrayson/scheduler/internal/service/hours"
)

// VacationCoverNote marks the open shift created alongside a vacation shift.
const VacationCoverNote = "covering vacation"

type shiftServiceImpl struct {
	tx           shift.TxRunner
	shiftRepo    shift.Repository
	employeeRepo employee.Repository
	roleRepo     role.Repository
	calc         *hours.Calculator
	weekStart    time.Weekday
}

func NewShiftService(
	tx shift.TxRunner,
	shiftRepo shift.Repository,
	employeeRepo employee.Repository,
	roleRepo role.Repository,
	calc *hours.Calculator,
	weekStart time.Weekday,
) shift.Service {
	return &shiftServiceImpl{
		tx:           tx,
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		roleRepo:     roleRepo,
		calc:         calc,
		weekStart:    weekStart,
	}
}

// Create implements shift.Service.
func (s *shiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) ([]shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.roleRepo.GetByID(ctx, req.RoleID); err != nil {
		return nil, err
	}
	if req.EmployeeID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.EmployeeID); err != nil {
			return nil, err
		}
	}

	start, end := req.Interval()
	duration := end.Sub(start)

	starts, err := expandRepeat(start, req.Repeat)
	if err != nil {
		return nil, fmt.Errorf("expand repeat option: %w", err)
	}

	var created []shift.Shift
	var parentID *string
	for i, occStart := range starts {
		batch, err := s.createOne(ctx, req, occStart, occStart.Add(duration), parentID)
		if err != nil {
			// Best-effort for the remainder of a repeating series would hide
			// the conflict from the caller; fail the series at the first bad
			// occurrence and report what was created.
			return shift.ToResponses(created), err
		}
		created = append(created, batch...)

		if i == 0 && len(starts) > 1 {
			// First shift anchors the series and references itself.
			anchor := batch[0]
			anchor.ParentID = &anchor.ID
			anchor, err = s.shiftRepo.Update(ctx, anchor)
			if err != nil {
				return shift.ToResponses(created), err
			}
			created[0] = anchor
			parentID = &anchor.ID
		}
	}

	return shift.ToResponses(created), nil
}

// createOne writes a single occurrence (plus its vacation cover shift, when
// requested) inside the per-employee critical section.
func (s *shiftServiceImpl) createOne(ctx context.Context, req shift.CreateShiftRequest, start, end time.Time, parentID *string) ([]shift.Shift, error) {
	var out []shift.Shift

	lockKey := ""
	if req.EmployeeID != nil {
		lockKey = *req.EmployeeID
	}
	err := s.tx.WithEmployeeTx(ctx, lockKey, func(txCtx context.Context) error {
		if req.EmployeeID != nil {
			existing, err := s.shiftRepo.FindOverlapping(txCtx, *req.EmployeeID, start, end, "")
			if err != nil {
				return fmt.Errorf("conflict lookup: %w", err)
			}
			if len(existing) > 0 && !req.ForceSave {
				return &shift.ConflictError{Overlaps: summaries(existing)}
			}
		}

		newShift := shift.Shift{
			EmployeeID:  req.EmployeeID,
			RoleID:      req.RoleID,
			StartTime:   start,
			EndTime:     end,
			Location:    shift.NormalizeLocation(req.Location),
			BoothNumber: req.BoothNumber,
			Notes:       req.Notes,
			IsVacation:  req.IsVacation,
			IsLocked:    req.IsLocked,
			ParentID:    parentID,
		}
		createdShift, err := s.shiftRepo.Create(txCtx, newShift)
		if err != nil {
			return fmt.Errorf("create shift: %w", err)
		}
		out = append(out, createdShift)

		// Vacation cover rides in the same transaction: both rows or neither.
		if req.IsVacation && req.CreateOpenShift {
			note := VacationCoverNote
			cover := shift.Shift{
				EmployeeID:  nil,
				RoleID:      req.RoleID,
				StartTime:   start,
				EndTime:     end,
				Location:    shift.NormalizeLocation(req.Location),
				BoothNumber: req.BoothNumber,
				Notes:       &note,
			}
			createdCover, err := s.shiftRepo.Create(txCtx, cover)
			if err != nil {
				return fmt.Errorf("create vacation cover shift: %w", err)
			}
			out = append(out, createdCover)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update implements shift.Service.
func (s *shiftServiceImpl) Update(ctx context.Context, id string, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	existing, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if _, err := s.roleRepo.GetByID(ctx, req.RoleID); err != nil {
		return shift.ShiftResponse{}, err
	}

	start, end := req.Interval()

	lockKey := ""
	if req.EmployeeID != nil {
		lockKey = *req.EmployeeID
	}
	var updated shift.Shift
	err = s.tx.WithEmployeeTx(ctx, lockKey, func(txCtx context.Context) error {
		if req.EmployeeID != nil {
			overlapping, err := s.shiftRepo.FindOverlapping(txCtx, *req.EmployeeID, start, end, id)
			if err != nil {
				return fmt.Errorf("conflict lookup: %w", err)
			}
			if len(overlapping) > 0 && !req.ForceSave {
				return &shift.ConflictError{Overlaps: summaries(overlapping)}
			}
		}

		existing.EmployeeID = req.EmployeeID
		existing.RoleID = req.RoleID
		existing.StartTime = start
		existing.EndTime = end
		existing.Notes = req.Notes
		existing.Location = shift.NormalizeLocation(req.Location)
		existing.BoothNumber = req.BoothNumber
		existing.IsVacation = req.IsVacation
		existing.IsLocked = req.IsLocked

		updated, err = s.shiftRepo.Update(txCtx, existing)
		return err
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.ToResponse(updated), nil
}

// Delete implements shift.Service.
func (s *shiftServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.shiftRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.shiftRepo.Delete(ctx, id)
}

// GetByID implements shift.Service.
func (s *shiftServiceImpl) GetByID(ctx context.Context, id string) (shift.ShiftResponse, error) {
	found, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.ToResponse(found), nil
}

// ListRange implements shift.Service.
func (s *shiftServiceImpl) ListRange(ctx context.Context, start, end time.Time) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.ListRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return shift.ToResponses(shifts), nil
}

// Agenda implements shift.Service.
func (s *shiftServiceImpl) Agenda(ctx context.Context, employeeID string) ([]shift.ShiftResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	shifts, err := s.shiftRepo.ListFuture(ctx, employeeID, time.Now())
	if err != nil {
		return nil, err
	}
	return shift.ToResponses(shifts), nil
}

// BulkUpdate implements shift.Service. Locked shifts are skipped unless
// forced, counted, and surfaced in the report's errors; the whole operation
// is best effort.
func (s *shiftServiceImpl) BulkUpdate(ctx context.Context, req shift.BulkUpdateRequest) (shift.BulkReport, error) {
	if err := req.Validate(); err != nil {
		return shift.BulkReport{}, err
	}
	if req.RoleID != nil {
		if _, err := s.roleRepo.GetByID(ctx, *req.RoleID); err != nil {
			return shift.BulkReport{}, err
		}
	}

	report := shift.BulkReport{Errors: []string{}}
	for _, id := range req.ShiftIDs {
		target, err := s.shiftRepo.GetByID(ctx, id)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("shift %s: %v", id, err))
			continue
		}
		if target.IsLocked && !req.Force {
			report.SkippedCount++
			report.Errors = append(report.Errors, fmt.Sprintf("shift %s: %v", id, shift.ErrShiftLocked))
			continue
		}

		lockKey := ""
		if target.EmployeeID != nil {
			lockKey = *target.EmployeeID
		}
		err = s.tx.WithEmployeeTx(ctx, lockKey, func(txCtx context.Context) error {
			if req.RoleID != nil {
				target.RoleID = *req.RoleID
			}
			if req.Location != nil {
				target.Location = shift.NormalizeLocation(req.Location)
			}
			if req.BoothNumber != nil {
				target.BoothNumber = req.BoothNumber
			}
			_, err := s.shiftRepo.Update(txCtx, target)
			return err
		})
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("shift %s: %v", id, err))
			continue
		}
		report.UpdatedCount++
	}
	return report, nil
}

// BulkDelete implements shift.Service.
func (s *shiftServiceImpl) BulkDelete(ctx context.Context, req shift.BulkDeleteRequest) (shift.BulkReport, error) {
	if err := req.Validate(); err != nil {
		return shift.BulkReport{}, err
	}

	report := shift.BulkReport{Errors: []string{}}
	for _, id := range req.ShiftIDs {
		target, err := s.shiftRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, shift.ErrShiftNotFound) {
				report.SkippedCount++
				report.Errors = append(report.Errors, fmt.Sprintf("shift %s: %v", id, err))
				continue
			}
			report.Errors = append(report.Errors, fmt.Sprintf("shift %s: %v", id, err))
			continue
		}
		if target.IsLocked && !req.Force {
			report.SkippedCount++
			report.Errors = append(report.Errors, fmt.Sprintf("shift %s: %v", id, shift.ErrShiftLocked))
			continue
		}
		if err := s.shiftRepo.Delete(ctx, id); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("shift %s: %v", id, err))
			continue
		}
		report.UpdatedCount++
	}
	return report, nil
}

// ValidateSchedule implements shift.Service. The dry run checks every
// proposed shift against the store and against the rest of the batch, and
// projects weekly hours through the same calculator the roster uses.
func (s *shiftServiceImpl) ValidateSchedule(ctx context.Context, req shift.ValidateScheduleRequest) (shift.ValidationReport, error) {
	if err := req.Validate(); err != nil {
		return shift.ValidationReport{}, err
	}

	roles, err := loadRoleMap(ctx, s.roleRepo)
	if err != nil {
		return shift.ValidationReport{}, err
	}

	report := shift.ValidationReport{
		Valid:            true,
		Conflicts:        []string{},
		OvertimeWarnings: []string{},
	}

	// Projected weekly totals keyed by (employee, week), seeded from stored
	// shifts on first sight, so a batch spanning business weeks checks each
	// week against its own cap.
	type weekLoad struct {
		emp      employee.Employee
		weekFrom time.Time
		combined []shift.Shift
	}
	loads := map[string]*weekLoad{}
	emps := map[string]employee.Employee{}

	for i, proposed := range req.Shifts {
		if proposed.EmployeeID == nil {
			continue
		}
		empID := *proposed.EmployeeID
		start, end := proposed.Interval()

		excludeID := ""
		if proposed.ID != nil {
			excludeID = *proposed.ID
		}
		stored, err := s.shiftRepo.FindOverlapping(ctx, empID, start, end, excludeID)
		if err != nil {
			return shift.ValidationReport{}, fmt.Errorf("conflict lookup: %w", err)
		}
		for _, c := range stored {
			report.Valid = false
			report.Conflicts = append(report.Conflicts,
				fmt.Sprintf("shift %d overlaps existing shift %s (%s - %s)",
					i+1, c.ID, c.StartTime.Format(time.RFC3339), c.EndTime.Format(time.RFC3339)))
		}

		for j, other := range req.Shifts {
			if i == j || other.EmployeeID == nil || *other.EmployeeID != empID {
				continue
			}
			oStart, oEnd := other.Interval()
			if timeweek.Overlaps(start, end, oStart, oEnd) {
				report.Valid = false
				report.Conflicts = append(report.Conflicts,
					fmt.Sprintf("shift %d overlaps proposed shift %d", i+1, j+1))
			}
		}

		weekFrom, weekTo := timeweek.WeekBounds(start, s.weekStart)
		key := empID + "|" + weekFrom.Format("2006-01-02")
		load, ok := loads[key]
		if !ok {
			emp, cached := emps[empID]
			if !cached {
				emp, err = s.employeeRepo.GetByID(ctx, empID)
				if err != nil {
					return shift.ValidationReport{}, err
				}
				emps[empID] = emp
			}
			existing, err := s.shiftRepo.ListByEmployee(ctx, empID, weekFrom, weekTo)
			if err != nil {
				return shift.ValidationReport{}, err
			}
			load = &weekLoad{emp: emp, weekFrom: weekFrom, combined: existing}
			loads[key] = load
		}
		load.combined = append(load.combined, shift.Shift{
			EmployeeID: proposed.EmployeeID,
			RoleID:     proposed.RoleID,
			StartTime:  start,
			EndTime:    end,
		})
	}

	for _, load := range loads {
		projected := s.calc.WeeklyHours(load.emp.ID, load.weekFrom, load.combined, load.emp.DefaultRoleID, roles)
		if limit := load.emp.WeeklyHoursCap(); projected > limit {
			report.OvertimeWarnings = append(report.OvertimeWarnings,
				fmt.Sprintf("%s is projected to work %.1f hours for the week of %s (limit: %.0f)",
					load.emp.FullName(), projected, load.weekFrom.Format("2006-01-02"), limit))
		}
	}
	sort.Strings(report.OvertimeWarnings)

	return report, nil
}

func loadRoleMap(ctx context.Context, repo role.Repository) (map[string]role.Role, error) {
	all, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	m := make(map[string]role.Role, len(all))
	for _, r := range all {
		m[r.ID] = r
	}
	return m, nil
}
