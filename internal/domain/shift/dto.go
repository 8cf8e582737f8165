package shift

import (
	"time"

	"github.com/jsgrayson/scheduler/internal/pkg/validator"
)

// Repeat options accepted by the create endpoint. Anything repeating expands
// over a 4-week horizon.
const (
	RepeatDaily  = "daily"
	RepeatWeekly = "weekly"
	RepeatMonFri = "mon-fri"
)

var RepeatValues = []string{RepeatDaily, RepeatWeekly, RepeatMonFri}

type CreateShiftRequest struct {
	EmployeeID  *string `json:"employee_id"`
	RoleID      string  `json:"role_id"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Notes       *string `json:"notes"`
	Location    *string `json:"location"`
	BoothNumber *string `json:"booth_number"`
	IsVacation  bool    `json:"is_vacation"`
	IsLocked    bool    `json:"is_locked"`
	// CreateOpenShift pairs a vacation shift with an open covering shift,
	// created atomically with it.
	CreateOpenShift bool    `json:"create_open_shift"`
	Repeat          *string `json:"repeat"`
	ForceSave       bool    `json:"force_save"`

	start time.Time
	end   time.Time
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RoleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "role_id",
			Message: "role_id is required",
		})
	}
	start, startOK := validator.IsValidDateTime(r.StartTime)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be an RFC3339 timestamp",
		})
	}
	end, endOK := validator.IsValidDateTime(r.EndTime)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be an RFC3339 timestamp",
		})
	}
	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}
	if r.Repeat != nil && !validator.IsInSlice(*r.Repeat, RepeatValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "repeat",
			Message: "repeat must be one of: daily, weekly, mon-fri",
		})
	}
	if r.CreateOpenShift && !r.IsVacation {
		errs = append(errs, validator.ValidationError{
			Field:   "create_open_shift",
			Message: "create_open_shift requires is_vacation",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	r.start, r.end = start, end
	return nil
}

// Interval returns the parsed time range. Valid only after Validate.
func (r *CreateShiftRequest) Interval() (time.Time, time.Time) {
	return r.start, r.end
}

type UpdateShiftRequest struct {
	EmployeeID  *string `json:"employee_id"`
	RoleID      string  `json:"role_id"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Notes       *string `json:"notes"`
	Location    *string `json:"location"`
	BoothNumber *string `json:"booth_number"`
	IsVacation  bool    `json:"is_vacation"`
	IsLocked    bool    `json:"is_locked"`
	ForceSave   bool    `json:"force_save"`

	start time.Time
	end   time.Time
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RoleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "role_id",
			Message: "role_id is required",
		})
	}
	start, startOK := validator.IsValidDateTime(r.StartTime)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be an RFC3339 timestamp",
		})
	}
	end, endOK := validator.IsValidDateTime(r.EndTime)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be an RFC3339 timestamp",
		})
	}
	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	r.start, r.end = start, end
	return nil
}

func (r *UpdateShiftRequest) Interval() (time.Time, time.Time) {
	return r.start, r.end
}

// BulkUpdateRequest applies role/location/booth changes to a set of shifts.
// Locked shifts are skipped unless Force is set.
type BulkUpdateRequest struct {
	ShiftIDs    []string `json:"shift_ids"`
	RoleID      *string  `json:"role_id"`
	Location    *string  `json:"location"`
	BoothNumber *string  `json:"booth_number"`
	Force       bool     `json:"force"`
}

func (r *BulkUpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.ShiftIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_ids",
			Message: "shift_ids is required",
		})
	}
	if r.RoleID == nil && r.Location == nil && r.BoothNumber == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "fields",
			Message: "at least one of role_id, location, booth_number is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkDeleteRequest struct {
	ShiftIDs []string `json:"shift_ids"`
	Force    bool     `json:"force"`
}

func (r *BulkDeleteRequest) Validate() error {
	if len(r.ShiftIDs) == 0 {
		return validator.ValidationErrors{{
			Field:   "shift_ids",
			Message: "shift_ids is required",
		}}
	}
	return nil
}

// BulkReport is the best-effort outcome of a bulk or projection operation.
type BulkReport struct {
	UpdatedCount int      `json:"updated_count"`
	SkippedCount int      `json:"skipped_count"`
	Errors       []string `json:"errors"`
}

// ProposedShift is one entry of a validate-schedule dry run.
type ProposedShift struct {
	ID         *string `json:"id"`
	EmployeeID *string `json:"employee_id"`
	RoleID     string  `json:"role_id"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`

	start time.Time
	end   time.Time
}

type ValidateScheduleRequest struct {
	Shifts []ProposedShift `json:"shifts"`
}

func (r *ValidateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Shifts) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "shifts",
			Message: "shifts is required",
		})
	}
	for i := range r.Shifts {
		p := &r.Shifts[i]
		start, startOK := validator.IsValidDateTime(p.StartTime)
		end, endOK := validator.IsValidDateTime(p.EndTime)
		if !startOK || !endOK || !end.After(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "shifts[" + validator.Itoa(i) + "]",
				Message: "start_time/end_time must be RFC3339 with end after start",
			})
			continue
		}
		p.start, p.end = start, end
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (p *ProposedShift) Interval() (time.Time, time.Time) {
	return p.start, p.end
}

type ValidationReport struct {
	Valid            bool     `json:"valid"`
	Conflicts        []string `json:"conflicts"`
	OvertimeWarnings []string `json:"overtime_warnings"`
}

type ShiftResponse struct {
	ID          string  `json:"id"`
	EmployeeID  *string `json:"employee_id,omitempty"`
	RoleID      string  `json:"role_id"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Location    *string `json:"location,omitempty"`
	BoothNumber *string `json:"booth_number,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	IsVacation  bool    `json:"is_vacation"`
	IsLocked    bool    `json:"is_locked"`
	ParentID    *string `json:"parent_id,omitempty"`
	TemplateID  *string `json:"created_from_template_id,omitempty"`
}

func ToResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:          s.ID,
		EmployeeID:  s.EmployeeID,
		RoleID:      s.RoleID,
		StartTime:   s.StartTime.Format(time.RFC3339),
		EndTime:     s.EndTime.Format(time.RFC3339),
		Location:    s.Location,
		BoothNumber: s.BoothNumber,
		Notes:       s.Notes,
		IsVacation:  s.IsVacation,
		IsLocked:    s.IsLocked,
		ParentID:    s.ParentID,
		TemplateID:  s.TemplateID,
	}
}

func ToResponses(shifts []Shift) []ShiftResponse {
	out := make([]ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, ToResponse(s))
	}
	return out
}
