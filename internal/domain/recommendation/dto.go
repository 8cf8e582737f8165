// Package recommendation holds the scored-fitness model for "who should fill
// this slot". Scores are derived per request, never stored.
package recommendation

import (
	"time"

	"github.com/jsgrayson/scheduler/internal/pkg/validator"
)

// RecommendRequest describes a proposed new shift to score candidates for.
// RoleID is optional; without it the role-match bonuses do not apply.
type RecommendRequest struct {
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	RoleID    *string `json:"role_id"`

	start time.Time
	end   time.Time
}

func (r *RecommendRequest) Validate() error {
	var errs validator.ValidationErrors

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

// Interval returns the parsed time range. Valid only after Validate.
func (r *RecommendRequest) Interval() (time.Time, time.Time) {
	return r.start, r.end
}

// ScoredEmployee is one candidate with their fitness score and the reasons
// behind every adjustment. Reasons are a hard requirement: a score without an
// explanation is useless to the supervisor making the call.
type ScoredEmployee struct {
	EmployeeID string   `json:"employee_id"`
	Name       string   `json:"name"`
	IsFullTime bool     `json:"is_full_time"`
	Score      int      `json:"score"`
	Reasons    []string `json:"reasons"`
}
