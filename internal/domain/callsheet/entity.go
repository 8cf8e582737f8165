// Package callsheet holds the derived candidate-ranking model for covering a
// vacated shift. Nothing here is stored; a call sheet is computed on demand
// from employees, the week's shifts, and rotation state.
package callsheet

// Status classifies a candidate's availability for the vacant shift.
type Status string

const (
	// StatusAvailable means no conflict and no overtime exposure.
	StatusAvailable Status = "available"
	// StatusOT means free at that time, but taking the shift would push the
	// candidate over their weekly cap or past 8 hours that day.
	StatusOT Status = "ot"
	// StatusWorking means the candidate already has an overlapping shift.
	StatusWorking Status = "working"
)

// Candidate is one employee's row on the call sheet.
type Candidate struct {
	EmployeeID string  `json:"employee_id"`
	Name       string  `json:"name"`
	Phone      *string `json:"phone,omitempty"`
	IsFullTime bool    `json:"is_full_time"`
	Status     Status  `json:"status"`
	// Rank is the 1-based call position within the candidate's section.
	Rank    int    `json:"rank"`
	Section string `json:"section"`
	Details string `json:"details,omitempty"`
}

// Section is one presentation group of candidates, already ranked.
type Section struct {
	Label      string      `json:"label"`
	Candidates []Candidate `json:"candidates"`
}

// CallSheet is the full prioritized calling order for one vacant shift.
// NoCandidates is set instead of an error when nobody is eligible for the
// shift's role.
type CallSheet struct {
	ShiftID      string    `json:"shift_id"`
	RoleID       string    `json:"role_id"`
	RoleName     string    `json:"role_name"`
	Sections     []Section `json:"sections"`
	NoCandidates bool      `json:"no_candidates"`
}
