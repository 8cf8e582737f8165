package shift

import (
	"errors"
	"fmt"
)

var (
	ErrShiftNotFound = errors.New("shift not found")
	// ErrShiftLocked guards locked shifts against bulk mutation without an
	// explicit force flag.
	ErrShiftLocked = errors.New("shift is locked")
)

// ConflictError reports a double-booking: the candidate shift overlaps one or
// more existing shifts for the same employee. It is overridable with
// force_save.
type ConflictError struct {
	Overlaps []Summary
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("shift overlaps %d existing shift(s)", len(e.Overlaps))
}
