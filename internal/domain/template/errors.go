package template

import "errors"

var (
	ErrTemplateNotFound = errors.New("shift template not found")
	// ErrStartNotWeekStart rejects projection requests whose start date is not
	// normalized to the business week start.
	ErrStartNotWeekStart = errors.New("projection start date must fall on the week start day")
)
