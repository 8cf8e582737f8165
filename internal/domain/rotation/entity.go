package rotation

import "time"

// State is the per-context rotation pointer: the last employee called in a
// named full-time pool such as "maint_ft" or "cashier_ft". Rows are created
// lazily on first use and overwritten in place by mark-called.
type State struct {
	ContextKey     string
	LastEmployeeID string
	UpdatedAt      time.Time
}
