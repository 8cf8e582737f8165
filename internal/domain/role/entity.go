package role

import "time"

// Role is static reference data. Category drives the business rules keyed off
// "which kind of role is this": cashier-like roles are exempt from the lunch
// deduction and get the paginated call sheet, maintenance roles get the single
// rotation list.
type Role struct {
	ID        string
	Name      string
	ColorHex  string
	Category  Category
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Category string

const (
	CategoryCashier     Category = "cashier"
	CategoryMaintenance Category = "maintenance"
	CategoryGeneral     Category = "general"
)

var CategoryValues = []string{
	string(CategoryCashier),
	string(CategoryMaintenance),
	string(CategoryGeneral),
}

// RotationContext returns the rotation pool key for a role's full-time
// call-sheet ordering, e.g. "maint_ft" or "cashier_ft".
func (r Role) RotationContext() string {
	switch r.Category {
	case CategoryMaintenance:
		return "maint_ft"
	case CategoryCashier:
		return "cashier_ft"
	default:
		return string(r.Category) + "_ft"
	}
}
