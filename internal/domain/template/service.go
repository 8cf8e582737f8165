package template

import "context"

type Service interface {
	// Save replaces the template for the request's (employee, day of week)
	// slot. With sync_to_locked set, future locked shifts materialized from
	// the replaced template are patched to the new definition.
	Save(ctx context.Context, req SaveTemplateRequest) (TemplateResponse, error)

	Delete(ctx context.Context, id string) error
	List(ctx context.Context, employeeID *string) ([]TemplateResponse, error)

	// Project materializes every template over the requested weeks. Add-only:
	// existing shifts at a projected start are never overwritten.
	Project(ctx context.Context, req ProjectScheduleRequest) (ProjectionReport, error)

	// ImportFromLocked seeds templates from the locked shifts of one week.
	ImportFromLocked(ctx context.Context, req ImportLockedRequest) (ProjectionReport, error)
}
