package callsheet

import "context"

type Service interface {
	// BuildCallSheet computes the prioritized candidate list for covering
	// the given shift.
	BuildCallSheet(ctx context.Context, shiftID string) (CallSheet, error)
}
