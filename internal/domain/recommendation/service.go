package recommendation

import "context"

type Service interface {
	// Recommend scores every active employee's fitness for the proposed
	// shift, sorted by score descending.
	Recommend(ctx context.Context, req RecommendRequest) ([]ScoredEmployee, error)
}
