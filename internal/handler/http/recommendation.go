package http

import (
	"net/http"

	"github.com/jsgrayson/scheduler/internal/domain/recommendation"
	"github.com/jsgrayson/scheduler/internal/handler/http/response"
)

type RecommendationHandler interface {
	Recommend(w http.ResponseWriter, r *http.Request)
}

type recommendationHandlerImpl struct {
	recommendationService recommendation.Service
}

func NewRecommendationHandler(recommendationService recommendation.Service) RecommendationHandler {
	return &recommendationHandlerImpl{
		recommendationService: recommendationService,
	}
}

// Recommend implements RecommendationHandler. Reads the proposed slot
// from query parameters so the frontend can fetch scores without a body.
func (h *recommendationHandlerImpl) Recommend(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := recommendation.RecommendRequest{
		StartTime: query.Get("start_time"),
		EndTime:   query.Get("end_time"),
	}
	if v := query.Get("role_id"); v != "" {
		req.RoleID = &v
	}

	result, err := h.recommendationService.Recommend(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
