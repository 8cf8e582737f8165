package http

import (
	"encoding/json"
	"net/http"

	"github.com/jsgrayson/scheduler/internal/domain/rotation"
	"github.com/jsgrayson/scheduler/internal/handler/http/response"
)

type RotationHandler interface {
	MarkCalled(w http.ResponseWriter, r *http.Request)
}

type rotationHandlerImpl struct {
	rotationService rotation.Service
}

func NewRotationHandler(rotationService rotation.Service) RotationHandler {
	return &rotationHandlerImpl{
		rotationService: rotationService,
	}
}

// MarkCalled implements RotationHandler. Advances the rotation pointer
// for a context to the employee that was just called.
func (h *rotationHandlerImpl) MarkCalled(w http.ResponseWriter, r *http.Request) {
	var req rotation.MarkCalledRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.rotationService.MarkCalled(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rotation updated successfully", nil)
}
