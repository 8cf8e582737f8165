package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsgrayson/scheduler/internal/domain/availability"
	"github.com/jsgrayson/scheduler/internal/handler/http/response"
)

type AvailabilityHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type availabilityHandlerImpl struct {
	availabilityService availability.Service
}

func NewAvailabilityHandler(availabilityService availability.Service) AvailabilityHandler {
	return &availabilityHandlerImpl{
		availabilityService: availabilityService,
	}
}

// Create implements AvailabilityHandler.
func (h *availabilityHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req availability.CreateWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.availabilityService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Availability window created successfully", result)
}

// List implements AvailabilityHandler. Accepts an optional employee_id
// query parameter.
func (h *availabilityHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var employeeID *string
	if v := r.URL.Query().Get("employee_id"); v != "" {
		employeeID = &v
	}

	result, err := h.availabilityService.List(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements AvailabilityHandler.
func (h *availabilityHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "windowID")

	if err := h.availabilityService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Availability window deleted successfully", nil)
}
