package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsgrayson/scheduler/internal/domain/callsheet"
	"github.com/jsgrayson/scheduler/internal/domain/shift"
	"github.com/jsgrayson/scheduler/internal/handler/http/response"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListRange(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Agenda(w http.ResponseWriter, r *http.Request)
	BulkUpdate(w http.ResponseWriter, r *http.Request)
	BulkDelete(w http.ResponseWriter, r *http.Request)
	ValidateSchedule(w http.ResponseWriter, r *http.Request)
	CallSheet(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService     shift.Service
	callSheetService callsheet.Service
}

func NewShiftHandler(shiftService shift.Service, callSheetService callsheet.Service) ShiftHandler {
	return &shiftHandlerImpl{
		shiftService:     shiftService,
		callSheetService: callSheetService,
	}
}

// Create implements ShiftHandler.
func (h *shiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.shiftService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created successfully", result)
}

// GetByID implements ShiftHandler.
func (h *shiftHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "shiftID")

	result, err := h.shiftService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListRange implements ShiftHandler. Expects start_date and end_date as
// RFC3339 query parameters; defaults to the surrounding two weeks when absent.
func (h *shiftHandlerImpl) ListRange(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseRangeParams(r)
	if !ok {
		response.BadRequest(w, "start_date and end_date must be RFC3339 timestamps with end_date after start_date", nil)
		return
	}

	result, err := h.shiftService.ListRange(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements ShiftHandler.
func (h *shiftHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "shiftID")

	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.shiftService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements ShiftHandler.
func (h *shiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "shiftID")

	if err := h.shiftService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}

// Agenda implements ShiftHandler.
func (h *shiftHandlerImpl) Agenda(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.shiftService.Agenda(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// BulkUpdate implements ShiftHandler.
func (h *shiftHandlerImpl) BulkUpdate(w http.ResponseWriter, r *http.Request) {
	var req shift.BulkUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.shiftService.BulkUpdate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// BulkDelete implements ShiftHandler.
func (h *shiftHandlerImpl) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req shift.BulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.shiftService.BulkDelete(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ValidateSchedule implements ShiftHandler.
func (h *shiftHandlerImpl) ValidateSchedule(w http.ResponseWriter, r *http.Request) {
	var req shift.ValidateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.shiftService.ValidateSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CallSheet implements ShiftHandler.
func (h *shiftHandlerImpl) CallSheet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "shiftID")

	result, err := h.callSheetService.BuildCallSheet(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func parseRangeParams(r *http.Request) (time.Time, time.Time, bool) {
	startParam := r.URL.Query().Get("start_date")
	endParam := r.URL.Query().Get("end_date")
	if startParam == "" && endParam == "" {
		now := time.Now()
		return now.AddDate(0, 0, -7), now.AddDate(0, 0, 7), true
	}
	start, err := time.Parse(time.RFC3339, startParam)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(time.RFC3339, endParam)
	if err != nil || !end.After(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
