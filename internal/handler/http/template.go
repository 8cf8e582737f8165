package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsgrayson/scheduler/internal/domain/template"
	"github.com/jsgrayson/scheduler/internal/handler/http/response"
)

type TemplateHandler interface {
	Save(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Project(w http.ResponseWriter, r *http.Request)
	ImportFromLocked(w http.ResponseWriter, r *http.Request)
}

type templateHandlerImpl struct {
	templateService template.Service
}

func NewTemplateHandler(templateService template.Service) TemplateHandler {
	return &templateHandlerImpl{
		templateService: templateService,
	}
}

// Save implements TemplateHandler. Replaces whatever template occupies
// the same employee and day slot.
func (h *templateHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req template.SaveTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.templateService.Save(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Template saved successfully", result)
}

// Delete implements TemplateHandler.
func (h *templateHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "templateID")

	if err := h.templateService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Template deleted successfully", nil)
}

// List implements TemplateHandler. Accepts an optional employee_id
// query parameter.
func (h *templateHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var employeeID *string
	if v := r.URL.Query().Get("employee_id"); v != "" {
		employeeID = &v
	}

	result, err := h.templateService.List(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Project implements TemplateHandler.
func (h *templateHandlerImpl) Project(w http.ResponseWriter, r *http.Request) {
	var req template.ProjectScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.templateService.Project(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ImportFromLocked implements TemplateHandler.
func (h *templateHandlerImpl) ImportFromLocked(w http.ResponseWriter, r *http.Request) {
	var req template.ImportLockedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.templateService.ImportFromLocked(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
