package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/tournament-scheduler/interchange"
	"github.com/Dosada05/tournament-scheduler/services"
	"github.com/Dosada05/tournament-scheduler/timing"
	"github.com/Dosada05/tournament-scheduler/validation"
)

type ScheduleHandler struct {
	service *services.ScheduleService
	engine  timing.Engine
}

func NewScheduleHandler(service *services.ScheduleService, engine timing.Engine) *ScheduleHandler {
	return &ScheduleHandler{service: service, engine: engine}
}

// ListTemplates godoc
// @Summary  List tournament templates
// @Tags     templates
// @Produce  json
// @Success  200  {array}  brackets.Template
// @Router   /templates [get]
func (h *ScheduleHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, h.service.Templates(), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ValidateDocument godoc
// @Summary      Validate a flat JSON schedule document without opening a session
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /validate [post]
func (h *ScheduleHandler) ValidateDocument(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(w, r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	g, warnings, err := interchange.Import(data, interchange.Options{Engine: h.engine})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	res := validation.Validate(g, validation.Options{DefaultDuration: h.engine.DefaultDuration})
	resp := jsonResponse{"validation": res, "warnings": warnings}
	if err := writeJSON(w, http.StatusOK, resp, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListSaved godoc
// @Summary  List saved schedules
// @Tags     schedules
// @Produce  json
// @Success  200  {array}  models.SavedSchedule
// @Router   /schedules [get]
func (h *ScheduleHandler) ListSaved(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListSaved(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, list, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// OpenSaved godoc
// @Summary   Open a saved schedule in a new editing session
// @Tags      schedules
// @Produce   json
// @Param     slug  path      string  true  "Schedule slug"
// @Success   201   {object}  map[string]interface{}
// @Failure   404   {object}  map[string]interface{}
// @Security  BearerAuth
// @Router    /schedules/{slug}/open [post]
func (h *ScheduleHandler) OpenSaved(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Load(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	resp := jsonResponse{
		"session":    res.Session.Info(),
		"warnings":   res.Warnings,
		"validation": res.Session.Validate(),
	}
	if err := writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteSaved godoc
// @Summary   Delete a saved schedule and its uploaded copy
// @Tags      schedules
// @Param     slug  path  string  true  "Schedule slug"
// @Success   204
// @Failure   404  {object}  map[string]interface{}
// @Security  BearerAuth
// @Router    /schedules/{slug} [delete]
func (h *ScheduleHandler) DeleteSaved(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSaved(r.Context(), chi.URLParam(r, "slug")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
