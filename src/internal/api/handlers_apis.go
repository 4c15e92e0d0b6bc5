package api

import (
	"net/http"

	"github.com/shourov-bot/bot-panel/src/internal/contract"
	"github.com/shourov-bot/bot-panel/src/internal/models"
)

// GetAPIs returns every registered API.
// GET /api/apis
func (h *Handler) GetAPIs(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, h.deps.Store().APIs())
}

// CreateAPI registers an API. Registrations are enabled unless stated otherwise.
// POST /api/apis
func (h *Handler) CreateAPI(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateAPIRequest
	if !decodeRequest(w, r, &req, "Invalid API data") {
		return
	}

	enabled := true
	if req.IsEnabled != nil {
		enabled = *req.IsEnabled
	}

	entry := h.deps.Store().CreateAPI(models.APIEntry{
		Name:      req.Name,
		Endpoint:  req.Endpoint,
		Key:       req.Key,
		Type:      req.Type,
		IsEnabled: enabled,
		NeonColor: req.NeonColor,
	})
	writeCreated(w, entry)
}

// ToggleAPI enables or disables an API registration.
// PATCH /api/apis/{id}
func (h *Handler) ToggleAPI(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req contract.ToggleRequest
	if !decodeRequest(w, r, &req, "Invalid request") {
		return
	}

	entry, ok := h.deps.Store().ToggleAPI(id, *req.IsEnabled)
	if !ok {
		WriteNotFound(w, "API")
		return
	}
	writeJSONData(w, entry)
}

// DeleteAPI removes an API registration.
// DELETE /api/apis/{id}
func (h *Handler) DeleteAPI(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if !h.deps.Store().DeleteAPI(id) {
		WriteNotFound(w, "API")
		return
	}
	writeNoContent(w)
}
