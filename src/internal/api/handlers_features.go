package api

import (
	"net/http"

	"github.com/shourov-bot/bot-panel/src/internal/contract"
	"github.com/shourov-bot/bot-panel/src/internal/models"
)

// GetFeatures returns every feature toggle.
// GET /api/features
func (h *Handler) GetFeatures(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, h.deps.Store().FeatureToggles())
}

// ToggleFeature enables or disables a feature.
// PATCH /api/features/{id}
func (h *Handler) ToggleFeature(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req contract.ToggleRequest
	if !decodeRequest(w, r, &req, "Invalid request") {
		return
	}

	feature, ok := h.deps.Store().ToggleFeature(id, *req.IsEnabled)
	if !ok {
		WriteNotFound(w, "Feature")
		return
	}

	state := "disabled"
	if feature.IsEnabled {
		state = "enabled"
	}
	h.deps.LogService().Add(models.LogLevelWarn, "Feature '%s' %s", feature.Key, state)

	writeJSONData(w, feature)
}
