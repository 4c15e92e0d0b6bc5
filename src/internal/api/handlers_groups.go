package api

import "net/http"

// GetGroups returns every group the bot belongs to.
// GET /api/groups
func (h *Handler) GetGroups(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, h.deps.Store().Groups())
}
