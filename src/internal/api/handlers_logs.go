package api

import (
	"net/http"
)

// GetLogs returns the activity log, newest first.
// GET /api/logs
func (h *Handler) GetLogs(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, h.deps.LogService().List())
}

// ClearLogs empties the activity log.
// DELETE /api/logs
func (h *Handler) ClearLogs(w http.ResponseWriter, r *http.Request) {
	h.deps.LogService().Clear()
	writeNoContent(w)
}
