package api

import (
	"net/http"

	"github.com/shourov-bot/bot-panel/src/internal/contract"
	"github.com/shourov-bot/bot-panel/src/internal/models"
)

// GetDownloads returns the download history.
// GET /api/downloads
func (h *Handler) GetDownloads(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, h.deps.Store().Downloads())
}

// CreateDownload records a download.
// POST /api/downloads
func (h *Handler) CreateDownload(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateDownloadRequest
	if !decodeRequest(w, r, &req, "Invalid download data") {
		return
	}

	entry := h.deps.Store().CreateDownload(models.DownloadEntry{
		Filename: req.Filename,
		Type:     req.Type,
		URL:      req.URL,
		Size:     req.Size,
		Status:   req.Status,
	})
	writeCreated(w, entry)
}
