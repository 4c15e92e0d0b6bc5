package api

import (
	"net/http"

	"github.com/shourov-bot/bot-panel/src/internal/contract"
	"github.com/shourov-bot/bot-panel/src/internal/models"
)

// GetFiles lists bot files without their content.
// GET /api/files
func (h *Handler) GetFiles(w http.ResponseWriter, r *http.Request) {
	files := h.deps.Store().Files()

	summaries := make([]contract.FileSummary, 0, len(files))
	for _, f := range files {
		summaries = append(summaries, contract.FileSummary{
			ID:           f.ID,
			Filename:     f.Filename,
			Size:         f.Size,
			LastModified: f.LastModified,
		})
	}
	writeJSONData(w, summaries)
}

// GetFile returns one file including its content.
// GET /api/files/{id}
func (h *Handler) GetFile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	file, ok := h.deps.Store().File(id)
	if !ok {
		WriteNotFound(w, "File")
		return
	}
	writeJSONData(w, file)
}

// UpdateFile replaces a file's content.
// PUT /api/files/{id}
func (h *Handler) UpdateFile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req contract.FileUpdateRequest
	if !decodeRequest(w, r, &req, "Invalid request") {
		return
	}

	if _, ok := h.deps.Store().UpdateFileContent(id, *req.Content); !ok {
		WriteNotFound(w, "File")
		return
	}
	h.deps.LogService().Add(models.LogLevelInfo, "File updated: ID %d", id)

	writeJSONData(w, contract.FileUpdateResponse{Success: true})
}
