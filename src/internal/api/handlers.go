package api

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shourov-bot/bot-panel/src/internal/contract"
	"github.com/shourov-bot/bot-panel/src/internal/domain"
	"github.com/shourov-bot/bot-panel/src/internal/log"
)

// maxBodyBytes bounds request bodies; file content is the largest payload.
const maxBodyBytes = 1 << 20

// Handler manages all API endpoints and dependencies.
type Handler struct {
	deps   *domain.AppDependencies
	stream *LogStream
}

// NewHandler creates a new API handler.
func NewHandler(deps *domain.AppDependencies, stream *LogStream) *Handler {
	return &Handler{
		deps:   deps,
		stream: stream,
	}
}

// handlers maps contract operation names onto handler methods.
func (h *Handler) handlers() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		contract.OpLogin:           h.Login,
		contract.OpLogout:          h.Logout,
		contract.OpBotStats:        h.GetBotStats,
		contract.OpBotControl:      h.ControlBot,
		contract.OpLogsList:        h.GetLogs,
		contract.OpLogsClear:       h.ClearLogs,
		contract.OpFeaturesList:    h.GetFeatures,
		contract.OpFeaturesToggle:  h.ToggleFeature,
		contract.OpGroupsList:      h.GetGroups,
		contract.OpFilesList:       h.GetFiles,
		contract.OpFilesGet:        h.GetFile,
		contract.OpFilesUpdate:     h.UpdateFile,
		contract.OpAPIsList:        h.GetAPIs,
		contract.OpAPIsCreate:      h.CreateAPI,
		contract.OpAPIsToggle:      h.ToggleAPI,
		contract.OpAPIsDelete:      h.DeleteAPI,
		contract.OpDownloadsList:   h.GetDownloads,
		contract.OpDownloadsCreate: h.CreateDownload,
		contract.OpAIChat:          h.Chat,
	}
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Debugf("Failed to write response: %v", err)
	}
}

// writeJSONData writes a successful JSON response with data.
func writeJSONData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

// writeCreated writes a 201 Created response with data.
func writeCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, data)
}

// writeNoContent writes a 204 No Content response.
func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// decodeJSON decodes JSON from the request body. An empty body decodes as {}.
func decodeJSON(r *http.Request, v interface{}) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v)
	if stderrors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// decodeRequest decodes and validates the request body into v. On failure
// it writes a 400 response using message and returns false.
func decodeRequest(w http.ResponseWriter, r *http.Request, v interface{}, message string) bool {
	if err := decodeJSON(r, v); err != nil {
		WriteInvalidRequest(w, "Invalid JSON: "+err.Error())
		return false
	}

	if err := contract.Validate(v); err != nil {
		field := ""
		var ve contract.ValidationErrors
		if stderrors.As(err, &ve) {
			field = ve.First().Field
		}
		log.Debugf("Rejected %s %s: %v", r.Method, r.URL.Path, err)
		WriteValidationError(w, message, field)
		return false
	}
	return true
}

// pathID parses the {id} path parameter. On failure it writes a 400 response.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		WriteValidationError(w, "Invalid id: "+raw, "id")
		return 0, false
	}
	return id, true
}
