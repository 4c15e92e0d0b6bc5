package api

import (
	"net/http"

	"github.com/shourov-bot/bot-panel/src/internal/contract"
)

// GetBotStats returns a fresh stats reading.
// GET /api/bot/stats
func (h *Handler) GetBotStats(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, h.deps.BotService().Stats())
}

// ControlBot starts, stops or restarts the bot.
// POST /api/bot/control
func (h *Handler) ControlBot(w http.ResponseWriter, r *http.Request) {
	var req contract.ControlRequest
	if !decodeRequest(w, r, &req, "Invalid action") {
		return
	}

	result, err := h.deps.BotService().Control(req.Action)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSONData(w, contract.ControlResponse{
		Success:   true,
		Message:   result.Message,
		NewStatus: result.Status,
	})
}
