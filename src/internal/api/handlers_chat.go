package api

import (
	"net/http"

	"github.com/shourov-bot/bot-panel/src/internal/contract"
)

// Chat answers with a canned assistant reply.
// POST /api/ai/chat
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req contract.ChatRequest
	if !decodeRequest(w, r, &req, "Invalid request") {
		return
	}

	writeJSONData(w, contract.ChatResponse{
		Response: h.deps.Chat().Reply(*req.Message, req.Lang),
	})
}
