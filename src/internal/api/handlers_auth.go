package api

import (
	"net/http"

	"github.com/shourov-bot/bot-panel/src/internal/contract"
)

// Login checks credentials and returns a session token.
// POST /api/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req contract.LoginRequest
	if !decodeRequest(w, r, &req, "Invalid request") {
		return
	}

	token, user, err := h.deps.AuthService().Login(*req.Username, *req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSONData(w, contract.LoginResponse{
		Token: token,
		User: contract.SessionUser{
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
		},
	})
}

// Logout always succeeds; tokens are stateless.
// POST /api/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, contract.MessageResponse{Message: "Logged out"})
}
