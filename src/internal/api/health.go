package api

import (
	"fmt"
	"net/http"

	"github.com/shourov-bot/bot-panel/src/internal/models"
)

// CheckHealth reports store, bot and stream state.
// GET /api/health
func (h *Handler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthCheckResponse{
		Healthy: true,
		Checks:  make(map[string]CheckResult),
	}

	counts := h.deps.Store().Counts()
	if counts["users"] == 0 {
		response.Healthy = false
		response.Checks["store"] = CheckResult{
			Passed:  false,
			Message: "No users in store, login is impossible",
		}
	} else {
		response.Checks["store"] = CheckResult{
			Passed: true,
			Message: fmt.Sprintf("%d users, %d logs, %d features, %d files, %d apis",
				counts["users"], counts["logs"], counts["features"], counts["files"], counts["apis"]),
		}
	}

	snapshot := h.deps.Stats().Snapshot()
	message := fmt.Sprintf("Bot is %s", snapshot.Status)
	if snapshot.Status == models.BotStatusRestarting && h.deps.Stats().RestartPending() {
		message += ", restart pending"
	}
	response.Checks["bot"] = CheckResult{
		Passed:  snapshot.Status != models.BotStatusOffline,
		Message: message,
	}

	if h.stream != nil {
		response.Checks["log_stream"] = CheckResult{
			Passed:  true,
			Message: fmt.Sprintf("%d subscribers", h.stream.Subscribers()),
		}
	}

	writeJSONData(w, response)
}
