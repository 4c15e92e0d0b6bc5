package service

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/shourov-bot/bot-panel/src/internal/errors"
	"github.com/shourov-bot/bot-panel/src/internal/models"
	"github.com/shourov-bot/bot-panel/src/internal/stats"
)

var pastTense = map[models.BotAction]string{
	models.BotActionStart:   "started",
	models.BotActionStop:    "stopped",
	models.BotActionRestart: "restarted",
}

// ControlResult is the immediate outcome of a control command.
type ControlResult struct {
	Message string
	Status  models.BotStatus
}

// BotService drives the simulated bot lifecycle.
type BotService struct {
	stats        *stats.Aggregator
	logs         *LogService
	restartDelay time.Duration
}

// NewBotService creates a bot service.
func NewBotService(agg *stats.Aggregator, logs *LogService, restartDelay time.Duration) *BotService {
	return &BotService{
		stats:        agg,
		logs:         logs,
		restartDelay: restartDelay,
	}
}

// Stats returns a fresh stats reading.
func (b *BotService) Stats() models.BotStats {
	return b.stats.Read()
}

// Control applies action. A restart reports "restarting" immediately and
// returns to "online" with a reset uptime once the restart delay has passed.
func (b *BotService) Control(action models.BotAction) (ControlResult, error) {
	var current models.BotStats

	switch action {
	case models.BotActionStart:
		current = b.stats.SetStatus(models.BotStatusOnline)
	case models.BotActionStop:
		current = b.stats.SetStatus(models.BotStatusOffline)
	case models.BotActionRestart:
		var err error
		current, err = b.stats.ScheduleRestart(b.restartDelay, b.restarted)
		if stderrors.Is(err, stats.ErrRestartPending) {
			return ControlResult{}, errors.NewConflictError("Restart already in progress")
		}
		if err != nil {
			return ControlResult{}, errors.NewInternalError("Failed to schedule restart", err)
		}
	default:
		return ControlResult{}, errors.NewValidationError("Invalid action", nil)
	}

	b.logs.Add(models.LogLevelInfo, "Bot %s command executed by user", action)

	return ControlResult{
		Message: fmt.Sprintf("Bot %s successfully", pastTense[action]),
		Status:  current.Status,
	}, nil
}

func (b *BotService) restarted(models.BotStats) {
	b.logs.Add(models.LogLevelSuccess, "Bot restarted successfully")
}

// Close cancels a pending restart.
func (b *BotService) Close() {
	b.stats.Close()
}
