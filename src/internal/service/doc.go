// Package service holds the business rules that sit between the HTTP handlers
// and the in-memory store.
//
// # Key Services
//
// LogService: the single entry point for user-visible activity logs. Every
// entry is stored and mirrored to the process logger.
//
// BotService: the bot control state machine (start, stop, delayed restart)
// over the stats aggregator.
//
// AuthService: credential checks and token issuing for the login endpoint.
//
// # Example Usage
//
//	st := store.New()
//	logs := service.NewLogService(st)
//	bot := service.NewBotService(stats.NewAggregator(), logs, 3*time.Second)
//
//	result, err := bot.Control(models.BotActionRestart)
//	if err != nil {
//	    log.Errorf("control failed: %v", err)
//	}
//	fmt.Println(result.Message)
package service
