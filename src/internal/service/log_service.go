package service

import (
	"fmt"

	"github.com/shourov-bot/bot-panel/src/internal/log"
	"github.com/shourov-bot/bot-panel/src/internal/models"
	"github.com/shourov-bot/bot-panel/src/internal/store"
)

// LogService records activity log entries.
type LogService struct {
	store *store.Store
}

// NewLogService creates a log service backed by st.
func NewLogService(st *store.Store) *LogService {
	return &LogService{store: st}
}

// Add stores a formatted log entry and writes it to the process log.
func (l *LogService) Add(level models.LogLevel, format string, args ...interface{}) models.LogEntry {
	message := fmt.Sprintf(format, args...)
	entry := l.store.AddLog(level, message)

	switch level {
	case models.LogLevelWarn:
		log.Warnf("%s", message)
	case models.LogLevelError:
		log.Errorf("%s", message)
	default:
		log.Infof("%s", message)
	}
	return entry
}

// List returns every entry, newest first.
func (l *LogService) List() []models.LogEntry {
	return l.store.Logs()
}

// Clear removes every entry.
func (l *LogService) Clear() {
	l.store.ClearLogs()
	log.Debugf("Activity log cleared")
}
