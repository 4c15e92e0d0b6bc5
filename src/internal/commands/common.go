package commands

import (
	"fmt"

	"github.com/shourov-bot/bot-panel/src/internal/config"
	"github.com/shourov-bot/bot-panel/src/internal/log"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	// ConfigPath is the TOML configuration file. Empty means built-in defaults.
	ConfigPath string
	Verbose    bool
}

// loadAndValidateConfigOrFail loads configuration from file (or defaults when
// no path is given) and validates it.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return cfg, nil
}

// applyLogSettings configures the process logger from the log section.
// The -verbose flag wins over the file.
func applyLogSettings(cfg *config.Config, ctx *AppContext) {
	log.SetVerbose(ctx.Verbose || cfg.Log.Verbose)
	log.SetTimestamps(cfg.Log.Timestamps)
	log.SetColors(!cfg.Log.NoColor)
}
