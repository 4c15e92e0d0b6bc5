package commands

import (
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shourov-bot/bot-panel/src/internal/api"
	"github.com/shourov-bot/bot-panel/src/internal/components"
	"github.com/shourov-bot/bot-panel/src/internal/config"
	"github.com/shourov-bot/bot-panel/src/internal/domain"
	"github.com/shourov-bot/bot-panel/src/internal/log"
)

const (
	serverShutdownTimeout = 30 * time.Second
	serverMaxRestarts     = 5
)

// ServerCommand implements the server command for running the HTTP API server.
type ServerCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	// Command-specific flags
	bindAddr           string
	writeDefaultConfig string

	shutdown chan os.Signal
	onReady  func(addr net.Addr)
}

// CreateServerCommand creates a new server command.
func CreateServerCommand() Runner {
	return &ServerCommand{}
}

// Name returns the command name.
func (c *ServerCommand) Name() string {
	return "server"
}

// Init initializes the server command with arguments.
func (c *ServerCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet("server", flag.ContinueOnError)

	c.fs.StringVar(&c.bindAddr, "bind", "", "Address to bind the HTTP server, overrides the configuration (e.g., 0.0.0.0:5000)")
	c.fs.StringVar(&c.writeDefaultConfig, "write-default-config", "", "Write the default configuration to this path and exit")

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	if c.writeDefaultConfig != "" {
		return nil
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	if c.bindAddr != "" {
		cfg.Server.BindAddress = c.bindAddr
	}
	c.cfg = cfg

	applyLogSettings(cfg, ctx)
	return nil
}

// Run starts the HTTP API server and blocks until a signal arrives or the
// listener gives up.
func (c *ServerCommand) Run() error {
	if c.writeDefaultConfig != "" {
		return writeDefaultConfig(c.writeDefaultConfig)
	}

	if c.ctx.ConfigPath != "" {
		log.Infof("Configuration loaded from: %s", c.ctx.ConfigPath)
	} else {
		log.Infof("No configuration file given, running with defaults")
	}

	deps, err := domain.NewAppDependencies(domain.AppConfigFromConfig(c.cfg))
	if err != nil {
		return fmt.Errorf("failed to create dependencies: %w", err)
	}
	defer deps.Close()

	stream := api.NewLogStream()
	defer stream.Close()

	router, err := api.NewRouter(deps, api.RouterOptions{
		Stream:       stream,
		RequireToken: c.cfg.Auth.RequireToken,
		UIPath:       c.cfg.Server.UIPath,
	})
	if err != nil {
		return fmt.Errorf("failed to create router: %w", err)
	}

	if c.cfg.Auth.RequireToken {
		log.Infof("Bearer token required for API calls")
	}

	server := components.NewAPIServer(c.cfg.Server.BindAddress, router, components.APIServerOptions{
		ReadTimeout:     c.cfg.Server.ReadTimeout(),
		WriteTimeout:    c.cfg.Server.WriteTimeout(),
		ShutdownTimeout: serverShutdownTimeout,
		MaxRestarts:     serverMaxRestarts,
	})
	if err := server.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", server.Name(), err)
	}

	select {
	case <-server.Ready():
		log.Infof("API endpoints available at http://%s/api", server.Addr())
		if c.onReady != nil {
			c.onReady(server.Addr())
		}
	case <-server.Done():
	}

	shutdown := c.shutdown
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(shutdown)
	}

	select {
	case <-server.Done():
		_ = server.Stop()
		if err := server.Err(); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil

	case sig := <-shutdown:
		log.Infof("Received signal %v, shutting down server...", sig)
		if err := server.Stop(); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		log.Infof("Server stopped gracefully")
	}

	return nil
}

func writeDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite existing file: %s", path)
	}

	cfg := config.DefaultConfig()
	cfg.SetPath(path)
	if err := cfg.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	log.Infof("Default configuration written to %s", path)
	return nil
}
