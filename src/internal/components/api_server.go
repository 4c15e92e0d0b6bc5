package components

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/shourov-bot/bot-panel/src/internal/log"
)

const (
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 5 * time.Second
)

// APIServerOptions tunes the HTTP server. Zero values fall back to defaults.
type APIServerOptions struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	// MaxRestarts bounds listener restarts after Serve fails (0 = unlimited).
	MaxRestarts    int
	RestartBackoff time.Duration
}

// APIServer manages the HTTP API server
type APIServer struct {
	bindAddr string
	handler  http.Handler
	opts     APIServerOptions
	runner   *RestartableRunner

	mu      sync.Mutex
	addr    net.Addr
	ready   chan struct{}
	running bool
}

// NewAPIServer creates a new API server component
func NewAPIServer(bindAddr string, handler http.Handler, opts APIServerOptions) *APIServer {
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = defaultReadTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = defaultWriteTimeout
	}
	if opts.IdleTimeout == 0 {
		opts.IdleTimeout = defaultIdleTimeout
	}
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = defaultShutdownTimeout
	}

	a := &APIServer{
		bindAddr: bindAddr,
		handler:  handler,
		opts:     opts,
		ready:    make(chan struct{}),
	}
	a.runner = NewRestartableRunner(RunnerConfig{
		Name:           "api-server",
		MaxRestarts:    opts.MaxRestarts,
		RestartBackoff: opts.RestartBackoff,
		StopTimeout:    opts.ShutdownTimeout + time.Second,
	}, a.serve)
	return a
}

// Name returns the component name.
func (a *APIServer) Name() string {
	return "api-server"
}

// Start starts the API server
func (a *APIServer) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.running {
		return fmt.Errorf("API server is already running")
	}

	log.Infof("Starting bot-panel API server on %s", a.bindAddr)

	if err := a.runner.Start(context.Background()); err != nil {
		return err
	}
	a.running = true
	return nil
}

// Stop stops the API server
func (a *APIServer) Stop() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.running {
		return fmt.Errorf("API server is not running")
	}

	log.Infof("Stopping API server...")

	if err := a.runner.Stop(); err != nil {
		return err
	}

	a.running = false
	log.Infof("API server stopped")
	return nil
}

// IsRunning returns whether the API server is running
func (a *APIServer) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// Ready is closed once the listener is bound for the first time.
func (a *APIServer) Ready() <-chan struct{} {
	return a.ready
}

// Done is closed when the server loop exits for good.
func (a *APIServer) Done() <-chan struct{} {
	return a.runner.Done()
}

// Err returns the last error returned by the listener.
func (a *APIServer) Err() error {
	return a.runner.LastError()
}

// Addr returns the bound listener address, or nil before the server is ready.
func (a *APIServer) Addr() net.Addr {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.addr
}

func (a *APIServer) serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.bindAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.bindAddr, err)
	}

	a.mu.Lock()
	first := a.addr == nil
	a.addr = ln.Addr()
	a.mu.Unlock()
	if first {
		close(a.ready)
	}

	server := &http.Server{
		Handler:      a.handler,
		ReadTimeout:  a.opts.ReadTimeout,
		WriteTimeout: a.opts.WriteTimeout,
		IdleTimeout:  a.opts.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Infof("API server listening on http://%s", ln.Addr())
		serverErrors <- server.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.opts.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Errorf("Error during server shutdown: %v", err)
			if closeErr := server.Close(); closeErr != nil {
				return fmt.Errorf("failed to close server: %w", closeErr)
			}
			return nil
		}
		return nil
	}
}
