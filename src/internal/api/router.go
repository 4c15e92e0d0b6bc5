package api

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/shourov-bot/bot-panel/src/frontend"
	"github.com/shourov-bot/bot-panel/src/internal/contract"
	"github.com/shourov-bot/bot-panel/src/internal/domain"
)

// Paths served outside the route contract.
const (
	HealthPath    = "/api/health"
	VersionPath   = "/api/version"
	LogStreamPath = "/api/logs/stream"
	MetricsPath   = "/metrics"
)

// RouterOptions tunes NewRouter.
type RouterOptions struct {
	// Stream receives every new log entry. Nil disables the websocket endpoint.
	Stream *LogStream
	// RequireToken rejects API calls without a valid bearer token.
	RequireToken bool
	// UIPath is a directory with the built web UI. Empty disables static serving.
	UIPath string
}

// NewRouter creates a new HTTP router with all API endpoints.
// Every contract route must have exactly one handler.
func NewRouter(deps *domain.AppDependencies, opts RouterOptions) (http.Handler, error) {
	h := NewHandler(deps, opts.Stream)
	if opts.Stream != nil {
		opts.Stream.Attach(deps.Store())
	}

	r := chi.NewRouter()

	// Apply middleware
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Metrics(deps.Metrics()))
	r.Use(Recovery)
	r.Use(CORS)
	r.Use(JSONContentType)
	if opts.RequireToken {
		r.Use(RequireToken(deps.AuthService(),
			contract.MustLookup(contract.OpLogin).Path,
			HealthPath,
			VersionPath,
		))
	}

	if err := mountContract(r, h.handlers()); err != nil {
		return nil, err
	}

	r.Get(HealthPath, h.CheckHealth)
	r.Get(VersionPath, h.GetVersion)
	if opts.Stream != nil {
		r.Method(http.MethodGet, LogStreamPath, opts.Stream)
	}
	r.Method(http.MethodGet, MetricsPath, deps.Metrics().Handler())

	registerPprof(r)

	// Unknown API paths get a JSON 404 instead of the UI
	r.HandleFunc("/api/*", func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route")
	})

	if opts.UIPath != "" {
		// Uses safe file system that prevents path traversal attacks
		staticFS := frontend.GetHTTPFileSystem(opts.UIPath)
		r.Handle("/*", http.FileServer(staticFS))
	}

	return r, nil
}

// mountContract binds every contract route to its handler by name.
func mountContract(r chi.Router, handlers map[string]http.HandlerFunc) error {
	bound := make(map[string]bool, len(handlers))
	for _, route := range contract.Routes() {
		handler, ok := handlers[route.Name]
		if !ok {
			return fmt.Errorf("no handler for route %s (%s %s)", route.Name, route.Method, route.Path)
		}
		r.Method(route.Method, route.Path, handler)
		bound[route.Name] = true
	}

	var extra []string
	for name := range handlers {
		if !bound[name] {
			extra = append(extra, name)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return fmt.Errorf("handlers without a route: %v", extra)
	}
	return nil
}
