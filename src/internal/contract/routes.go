package contract

import (
	"net/http"
	"sort"

	"github.com/shourov-bot/bot-panel/src/internal/models"
)

// Operation names.
const (
	OpLogin           = "auth.login"
	OpLogout          = "auth.logout"
	OpBotStats        = "bot.stats"
	OpBotControl      = "bot.control"
	OpLogsList        = "logs.list"
	OpLogsClear       = "logs.clear"
	OpFeaturesList    = "features.list"
	OpFeaturesToggle  = "features.toggle"
	OpGroupsList      = "groups.list"
	OpFilesList       = "files.list"
	OpFilesGet        = "files.get"
	OpFilesUpdate     = "files.update"
	OpAPIsList        = "apis.list"
	OpAPIsCreate      = "apis.create"
	OpAPIsToggle      = "apis.toggle"
	OpAPIsDelete      = "apis.delete"
	OpDownloadsList   = "downloads.list"
	OpDownloadsCreate = "downloads.create"
	OpAIChat          = "ai.chat"
)

// Route describes one REST operation.
type Route struct {
	Name   string
	Method string
	// Path is a chi pattern; path parameters use {name}.
	Path string
	// Input is a zero value of the request body type, nil when there is no body.
	Input any
	// Responses maps status codes to a zero value of the body type; nil means no body.
	Responses map[int]any
}

// SuccessStatus returns the lowest 2xx status declared by the route.
func (r Route) SuccessStatus() int {
	best := 0
	for code := range r.Responses {
		if code >= 200 && code < 300 && (best == 0 || code < best) {
			best = code
		}
	}
	if best == 0 {
		return http.StatusOK
	}
	return best
}

// Statuses returns the declared status codes in ascending order.
func (r Route) Statuses() []int {
	codes := make([]int, 0, len(r.Responses))
	for code := range r.Responses {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

var (
	validationError   = ErrorResponse{}
	notFoundError     = ErrorResponse{}
	unauthorizedError = ErrorResponse{}
)

var routes = []Route{
	{
		Name: OpLogin, Method: http.MethodPost, Path: "/api/login",
		Input: LoginRequest{},
		Responses: map[int]any{
			http.StatusOK:           LoginResponse{},
			http.StatusBadRequest:   validationError,
			http.StatusUnauthorized: unauthorizedError,
		},
	},
	{
		Name: OpLogout, Method: http.MethodPost, Path: "/api/logout",
		Responses: map[int]any{http.StatusOK: MessageResponse{}},
	},
	{
		Name: OpBotStats, Method: http.MethodGet, Path: "/api/bot/stats",
		Responses: map[int]any{http.StatusOK: models.BotStats{}},
	},
	{
		Name: OpBotControl, Method: http.MethodPost, Path: "/api/bot/control",
		Input: ControlRequest{},
		Responses: map[int]any{
			http.StatusOK:         ControlResponse{},
			http.StatusBadRequest: validationError,
			http.StatusConflict:   ErrorResponse{},
		},
	},
	{
		Name: OpLogsList, Method: http.MethodGet, Path: "/api/logs",
		Responses: map[int]any{http.StatusOK: []models.LogEntry{}},
	},
	{
		Name: OpLogsClear, Method: http.MethodDelete, Path: "/api/logs",
		Responses: map[int]any{http.StatusNoContent: nil},
	},
	{
		Name: OpFeaturesList, Method: http.MethodGet, Path: "/api/features",
		Responses: map[int]any{http.StatusOK: []models.FeatureToggle{}},
	},
	{
		Name: OpFeaturesToggle, Method: http.MethodPatch, Path: "/api/features/{id}",
		Input: ToggleRequest{},
		Responses: map[int]any{
			http.StatusOK:         models.FeatureToggle{},
			http.StatusBadRequest: validationError,
			http.StatusNotFound:   notFoundError,
		},
	},
	{
		Name: OpGroupsList, Method: http.MethodGet, Path: "/api/groups",
		Responses: map[int]any{http.StatusOK: []models.Group{}},
	},
	{
		Name: OpFilesList, Method: http.MethodGet, Path: "/api/files",
		Responses: map[int]any{http.StatusOK: []FileSummary{}},
	},
	{
		Name: OpFilesGet, Method: http.MethodGet, Path: "/api/files/{id}",
		Responses: map[int]any{
			http.StatusOK:         models.BotFile{},
			http.StatusBadRequest: validationError,
			http.StatusNotFound:   notFoundError,
		},
	},
	{
		Name: OpFilesUpdate, Method: http.MethodPut, Path: "/api/files/{id}",
		Input: FileUpdateRequest{},
		Responses: map[int]any{
			http.StatusOK:         FileUpdateResponse{},
			http.StatusBadRequest: validationError,
			http.StatusNotFound:   notFoundError,
		},
	},
	{
		Name: OpAPIsList, Method: http.MethodGet, Path: "/api/apis",
		Responses: map[int]any{http.StatusOK: []models.APIEntry{}},
	},
	{
		Name: OpAPIsCreate, Method: http.MethodPost, Path: "/api/apis",
		Input: CreateAPIRequest{},
		Responses: map[int]any{
			http.StatusCreated:    models.APIEntry{},
			http.StatusBadRequest: validationError,
		},
	},
	{
		Name: OpAPIsToggle, Method: http.MethodPatch, Path: "/api/apis/{id}",
		Input: ToggleRequest{},
		Responses: map[int]any{
			http.StatusOK:         models.APIEntry{},
			http.StatusBadRequest: validationError,
			http.StatusNotFound:   notFoundError,
		},
	},
	{
		Name: OpAPIsDelete, Method: http.MethodDelete, Path: "/api/apis/{id}",
		Responses: map[int]any{
			http.StatusNoContent:  nil,
			http.StatusBadRequest: validationError,
			http.StatusNotFound:   notFoundError,
		},
	},
	{
		Name: OpDownloadsList, Method: http.MethodGet, Path: "/api/downloads",
		Responses: map[int]any{http.StatusOK: []models.DownloadEntry{}},
	},
	{
		Name: OpDownloadsCreate, Method: http.MethodPost, Path: "/api/downloads",
		Input: CreateDownloadRequest{},
		Responses: map[int]any{
			http.StatusCreated:    models.DownloadEntry{},
			http.StatusBadRequest: validationError,
		},
	},
	{
		Name: OpAIChat, Method: http.MethodPost, Path: "/api/ai/chat",
		Input: ChatRequest{},
		Responses: map[int]any{
			http.StatusOK:         ChatResponse{},
			http.StatusBadRequest: validationError,
		},
	},
}

var byName = func() map[string]Route {
	m := make(map[string]Route, len(routes))
	for _, r := range routes {
		if _, dup := m[r.Name]; dup {
			panic("contract: duplicate route " + r.Name)
		}
		m[r.Name] = r
	}
	return m
}()

// Routes returns every declared route in declaration order.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Lookup returns the route with the given operation name.
func Lookup(name string) (Route, bool) {
	r, ok := byName[name]
	return r, ok
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name string) Route {
	r, ok := byName[name]
	if !ok {
		panic("contract: unknown route " + name)
	}
	return r
}
