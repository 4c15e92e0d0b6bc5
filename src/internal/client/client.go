// Package client provides a typed Go client for the bot panel REST API.
//
// Every method is bound to a contract route by name, so the method, path and
// body types always match what the server mounts.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/shourov-bot/bot-panel/src/internal/contract"
	"github.com/shourov-bot/bot-panel/src/internal/models"
)

// APIError is returned for non-2xx responses.
type APIError struct {
	Status  int
	Message string
	Code    string
	Field   string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("API error (status %d, %s): %s [%s]", e.Status, e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("API error (status %d, %s): %s", e.Status, e.Code, e.Message)
}

// Client talks to one bot panel server.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// Option configures the Client.
type Option func(*Client)

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// New creates a client for baseURL, e.g. "http://127.0.0.1:5000".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the bearer token.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// call performs the contract route name and decodes the response into result.
func (c *Client) call(ctx context.Context, name string, params map[string]any, body, result any) error {
	route, ok := contract.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown route %s", name)
	}
	url := c.baseURL + contract.BuildURL(route.Path, params)

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, route.Method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// Read body for error messages
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload contract.ErrorResponse
		if json.Unmarshal(respBody, &payload) == nil && payload.Message != "" {
			apiErr.Message = payload.Message
			apiErr.Code = payload.Code
			apiErr.Field = payload.Field
		} else {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}
		return apiErr
	}

	if _, declared := route.Responses[resp.StatusCode]; !declared {
		return fmt.Errorf("%s: undeclared status %d", name, resp.StatusCode)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func idParam(id int) map[string]any {
	return map[string]any{"id": id}
}

// Login authenticates and remembers the returned token.
func (c *Client) Login(ctx context.Context, username, password string) (*contract.LoginResponse, error) {
	var resp contract.LoginResponse
	req := contract.LoginRequest{Username: &username, Password: &password}
	if err := c.call(ctx, contract.OpLogin, nil, req, &resp); err != nil {
		return nil, err
	}
	c.SetToken(resp.Token)
	return &resp, nil
}

// Logout forgets the token.
func (c *Client) Logout(ctx context.Context) (*contract.MessageResponse, error) {
	var resp contract.MessageResponse
	if err := c.call(ctx, contract.OpLogout, nil, nil, &resp); err != nil {
		return nil, err
	}
	c.SetToken("")
	return &resp, nil
}

// BotStats returns a fresh stats reading.
func (c *Client) BotStats(ctx context.Context) (*models.BotStats, error) {
	var stats models.BotStats
	if err := c.call(ctx, contract.OpBotStats, nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ControlBot sends a start, stop or restart command.
func (c *Client) ControlBot(ctx context.Context, action models.BotAction) (*contract.ControlResponse, error) {
	var resp contract.ControlResponse
	if err := c.call(ctx, contract.OpBotControl, nil, contract.ControlRequest{Action: action}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logs returns the activity log, newest first.
func (c *Client) Logs(ctx context.Context) ([]models.LogEntry, error) {
	var entries []models.LogEntry
	if err := c.call(ctx, contract.OpLogsList, nil, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ClearLogs empties the activity log.
func (c *Client) ClearLogs(ctx context.Context) error {
	return c.call(ctx, contract.OpLogsClear, nil, nil, nil)
}

// Features returns every feature toggle.
func (c *Client) Features(ctx context.Context) ([]models.FeatureToggle, error) {
	var features []models.FeatureToggle
	if err := c.call(ctx, contract.OpFeaturesList, nil, nil, &features); err != nil {
		return nil, err
	}
	return features, nil
}

// ToggleFeature enables or disables a feature.
func (c *Client) ToggleFeature(ctx context.Context, id int, enabled bool) (*models.FeatureToggle, error) {
	var feature models.FeatureToggle
	req := contract.ToggleRequest{IsEnabled: &enabled}
	if err := c.call(ctx, contract.OpFeaturesToggle, idParam(id), req, &feature); err != nil {
		return nil, err
	}
	return &feature, nil
}

// Groups returns every group.
func (c *Client) Groups(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	if err := c.call(ctx, contract.OpGroupsList, nil, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Files lists files without content.
func (c *Client) Files(ctx context.Context) ([]contract.FileSummary, error) {
	var files []contract.FileSummary
	if err := c.call(ctx, contract.OpFilesList, nil, nil, &files); err != nil {
		return nil, err
	}
	return files, nil
}

// File returns one file with its content.
func (c *Client) File(ctx context.Context, id int) (*models.BotFile, error) {
	var file models.BotFile
	if err := c.call(ctx, contract.OpFilesGet, idParam(id), nil, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// UpdateFile replaces a file's content.
func (c *Client) UpdateFile(ctx context.Context, id int, content string) error {
	var resp contract.FileUpdateResponse
	req := contract.FileUpdateRequest{Content: &content}
	if err := c.call(ctx, contract.OpFilesUpdate, idParam(id), req, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("file %d was not updated", id)
	}
	return nil
}

// APIs returns every API registration.
func (c *Client) APIs(ctx context.Context) ([]models.APIEntry, error) {
	var apis []models.APIEntry
	if err := c.call(ctx, contract.OpAPIsList, nil, nil, &apis); err != nil {
		return nil, err
	}
	return apis, nil
}

// CreateAPI registers an API.
func (c *Client) CreateAPI(ctx context.Context, req contract.CreateAPIRequest) (*models.APIEntry, error) {
	var entry models.APIEntry
	if err := c.call(ctx, contract.OpAPIsCreate, nil, req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ToggleAPI enables or disables an API registration.
func (c *Client) ToggleAPI(ctx context.Context, id int, enabled bool) (*models.APIEntry, error) {
	var entry models.APIEntry
	req := contract.ToggleRequest{IsEnabled: &enabled}
	if err := c.call(ctx, contract.OpAPIsToggle, idParam(id), req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteAPI removes an API registration.
func (c *Client) DeleteAPI(ctx context.Context, id int) error {
	return c.call(ctx, contract.OpAPIsDelete, idParam(id), nil, nil)
}

// Downloads returns the download history.
func (c *Client) Downloads(ctx context.Context) ([]models.DownloadEntry, error) {
	var downloads []models.DownloadEntry
	if err := c.call(ctx, contract.OpDownloadsList, nil, nil, &downloads); err != nil {
		return nil, err
	}
	return downloads, nil
}

// CreateDownload records a download.
func (c *Client) CreateDownload(ctx context.Context, req contract.CreateDownloadRequest) (*models.DownloadEntry, error) {
	var entry models.DownloadEntry
	if err := c.call(ctx, contract.OpDownloadsCreate, nil, req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Chat asks the assistant a question.
func (c *Client) Chat(ctx context.Context, message, lang string) (string, error) {
	var resp contract.ChatResponse
	req := contract.ChatRequest{Message: &message, Lang: lang}
	if err := c.call(ctx, contract.OpAIChat, nil, req, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

// TailLogs connects to the log stream websocket and calls onEntry for each
// new entry. It blocks until ctx is done or the connection fails.
func (c *Client) TailLogs(ctx context.Context, onEntry func(models.LogEntry)) error {
	wsURL := strings.Replace(c.baseURL, "http", "ws", 1) + "/api/logs/stream"

	headers := http.Header{}
	if token := c.Token(); token != "" {
		headers.Set("Authorization", "Bearer "+token)
	}

	dialer := &websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: 10 * time.Second,
	}
	conn, _, err := dialer.DialContext(ctx, wsURL, headers)
	if err != nil {
		return fmt.Errorf("failed to dial websocket: %w", err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	for {
		var msg struct {
			Topic string          `json:"topic"`
			Data  models.LogEntry `json:"data"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read error: %w", err)
		}
		if msg.Topic == "log" {
			onEntry(msg.Data)
		}
	}
}
