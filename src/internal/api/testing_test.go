package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shourov-bot/bot-panel/src/internal/client"
	"github.com/shourov-bot/bot-panel/src/internal/contract"
	"github.com/shourov-bot/bot-panel/src/internal/domain"
	"github.com/shourov-bot/bot-panel/src/internal/log"
	"github.com/shourov-bot/bot-panel/src/internal/models"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard, io.Discard)
	os.Exit(m.Run())
}

type testEnv struct {
	srv    *httptest.Server
	deps   *domain.AppDependencies
	stream *LogStream
	client *client.Client
}

func newTestEnv(t *testing.T, mutate func(*domain.AppConfig), opts RouterOptions) *testEnv {
	t.Helper()

	cfg := domain.AppConfig{
		AdminUsername: "admin",
		AdminPassword: "password123",
		TokenSecret:   "test-secret",
		TokenTTL:      time.Hour,
		BotName:       "Shourov AI",
		RestartDelay:  20 * time.Millisecond,
	}
	if mutate != nil {
		mutate(&cfg)
	}

	deps, err := domain.NewAppDependencies(cfg)
	require.NoError(t, err)
	t.Cleanup(deps.Close)

	if opts.Stream == nil {
		opts.Stream = NewLogStream()
	}
	t.Cleanup(opts.Stream.Close)

	router, err := NewRouter(deps, opts)
	require.NoError(t, err)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{
		srv:    srv,
		deps:   deps,
		stream: opts.Stream,
		client: client.New(srv.URL),
	}
}

// do sends a raw request and returns the response with its body read.
func (e *testEnv) do(t *testing.T, method, path, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, e.srv.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decodeError(t *testing.T, body []byte) contract.ErrorResponse {
	t.Helper()
	var e contract.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &e), string(body))
	return e
}

func countLevel(entries []models.LogEntry, level models.LogLevel) int {
	n := 0
	for _, e := range entries {
		if e.Level == level {
			n++
		}
	}
	return n
}
