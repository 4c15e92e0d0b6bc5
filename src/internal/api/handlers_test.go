package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shourov-bot/bot-panel/src/internal/client"
	"github.com/shourov-bot/bot-panel/src/internal/contract"
	"github.com/shourov-bot/bot-panel/src/internal/domain"
	"github.com/shourov-bot/bot-panel/src/internal/models"
	"github.com/shourov-bot/bot-panel/src/internal/stats"
)

func requireAPIError(t *testing.T, err error, status int) *client.APIError {
	t.Helper()
	require.Error(t, err)
	var apiErr *client.APIError
	require.True(t, stderrors.As(err, &apiErr), "unexpected error %v", err)
	assert.Equal(t, status, apiErr.Status)
	return apiErr
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})
	ctx := context.Background()

	resp, err := env.client.Login(ctx, "admin", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, contract.SessionUser{Username: "admin", IsAdmin: true}, resp.User)
	assert.Equal(t, resp.Token, env.client.Token())

	claims, err := env.deps.AuthService().Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
}

func TestLogin_FailuresAreIdentical(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})

	wrongResp, wrongBody := env.do(t, http.MethodPost, "/api/login", `{"username":"admin","password":"nope"}`)
	unknownResp, unknownBody := env.do(t, http.MethodPost, "/api/login", `{"username":"ghost","password":"password123"}`)
	emptyResp, emptyBody := env.do(t, http.MethodPost, "/api/login", `{"username":"admin","password":""}`)

	assert.Equal(t, http.StatusUnauthorized, wrongResp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknownResp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, emptyResp.StatusCode)
	assert.JSONEq(t, string(wrongBody), string(unknownBody))
	assert.JSONEq(t, string(wrongBody), string(emptyBody))
	assert.Equal(t, "Invalid credentials", decodeError(t, wrongBody).Message)
}

func TestLogin_MissingField(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})

	resp, body := env.do(t, http.MethodPost, "/api/login", `{"username":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "password", decodeError(t, body).Field)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})

	resp, err := env.client.Logout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Logged out", resp.Message)
}

func TestBotStats(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})
	ctx := context.Background()

	first, err := env.client.BotStats(ctx)
	require.NoError(t, err)
	second, err := env.client.BotStats(ctx)
	require.NoError(t, err)

	for _, s := range []*models.BotStats{first, second} {
		assert.Equal(t, models.BotStatusOnline, s.Status)
		assert.GreaterOrEqual(t, s.CPUUsage, 10)
		assert.Less(t, s.CPUUsage, 40)
		assert.GreaterOrEqual(t, s.MemoryUsage, 100)
		assert.Less(t, s.MemoryUsage, 300)
	}
	assert.GreaterOrEqual(t, second.TotalMessages, first.TotalMessages)
}

func TestBotControl_StopIsImmediate(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})
	ctx := context.Background()

	resp, err := env.client.ControlBot(ctx, models.BotActionStop)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, models.BotStatusOffline, resp.NewStatus)
	assert.Equal(t, "Bot stopped successfully", resp.Message)

	s, err := env.client.BotStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.BotStatusOffline, s.Status)

	logs, err := env.client.Logs(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bot stop command executed by user", logs[0].Message)
	assert.Equal(t, models.LogLevelInfo, logs[0].Level)
}

func TestBotControl_Restart(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})
	ctx := context.Background()

	resp, err := env.client.ControlBot(ctx, models.BotActionRestart)
	require.NoError(t, err)
	assert.Equal(t, models.BotStatusRestarting, resp.NewStatus)

	s, err := env.client.BotStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.BotStatusRestarting, s.Status)

	require.Eventually(t, func() bool {
		s, err := env.client.BotStats(ctx)
		return err == nil && s.Status == models.BotStatusOnline
	}, 2*time.Second, 10*time.Millisecond)

	s, err = env.client.BotStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ZeroUptime, s.Uptime)

	logs, err := env.client.Logs(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bot restarted successfully", logs[0].Message)
	assert.Equal(t, models.LogLevelSuccess, logs[0].Level)
}

func TestBotControl_RestartRejectedWhilePending(t *testing.T) {
	env := newTestEnv(t, func(c *domain.AppConfig) {
		c.RestartPolicy = stats.PolicyReject
		c.RestartDelay = time.Hour
	}, RouterOptions{})
	ctx := context.Background()

	_, err := env.client.ControlBot(ctx, models.BotActionRestart)
	require.NoError(t, err)

	_, err = env.client.ControlBot(ctx, models.BotActionRestart)
	apiErr := requireAPIError(t, err, http.StatusConflict)
	assert.Equal(t, string(ErrCodeConflict), apiErr.Code)
}

func TestBotControl_InvalidAction(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})

	resp, body := env.do(t, http.MethodPost, "/api/bot/control", `{"action":"explode"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	e := decodeError(t, body)
	assert.Equal(t, "Invalid action", e.Message)
	assert.Equal(t, "action", e.Field)
}

func TestLogs_OrderAndClear(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		env.deps.LogService().Add(models.LogLevelInfo, "entry %d", i)
	}

	logs, err := env.client.Logs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 7)
	for i := 1; i < len(logs); i++ {
		assert.Greater(t, logs[i-1].ID, logs[i].ID)
	}

	resp, _ := env.do(t, http.MethodDelete, "/api/logs", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	logs, err = env.client.Logs(ctx)
	require.NoError(t, err)
	assert.Empty(t, logs)

	_, body := env.do(t, http.MethodGet, "/api/logs", "")
	assert.JSONEq(t, `[]`, string(body))
}

func TestFeatureToggle(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})
	ctx := context.Background()

	before, err := env.client.Logs(ctx)
	require.NoError(t, err)

	feature, err := env.client.ToggleFeature(ctx, 1, false)
	require.NoError(t, err)
	assert.Equal(t, 1, feature.ID)
	assert.False(t, feature.IsEnabled)
	assert.Equal(t, "auto_reply", feature.Key)
	assert.Equal(t, "#39ff14", feature.NeonColor)

	after, err := env.client.Logs(ctx)
	require.NoError(t, err)
	assert.Equal(t, countLevel(before, models.LogLevelWarn)+1, countLevel(after, models.LogLevelWarn))
	assert.Equal(t, "Feature 'auto_reply' disabled", after[0].Message)

	feature, err = env.client.ToggleFeature(ctx, 1, true)
	require.NoError(t, err)
	assert.True(t, feature.IsEnabled)
}

func TestFeatureToggle_NotFoundIsNoop(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})
	ctx := context.Background()

	before := env.deps.Store().Counts()

	_, err := env.client.ToggleFeature(ctx, 999, true)
	apiErr := requireAPIError(t, err, http.StatusNotFound)
	assert.Equal(t, "Feature not found", apiErr.Message)

	assert.Equal(t, before, env.deps.Store().Counts())
}

func TestFeatureToggle_MissingFlag(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})

	resp, body := env.do(t, http.MethodPatch, "/api/features/1", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "isEnabled", decodeError(t, body).Field)

	f, ok := env.deps.Store().FeatureToggle(1)
	require.True(t, ok)
	assert.True(t, f.IsEnabled)
}

func TestGroups(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})

	groups, err := env.client.Groups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Developers Hub", groups[0].Name)
	assert.Equal(t, 1250, groups[0].MemberCount)
	assert.Equal(t, models.GroupStatusActive, groups[0].Status)
}

func TestFiles(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})
	ctx := context.Background()

	_, body := env.do(t, http.MethodGet, "/api/files", "")
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	require.Len(t, raw, 1)
	assert.NotContains(t, raw[0], "content")
	assert.Equal(t, "config.json", raw[0]["filename"])

	file, err := env.client.File(ctx, 1)
	require.NoError(t, err)
	assert.Contains(t, file.Content, "version")

	require.NoError(t, env.client.UpdateFile(ctx, 1, "hello"))

	updated, err := env.client.File(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "hello", updated.Content)
	assert.Equal(t, "config.json", updated.Filename)
	assert.Equal(t, file.Size, updated.Size)
	assert.Equal(t, "2 KB", updated.Size)
	assert.True(t, updated.LastModified.Equal(file.LastModified))

	logs, err := env.client.Logs(ctx)
	require.NoError(t, err)
	assert.Equal(t, "File updated: ID 1", logs[0].Message)
}

func TestFiles_EmptyContentAllowed(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})

	resp, _ := env.do(t, http.MethodPut, "/api/files/1", `{"content":""}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := env.do(t, http.MethodPut, "/api/files/1", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "content", decodeError(t, body).Field)
}

func TestFiles_NotFound(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})
	ctx := context.Background()

	_, err := env.client.File(ctx, 42)
	apiErr := requireAPIError(t, err, http.StatusNotFound)
	assert.Equal(t, "File not found", apiErr.Message)

	err = env.client.UpdateFile(ctx, 42, "x")
	requireAPIError(t, err, http.StatusNotFound)
}

func TestAPIs_Lifecycle(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})
	ctx := context.Background()

	seeded, err := env.client.APIs(ctx)
	require.NoError(t, err)

	entry, err := env.client.CreateAPI(ctx, contract.CreateAPIRequest{
		Name:     "Image Gen",
		Endpoint: "https://img.example.com/v1",
		Key:      "k",
		Type:     models.APITypeImage,
	})
	require.NoError(t, err)
	assert.Equal(t, len(seeded)+1, entry.ID)
	assert.True(t, entry.IsEnabled)
	assert.Equal(t, "#00ffff", entry.NeonColor)

	toggled, err := env.client.ToggleAPI(ctx, entry.ID, false)
	require.NoError(t, err)
	assert.False(t, toggled.IsEnabled)
	assert.Equal(t, entry.Name, toggled.Name)
	assert.Equal(t, entry.Endpoint, toggled.Endpoint)

	require.NoError(t, env.client.DeleteAPI(ctx, entry.ID))

	err = env.client.DeleteAPI(ctx, entry.ID)
	apiErr := requireAPIError(t, err, http.StatusNotFound)
	assert.Equal(t, "API not found", apiErr.Message)

	_, err = env.client.ToggleAPI(ctx, entry.ID, true)
	requireAPIError(t, err, http.StatusNotFound)

	next, err := env.client.CreateAPI(ctx, contract.CreateAPIRequest{
		Name:     "Again",
		Endpoint: "https://again.example.com",
		Type:     models.APITypeCustom,
	})
	require.NoError(t, err)
	assert.Greater(t, next.ID, entry.ID)
}

func TestAPIs_CreateExplicitlyDisabled(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})

	resp, body := env.do(t, http.MethodPost, "/api/apis",
		`{"name":"x","endpoint":"https://x.example","type":"video","isEnabled":false,"neonColor":"#ff00ff"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var entry models.APIEntry
	require.NoError(t, json.Unmarshal(body, &entry))
	assert.False(t, entry.IsEnabled)
	assert.Equal(t, "#ff00ff", entry.NeonColor)
}

func TestAPIs_CreateInvalid(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})

	resp, body := env.do(t, http.MethodPost, "/api/apis", `{"name":"x","type":"video"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	e := decodeError(t, body)
	assert.Equal(t, "Invalid API data", e.Message)
	assert.Equal(t, "endpoint", e.Field)
}

func TestDownloads(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})
	ctx := context.Background()

	entry, err := env.client.CreateDownload(ctx, contract.CreateDownloadRequest{
		Filename: "clip.mp4",
		Type:     models.DownloadTypeVideo,
		URL:      "https://cdn.example.com/clip.mp4",
		Size:     "12 MB",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DownloadStatusCompleted, entry.Status)
	assert.False(t, entry.Timestamp.IsZero())

	downloads, err := env.client.Downloads(ctx)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, downloads[len(downloads)-1].ID)

	resp, body := env.do(t, http.MethodPost, "/api/downloads", `{"filename":"a"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid download data", decodeError(t, body).Message)
}

func TestChat(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})
	ctx := context.Background()

	reply, err := env.client.Chat(ctx, "status?", "en")
	require.NoError(t, err)
	assert.Equal(t, `I am Shourov AI. You asked: "status?". I can help you manage your dashboard features and bot controls.`, reply)

	reply, err = env.client.Chat(ctx, "status?", "bn")
	require.NoError(t, err)
	assert.Contains(t, reply, `"status?"`)
	assert.Contains(t, reply, "শৌরভ")

	_, err = env.client.Chat(ctx, "status?", "fr")
	apiErr := requireAPIError(t, err, http.StatusBadRequest)
	assert.Equal(t, "lang", apiErr.Field)
}

func TestChat_EmptyMessage(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})

	resp, body := env.do(t, http.MethodPost, "/api/ai/chat", `{"message":"","lang":"en"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reply contract.ChatResponse
	require.NoError(t, json.Unmarshal(body, &reply))
	assert.Contains(t, reply.Response, `You asked: "".`)

	resp, body = env.do(t, http.MethodPost, "/api/ai/chat", `{"lang":"en"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "message", decodeError(t, body).Field)
}

func TestHealthAndVersion(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})

	resp, body := env.do(t, http.MethodGet, HealthPath, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health HealthCheckResponse
	require.NoError(t, json.Unmarshal(body, &health))
	assert.True(t, health.Healthy)
	assert.True(t, health.Checks["store"].Passed)
	assert.Equal(t, "Bot is online", health.Checks["bot"].Message)
	assert.Contains(t, health.Checks, "log_stream")

	resp, body = env.do(t, http.MethodGet, VersionPath, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var version VersionInfo
	require.NoError(t, json.Unmarshal(body, &version))
	assert.Equal(t, Version, version.Version)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{})

	env.do(t, http.MethodGet, "/api/files/1", "")
	env.do(t, http.MethodGet, "/api/files/1", "")

	resp, body := env.do(t, http.MethodGet, MetricsPath, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `botpanel_http_requests_total{method="GET",route="/api/files/{id}",status="200"} 2`)
	assert.Contains(t, string(body), `botpanel_log_entries_total{level="success"} 1`)
}
