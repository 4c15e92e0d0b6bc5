package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery(t *testing.T) {
	handler := Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/logs", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, string(ErrCodeInternalError), decodeError(t, rec.Body.Bytes()).Code)
}

func TestRequireToken(t *testing.T) {
	env := newTestEnv(t, nil, RouterOptions{RequireToken: true})
	ctx := context.Background()

	_, err := env.client.Logs(ctx)
	requireAPIError(t, err, http.StatusUnauthorized)

	resp, _ := env.do(t, http.MethodGet, HealthPath, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, err = env.client.Login(ctx, "admin", "password123")
	require.NoError(t, err)

	logs, err := env.client.Logs(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, logs)

	req, err := http.NewRequest(http.MethodGet, env.srv.URL+"/api/logs", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	r.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, r.StatusCode)

	r, err = http.Get(env.srv.URL + "/api/logs?token=" + env.client.Token())
	require.NoError(t, err)
	r.Body.Close()
	assert.Equal(t, http.StatusOK, r.StatusCode)
}

func TestResponseWriter_KeepsFirstStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := wrapResponseWriter(rec)

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)
	assert.Equal(t, http.StatusCreated, rw.statusCode)
}
