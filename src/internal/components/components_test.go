package components

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shourov-bot/bot-panel/src/internal/log"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard, io.Discard)
	os.Exit(m.Run())
}

func TestRestartableRunner_RestartsOnError(t *testing.T) {
	var calls atomic.Int32
	r := NewRestartableRunner(RunnerConfig{
		Name:           "flaky",
		RestartBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
	}, func(ctx context.Context) error {
		if calls.Add(1) < 3 {
			return errors.New("boom")
		}
		return nil
	})

	require.NoError(t, r.Start(context.Background()))

	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not finish")
	}

	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, 2, r.RestartCount())
	assert.NoError(t, r.LastError())
	assert.NoError(t, r.Stop())
}

func TestRestartableRunner_RecoversPanics(t *testing.T) {
	var calls atomic.Int32
	r := NewRestartableRunner(RunnerConfig{
		Name:           "panicky",
		MaxRestarts:    1,
		RestartBackoff: time.Millisecond,
	}, func(ctx context.Context) error {
		calls.Add(1)
		panic("kaboom")
	})

	require.NoError(t, r.Start(context.Background()))

	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not give up")
	}

	assert.Equal(t, int32(2), calls.Load())
	require.Error(t, r.LastError())
	assert.Contains(t, r.LastError().Error(), "kaboom")
}

func TestRestartableRunner_StopCancelsContext(t *testing.T) {
	started := make(chan struct{})
	r := NewRestartableRunner(RunnerConfig{Name: "blocking"}, func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})

	require.NoError(t, r.Start(context.Background()))
	assert.Error(t, r.Start(context.Background()), "second start must fail")

	<-started
	assert.True(t, r.IsRunning())
	require.NoError(t, r.Stop())
	assert.False(t, r.IsRunning())
	assert.Equal(t, 0, r.RestartCount())
}

func TestAPIServer_ServesAndStops(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})

	srv := NewAPIServer("127.0.0.1:0", handler, APIServerOptions{ShutdownTimeout: time.Second})
	assert.Equal(t, "api-server", srv.Name())
	require.NoError(t, srv.Start())
	assert.True(t, srv.IsRunning())

	select {
	case <-srv.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("server did not bind")
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/ping", srv.Addr()))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	require.NoError(t, srv.Stop())
	assert.False(t, srv.IsRunning())
	assert.Error(t, srv.Stop(), "stopping twice must fail")
}

func TestAPIServer_GivesUpOnBindFailure(t *testing.T) {
	srv := NewAPIServer("256.0.0.1:bad", http.NotFoundHandler(), APIServerOptions{
		MaxRestarts:    1,
		RestartBackoff: time.Millisecond,
	})
	require.NoError(t, srv.Start())

	select {
	case <-srv.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("server did not give up")
	}

	assert.Error(t, srv.Err())
	assert.Nil(t, srv.Addr())
}
