package httpserver_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/registro/pkg/httpserver"
)

func listen(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return ln
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
}

func TestRunServesUntilCancelled(t *testing.T) {
	t.Parallel()

	ln := listen(t)
	started := make(chan string, 1)
	var stopped atomic.Bool
	srv := httpserver.New(
		httpserver.WithListener(ln),
		httpserver.WithShutdownTimeout(time.Second),
		httpserver.WithStartHook(func(addr string) { started <- addr }),
		httpserver.WithStopHook(func() { stopped.Store(true) }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, okHandler()) }()

	addr := <-started
	resp, err := http.Get("http://" + addr)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "run did not finish")
	}
	assert.True(t, stopped.Load())
	assert.NoError(t, srv.Shutdown(context.Background()))
}

func TestManualShutdown(t *testing.T) {
	t.Parallel()

	started := make(chan string, 1)
	srv := httpserver.New(
		httpserver.WithListener(listen(t)),
		httpserver.WithStartHook(func(addr string) { started <- addr }),
	)

	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), okHandler()) }()
	<-started

	require.NoError(t, srv.Shutdown(context.Background()))
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "run did not finish")
	}
}

func TestRunTwice(t *testing.T) {
	t.Parallel()

	started := make(chan string, 1)
	srv := httpserver.New(
		httpserver.WithListener(listen(t)),
		httpserver.WithStartHook(func(addr string) { started <- addr }),
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = srv.Run(ctx, okHandler()) }()
	<-started

	err := srv.Run(ctx, okHandler())
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)
}

func TestStartError(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.WithAddr(":invalid"))
	err := srv.Run(context.Background(), okHandler())
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestShutdownBeforeRun(t *testing.T) {
	t.Parallel()
	assert.NoError(t, httpserver.New().Shutdown(context.Background()))
}

func TestOptionsPanic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { httpserver.WithAddr("") })
	assert.Panics(t, func() { httpserver.WithReadTimeout(0) })
	assert.Panics(t, func() { httpserver.WithShutdownTimeout(-time.Second) })
	assert.Panics(t, func() { httpserver.WithListener(nil) })
	assert.Panics(t, func() { httpserver.WithStartHook(nil) })
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	started := make(chan string, 1)
	srv := httpserver.NewFromConfig(httpserver.Config{ShutdownTimeout: time.Second},
		httpserver.WithListener(listen(t)),
		httpserver.WithStartHook(func(addr string) { started <- addr }),
	)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, okHandler()) }()
	<-started
	cancel()
	require.NoError(t, <-done)
}

func TestHealthHandlers(t *testing.T) {
	t.Parallel()

	t.Run("liveness", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		httpserver.LivenessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())
	})

	t.Run("ready", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h := httpserver.ReadinessHandler(nil, func(context.Context) error { return nil }, nil)
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("not ready", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h := httpserver.ReadinessHandler(nil, func(context.Context) error { return errors.New("down") })
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "NOT_READY", rec.Body.String())
	})
}
