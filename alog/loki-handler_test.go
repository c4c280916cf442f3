package alog_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/go-arrower/userposts/alog"
)

func TestNewLokiHandler(t *testing.T) {
	t.Parallel()

	t.Run("reachable loki", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		h := alog.NewLokiHandler(&alog.LokiHandlerOptions{PushURL: server.URL})
		assert.True(t, h.Connected())

		logger := alog.New(alog.WithHandler(h))
		err := logger.Handler().Handle(ctx, slog.NewRecord(testTime, slog.LevelInfo, applicationMsg, 0))
		assert.NoError(t, err)
	})

	t.Run("unreachable loki drops records", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		h := alog.NewLokiHandler(&alog.LokiHandlerOptions{PushURL: url})
		assert.False(t, h.Connected())

		err := h.WithGroup("g").Handle(ctx, slog.NewRecord(testTime, slog.LevelInfo, applicationMsg, 0))
		assert.NoError(t, err)
	})

	t.Run("close stops reconnecting", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			attempts.Add(1)

			// drop the connection, so the client sees loki as unreachable
			conn, _, err := w.(http.Hijacker).Hijack()
			if err == nil {
				_ = conn.Close()
			}
		}))
		defer server.Close()

		h := alog.NewLokiHandler(&alog.LokiHandlerOptions{PushURL: server.URL, RetryInterval: 5 * time.Millisecond})
		assert.False(t, h.Connected())

		assert.Eventually(t, func() bool { return attempts.Load() >= 3 }, time.Second, 5*time.Millisecond)

		h.Close()
		h.Close()
		time.Sleep(50 * time.Millisecond) // let an attempt in flight finish

		n := attempts.Load()
		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, n, attempts.Load(), "no more connection attempts after close")
		assert.False(t, h.Connected())
	})

	t.Run("close a connected handler", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		h := alog.NewLokiHandler(&alog.LokiHandlerOptions{PushURL: server.URL})
		assert.True(t, h.Connected())

		h.Close()
		assert.False(t, h.Connected())

		err := h.Handle(ctx, slog.NewRecord(testTime, slog.LevelInfo, applicationMsg, 0))
		assert.NoError(t, err, "records after close are dropped")
	})
}
