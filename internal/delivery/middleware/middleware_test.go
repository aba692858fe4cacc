package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"learnhub/config"
	deliverycontext "learnhub/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceptedRequestID(t *testing.T) {
	assert.Equal(t, "abc-123", acceptedRequestID("abc-123"))
	assert.Empty(t, acceptedRequestID(""))
	assert.Empty(t, acceptedRequestID("has space"))
	assert.Empty(t, acceptedRequestID("line\nbreak"))
	assert.Empty(t, acceptedRequestID(strings.Repeat("a", maxRequestIDLength+1)))
}

func TestRequestAndAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/api/users/me", func(c echo.Context) error {
		deliverycontext.SetUserID(c, "user-1")

		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	t.Run("client id kept", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
		line := buf.String()
		assert.Contains(t, line, `"request_id":"client-id"`)
		assert.Contains(t, line, `"user_id":"user-1"`)
		assert.Contains(t, line, `"status":418`)
		assert.Contains(t, line, `"level":"WARN"`)
	})

	t.Run("unusable id replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "bad id")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		got := rec.Header().Get(deliverycontext.HeaderXRequestID)
		require.NotEmpty(t, got)
		assert.NotEqual(t, "bad id", got)
	})
}
