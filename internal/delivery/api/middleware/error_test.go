package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "learnhub/internal/domain/errors"
	"learnhub/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   []string
		wantLog    bool
	}{
		{
			name:       "validation error keeps details",
			err:        errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("prompt must be between 5 and 1000 characters")),
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"code":"VALIDATION_FAILED"`, `"details":"prompt must be between 5 and 1000 characters"`},
		},
		{
			name:       "conflict",
			err:        errors.Wrap(domainerrors.ErrIDNumberAlreadyRegistered, "register"),
			wantStatus: http.StatusConflict,
			wantBody:   []string{`"code":"ID_NUMBER_ALREADY_REGISTERED"`},
		},
		{
			name:       "store failure hides details",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("dial tcp: refused"), "insert lesson"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{`"code":"DATABASE_EXECUTE_FAILED"`},
			wantLog:    true,
		},
		{
			name:       "echo error",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   []string{`"code":"HTTP_ERROR"`},
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{`"code":"INTERNAL_ERROR"`, `"message":"Internal server error"`},
			wantLog:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/prompts", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
			assert.NotContains(t, rec.Body.String(), "dial tcp")
			assert.NotContains(t, rec.Body.String(), "boom")
			assert.Equal(t, tt.wantLog, logs.Len() > 0)
		})
	}
}
