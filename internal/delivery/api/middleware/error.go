// Package middleware holds the API-specific echo middleware: bearer authentication
// and the centralized error handler.
package middleware

import (
	"log/slog"
	"net/http"

	"learnhub/internal/delivery/api/response"
	deliverycontext "learnhub/internal/delivery/context"
	domainerrors "learnhub/internal/domain/errors"
	"learnhub/internal/errors"

	"github.com/labstack/echo/v4"
)

const codeHTTPError = "HTTP_ERROR"

// ErrorMiddleware turns handler errors into the JSON error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
// Application errors keep their code; echo errors (404 route, 413 body) keep their status;
// anything else is a 500 with a generic message.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logFailure(c, err, appErr.ErrorCode())
		}
		_ = response.FromAppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, codeHTTPError, message, nil)

		return
	}

	m.logFailure(c, err, domainerrors.ErrInternalError.ErrorCode())
	_ = response.FromAppError(c, domainerrors.ErrInternalError)
}

func (m *ErrorMiddleware) logFailure(c echo.Context, err error, code string) {
	req := c.Request()
	deliverycontext.LoggerOrDefault(req.Context(), m.logger).Error("Request failed",
		slog.Any("error", err),
		slog.String("error_code", code),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)
}
