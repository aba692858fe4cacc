// Package context carries the per-request scope (request id, logger, caller)
// from the API layer down to the services.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header that carries the request id in both directions.
const HeaderXRequestID = echo.HeaderXRequestID

// echo.Context key of the scope.
const scopeKey = "learnhub.scope"

type scopeCtxKey struct{}

// Scope holds the values attached to one API request. It is created by the
// request id middleware and completed by the auth middleware.
type Scope struct {
	RequestID string
	UserID    string
	Logger    *slog.Logger
}

// Begin attaches a new scope to the request.
func Begin(c echo.Context, requestID string, logger *slog.Logger) *Scope {
	s := &Scope{RequestID: requestID, Logger: logger}
	c.Set(scopeKey, s)
	c.SetRequest(c.Request().WithContext(context.WithValue(c.Request().Context(), scopeCtxKey{}, s)))

	return s
}

// FromEcho returns the scope of the request, starting an empty one if needed.
func FromEcho(c echo.Context) *Scope {
	if s, ok := c.Get(scopeKey).(*Scope); ok {
		return s
	}

	return Begin(c, "", nil)
}

// FromContext returns the scope stored by Begin.
func FromContext(ctx context.Context) (*Scope, bool) {
	s, ok := ctx.Value(scopeCtxKey{}).(*Scope)

	return s, ok
}

// GetRequestID returns the request id, or "" when the request has no scope.
func GetRequestID(c echo.Context) string {
	if s, ok := c.Get(scopeKey).(*Scope); ok {
		return s.RequestID
	}

	return ""
}

// SetUserID records the authenticated caller. Later log lines of the request carry the user id.
func SetUserID(c echo.Context, userID string) {
	s := FromEcho(c)
	s.UserID = userID
	if s.Logger != nil {
		s.Logger = s.Logger.With(slog.String("user_id", userID))
	}
}

// GetUserID returns the authenticated caller, or false for anonymous requests.
func GetUserID(c echo.Context) (string, bool) {
	s, ok := c.Get(scopeKey).(*Scope)
	if !ok || s.UserID == "" {
		return "", false
	}

	return s.UserID, true
}

// LoggerOrDefault returns the request logger, or fallback outside a request.
func LoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if s, ok := FromContext(ctx); ok && s.Logger != nil {
		return s.Logger
	}

	return fallback
}
