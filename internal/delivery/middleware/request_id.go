package middleware

import (
	"log/slog"

	deliverycontext "learnhub/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength caps client-supplied request ids before they reach the logs.
const maxRequestIDLength = 128

// RequestIDMiddleware opens the request scope: an id, echoed in the response
// header, and a logger tagged with it.
type RequestIDMiddleware struct {
	logger *slog.Logger
	newID  func() string
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Process reuses the caller's X-Request-Id when it is usable and generates one otherwise.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := acceptedRequestID(c.Request().Header.Get(deliverycontext.HeaderXRequestID))
		if requestID == "" {
			requestID = m.newID()
		}

		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)
		deliverycontext.Begin(c, requestID, m.logger.With(slog.String("request_id", requestID)))

		return next(c)
	}
}

// acceptedRequestID returns id if it is short printable ASCII, otherwise "".
func acceptedRequestID(id string) string {
	if len(id) > maxRequestIDLength {
		return ""
	}

	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return ""
		}
	}

	return id
}
