// Package context carries request-scoped values between the echo layer and
// the services: the request ID, the session ID and a logger tagged with both.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeySessionID ContextKey = "session_id"
	KeyLogger    ContextKey = "logger"

	// HeaderXRequestID is echoed back on every response.
	HeaderXRequestID = "X-Request-Id"

	maxRequestIDLength = 128
)

// GetRequestID returns the request ID stored by the request ID middleware.
// Pages rendered outside that middleware (tests, early errors) get a fresh one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// ValidRequestID reports whether an inbound X-Request-Id can be reused:
// bounded length, visible ASCII only.
func ValidRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}

	return true
}

// GetRequestIDFromContext returns "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetSessionIDFromContext returns the non-secret session identifier, or "" for
// anonymous visitors.
func GetSessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeySessionID).(string)

	return id
}

// WithSessionID stores the session identifier and tags the request logger with
// it, so every later log line of the request can be tied to the visitor.
func WithSessionID(ctx context.Context, sessionID string, fallback *slog.Logger) context.Context {
	if sessionID == "" {
		return ctx
	}

	ctx = context.WithValue(ctx, KeySessionID, sessionID)
	logger := GetLoggerOrDefault(ctx, fallback)
	if logger == nil {
		return ctx
	}

	return WithLogger(ctx, logger.With(slog.String("session_id", sessionID)))
}

// GetLogger returns nil when no request logger was stored.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault prefers the request-scoped logger over fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
