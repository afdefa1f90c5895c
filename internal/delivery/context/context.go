// Package context carries request-scoped values between the HTTP layer and the usecases:
// the request ID, a logger tagged with it and the authenticated subject.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeySubject   ContextKey = "subject"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

func value[T any](ctx context.Context, key ContextKey) (T, bool) {
	v, ok := ctx.Value(key).(T)

	return v, ok
}

// GetRequestID returns the request ID assigned by the request ID middleware, or "" outside a request.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(KeyRequestID)).(string)

	return id
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := value[string](ctx, KeyRequestID)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := value[*slog.Logger](ctx, KeyLogger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetSubject stores the authenticated user ID in echo.Context and in the request context.
func SetSubject(c echo.Context, subject uint) {
	c.Set(string(KeySubject), subject)
	c.SetRequest(c.Request().WithContext(WithSubject(c.Request().Context(), subject)))
}

// GetSubject returns the authenticated user ID set by the auth middleware.
func GetSubject(c echo.Context) (uint, bool) {
	subject, ok := c.Get(string(KeySubject)).(uint)

	return subject, ok && subject != 0
}

// WithSubject returns a new context with the authenticated user ID.
func WithSubject(ctx context.Context, subject uint) context.Context {
	return context.WithValue(ctx, KeySubject, subject)
}

// GetSubjectFromContext extracts the authenticated user ID from standard context.Context.
func GetSubjectFromContext(ctx context.Context) (uint, bool) {
	subject, ok := value[uint](ctx, KeySubject)

	return subject, ok && subject != 0
}
