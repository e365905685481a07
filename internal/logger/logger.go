package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	principalKey contextKey = "principal"
	requestIDKey contextKey = "request_id"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// ContextWithPrincipal stores the acting principal id for later log entries
func ContextWithPrincipal(ctx context.Context, principal string) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// ContextWithRequestID stores the request id for later log entries
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// PrincipalFromContext returns the principal id stored by ContextWithPrincipal
func PrincipalFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	p, ok := ctx.Value(principalKey).(string)
	return p, ok && p != ""
}

// WithContext creates a logger tagged with the principal and request id found in ctx
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if principal, ok := PrincipalFromContext(ctx); ok {
		logger.Entry = logger.Entry.WithField("user", principal)
	} else {
		logger.Entry = logger.Entry.WithField("user", "unknown")
	}
	if ctx != nil {
		if requestID, ok := ctx.Value(requestIDKey).(string); ok && requestID != "" {
			logger.Entry = logger.Entry.WithField("request_id", requestID)
		}
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches err to the entry
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
