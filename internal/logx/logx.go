// Package logx carries a request-scoped *log.Logger through the context.
// The request id middleware stores a logger whose prefix holds the request
// id and route, and handlers retrieve it with FromContext so every line of
// a request shares the same prefix.
package logx

import (
	"context"
	"log"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the request logger, or log.Default() outside a
// request (tests, startup code).
func FromContext(ctx context.Context) *log.Logger {
	if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return logger
	}
	return log.Default()
}
