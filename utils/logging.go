package utils

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
)

type contextKey int

const (
	contextKeyLogger contextKey = iota
)

// NewLogger builds the process-wide logger. format is either "text" (local
// development) or "json" (structured output for log collectors).
func NewLogger(format string) *slog.Logger {
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{}))
	default:
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{}))
	}
}

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// LoggerFromContext returns the logger stored in the context, falling back to
// slog.Default so callers never receive nil.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(contextKeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

func StoreLoggerInContextMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		newContext := StoreLoggerInContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(newContext)
		c.Next()
	}
}
