package cli

import (
	"context"

	charmlog "github.com/charmbracelet/log"
)

// loggerKey is the context key for the CLI logger.
type loggerKey struct{}

// withLogger attaches the logger to the context.
func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext retrieves the CLI logger, falling back to the
// package default when a command runs outside Execute (tests).
func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*charmlog.Logger); ok {
		return l
	}
	return charmlog.Default()
}
