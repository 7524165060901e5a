// Package logging defines the structured-logging interface the rest of the
// project depends on, keeping the concrete backend (slog today) swappable.
package logging

import "context"

// Logger is a leveled, context-aware structured logger. The variadic args
// are alternating key-value pairs:
//
//	log.Info(ctx, "listening", "addr", addr)
type Logger interface {
	// Debug records verbose diagnostics, normally suppressed.
	Debug(ctx context.Context, msg string, args ...any)

	// Info records normal operational events.
	Info(ctx context.Context, msg string, args ...any)

	// Warn records unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error records failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger carrying the given key-value pairs on
	// every record.
	With(args ...any) Logger
}
