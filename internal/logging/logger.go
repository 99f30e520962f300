// Package logging is the structured logger shared by the API server, the
// web app and the CLI. Records carry the request id found in ctx.
package logging

import "context"

// Logger takes a message plus alternating key-value pairs:
//
//	log.Info(ctx, "cattle status updated", "cattle_id", id, "status", status)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that adds args to every record.
	With(args ...any) Logger
}
