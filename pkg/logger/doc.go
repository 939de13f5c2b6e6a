// Package logger builds configured slog loggers for the client.
//
// Loggers are created through functional options, choosing JSON output for
// aggregation or text output for development, and can inject request-scoped
// attributes (like the transport's request ID) from context via extractor
// functions so call sites never have to thread them manually.
package logger
