// Package logging provides structured logging utilities shared by the
// mensad server and CLI.
//
// It wraps the standard library slog package with service-wide defaults:
// structured JSON output to stderr, environment-based log level
// configuration (LOG_LEVEL), automatic module/version context, and source
// location tracking for debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("mensad", version)
//
//	    slog.Info("processing request", "id", "req-123")
//	    slog.Error("operation failed", "error", err)
//	}
//
// The LOG_LEVEL environment variable controls verbosity (debug, info, warn,
// error; case-insensitive). If unset, INFO is used.
package logging
