// Package logging provides structured logging utilities with context propagation.
//
// It wraps the standard library's log/slog package with helper functions for
// the patterns used throughout the application: JSON output with a level read
// from LOG_LEVEL, request ID propagation, and carrying a logger through a
// context.
package logging
