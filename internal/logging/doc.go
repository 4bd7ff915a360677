// Package logging assembles the structured slog loggers used across wezback.
//
// It owns the console and JSON handlers, the output plumbing (stdout, stderr
// or files), a fan-out handler that tees daemon runs into a per-run log file,
// retention of old run logs, and context helpers that tag every record of a
// process with its run id. A no-op logger is provided for tests and for
// wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every command
// emits records with the same shape.
package logging
