// Package failure classifies wezback errors.
//
// Every component tags the errors it returns with one of the sentinel markers
// below so the drivers can decide whether a failure aborts the invocation or
// only skips one rotation cycle, and so log records carry a stable error_kind.
package failure
