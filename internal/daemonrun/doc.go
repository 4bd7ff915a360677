// Package daemonrun hosts the long-running timed rotation used by
// "wezback daemon": signal handling, the per-run log file, and log retention.
package daemonrun
