// Package main hosts the wezback CLI entrypoint and command graph.
//
// Running wezback with no subcommand starts the interactive prompt loop;
// --once rotates a single time. Subcommands cover timed rotation, candidate
// listing, readiness checks, and settings scaffolding. Settings and runtime
// options are resolved once per invocation by commandContext so commands can
// focus on output instead of wiring.
package main
