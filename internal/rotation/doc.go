// Package rotation drives wallpaper cycles: build the candidate pool for the
// configured mode, pick one entry, and rewrite the wezterm config.
//
// Engine.Rotate performs a single cycle. RunOnce, RunPrompt, and RunInterval
// wrap it for the one-shot, interactive, and timed entry points. Loops log a
// failing cycle and carry on; only RunOnce surfaces errors to the caller.
package rotation
