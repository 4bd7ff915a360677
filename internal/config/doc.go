// Package config loads wezback's two configuration layers.
//
// The settings file (~/.config/wezback) is the original line-oriented
// `key = "value"` file naming the image directory, the animation directory and
// the wezterm Lua file to patch. Its format is fixed; LoadSettings parses it
// with exact prefix matching and fails when a required key is absent.
//
// The runtime options file (wezback.toml under the XDG config home) is
// optional TOML that tunes the drivers: default selection mode, daemon
// interval, atomic writes and logging. Missing files fall back to Default.
//
// ExpandPath implements the tilde rule shared by both layers. Always resolve
// configured paths through this package so every component sees the same
// home-directory semantics.
package config
