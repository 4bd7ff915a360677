// Package patcher rewrites the wallpaper assignment inside a wezterm Lua file.
//
// Only lines whose left-trimmed text starts with "local image_path" are
// touched; each becomes
//
//	local image_path = home .. '/<candidate>'
//
// and every other line passes through verbatim. The file is split into lines
// and rejoined with "\n", so CRLF terminators and a trailing newline are not
// preserved.
package patcher
