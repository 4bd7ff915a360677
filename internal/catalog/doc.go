// Package catalog discovers wallpaper candidates.
//
// Scan lists one directory (non-recursively), keeps files whose extension is
// on the image allow-list, and returns their paths relative to the home
// directory so they can be embedded into the wezterm Lua file as
// home .. '/<path>'. Build pools the image and animation catalogs according
// to a Mode.
package catalog
