// Package preflight provides readiness checks for the files and directories
// a wallpaper rotation touches.
//
// The CLI "wezback doctor" command runs RunAll and renders the results as a
// table. Directory checks only cover the directories the selection mode
// actually scans.
package preflight
