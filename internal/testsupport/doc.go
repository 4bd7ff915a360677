// Package testsupport holds fixtures shared by wezback package tests: a
// temporary HOME and writers for settings and Lua files.
package testsupport
