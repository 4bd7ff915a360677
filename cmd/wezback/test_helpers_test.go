package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"wezback/internal/testsupport"
)

type cliTestEnv struct {
	home         string
	settingsPath string
	luaPath      string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	home := testsupport.NewHome(t)
	settingsPath := filepath.Join(home, ".config", "wezback")
	luaPath := filepath.Join(home, ".config", "wezterm", "wezterm.lua")
	testsupport.WriteSettings(t, settingsPath, "~/Pictures/wall", "~/.config/wezterm/wezterm.lua", "~/Pictures/anim")
	testsupport.TouchFiles(t, filepath.Join(home, "Pictures", "wall"), "a.png", "b.txt")
	testsupport.TouchFiles(t, filepath.Join(home, "Pictures", "anim"), "loop.gif")
	testsupport.WriteLua(t, luaPath,
		"local wezterm = require 'wezterm'",
		"local home = os.getenv('HOME')",
		"local image_path = home .. '/old.png'",
		"return { window_background_image = image_path }",
	)

	return &cliTestEnv{home: home, settingsPath: settingsPath, luaPath: luaPath}
}

func runCLI(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
