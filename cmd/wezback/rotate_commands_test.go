package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wezback/internal/failure"
	"wezback/internal/testsupport"
)

const wantLine = "local image_path = home .. '/Pictures/wall/a.png'"

func TestOnceRotates(t *testing.T) {
	env := setupCLITestEnv(t)

	for _, args := range [][]string{{"once"}, {"--once"}, {"-o"}} {
		testsupport.WriteLua(t, env.luaPath, "local image_path = 'x'")
		out, _, err := runCLI(t, args, "")
		if err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		if out != "Updated config with new image: "+wantLine+"\n" {
			t.Fatalf("%v: got %q", args, out)
		}
		if got := testsupport.ReadFile(t, env.luaPath); got != wantLine {
			t.Fatalf("%v: got config %q want %q", args, got, wantLine)
		}
	}
}

func TestOnceKeepsOtherLines(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"once"}, ""); err != nil {
		t.Fatalf("once: %v", err)
	}
	want := strings.Join([]string{
		"local wezterm = require 'wezterm'",
		"local home = os.getenv('HOME')",
		wantLine,
		"return { window_background_image = image_path }",
	}, "\n")
	if got := testsupport.ReadFile(t, env.luaPath); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestOnceEmptyCatalogSucceeds(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.Remove(filepath.Join(env.home, "Pictures", "wall", "a.png")); err != nil {
		t.Fatal(err)
	}
	before := testsupport.ReadFile(t, env.luaPath)

	_, stderr, err := runCLI(t, []string{"once"}, "")
	if err != nil {
		t.Fatalf("once: %v", err)
	}
	requireContains(t, stderr, "Could not select a wallpaper.")
	if after := testsupport.ReadFile(t, env.luaPath); after != before {
		t.Fatal("config changed on empty catalog")
	}
}

func TestOnceMissingWezluaKey(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteSettings(t, env.settingsPath, "~/Pictures/wall", "", "~/Pictures/anim")
	before := testsupport.ReadFile(t, env.luaPath)

	_, _, err := runCLI(t, []string{"once"}, "")
	var missing *failure.MissingKeyError
	if !errors.As(err, &missing) || missing.Key != "wezlua" {
		t.Fatalf("expected missing wezlua key, got %v", err)
	}
	if after := testsupport.ReadFile(t, env.luaPath); after != before {
		t.Fatal("config changed without settings")
	}
}

func TestOnceNoStaticUsesAnimations(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"--no-static", "once"}, ""); err != nil {
		t.Fatalf("once: %v", err)
	}
	requireContains(t, testsupport.ReadFile(t, env.luaPath), "local image_path = home .. '/Pictures/anim/loop.gif'")
}

func TestModeFlagsMutuallyExclusive(t *testing.T) {
	setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"--all", "--no-static", "once"}, ""); err == nil {
		t.Fatal("expected error for --all with --no-static")
	}
}

func TestOptionsModeApplies(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFile(t, filepath.Join(env.home, ".config", "wezback.toml"), "[rotation]\nmode = \"animations\"\n")

	if _, _, err := runCLI(t, []string{"once"}, ""); err != nil {
		t.Fatalf("once: %v", err)
	}
	requireContains(t, testsupport.ReadFile(t, env.luaPath), "Pictures/anim/loop.gif")
}

func TestInvalidOptionsRejected(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFile(t, filepath.Join(env.home, ".config", "wezback.toml"), "[rotation]\nmode = \"sometimes\"\n")

	_, _, err := runCLI(t, []string{"once"}, "")
	if !errors.Is(err, failure.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}

func TestPromptRotatesPerLine(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, nil, "\n\n")
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if got := strings.Count(out, "Press Enter to change the wallpaper or Ctrl+C to exit..."); got != 3 {
		t.Fatalf("expected 3 prompts, got %d in %q", got, out)
	}
	if got := strings.Count(out, "Updated config with new image"); got != 2 {
		t.Fatalf("expected 2 rotations, got %d", got)
	}
	if strings.Contains(out, clearScreenSequence) {
		t.Fatal("screen must not be cleared when stdout is not a terminal")
	}
	if got := testsupport.ReadFile(t, env.luaPath); !strings.Contains(got, wantLine) {
		t.Fatalf("unexpected config %q", got)
	}
}

func TestPromptSubcommandMissingDirectoryFails(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.RemoveAll(filepath.Join(env.home, "Pictures", "wall")); err != nil {
		t.Fatal(err)
	}
	_, _, err := runCLI(t, []string{"prompt"}, "\n")
	if !errors.Is(err, failure.ErrPathResolution) {
		t.Fatalf("expected ErrPathResolution, got %v", err)
	}
}

func TestOnceExpandsSettingsFlag(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"--settings", "~/.config/wezback", "once"}, ""); err != nil {
		t.Fatalf("once: %v", err)
	}
	if got := testsupport.ReadFile(t, env.luaPath); !strings.Contains(got, wantLine) {
		t.Fatalf("unexpected config %q", got)
	}
}
