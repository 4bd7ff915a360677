package rotation_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"wezback/internal/catalog"
	"wezback/internal/config"
	"wezback/internal/failure"
	"wezback/internal/logging"
	"wezback/internal/patcher"
	"wezback/internal/rotation"
	"wezback/internal/selection"
	"wezback/internal/testsupport"
)

type fixture struct {
	home     string
	settings config.Settings
	lua      string
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	home := testsupport.NewHome(t)
	settingsPath := filepath.Join(home, ".config", "wezback")
	testsupport.WriteSettings(t, settingsPath, "~/Pictures/wall", "~/.config/wezterm/wezterm.lua", "~/Pictures/anim")
	testsupport.TouchFiles(t, filepath.Join(home, "Pictures", "wall"), "a.png", "b.txt", "c.jpg")
	testsupport.TouchFiles(t, filepath.Join(home, "Pictures", "anim"), "loop.gif")
	lua := filepath.Join(home, ".config", "wezterm", "wezterm.lua")
	testsupport.WriteLua(t, lua,
		"local wezterm = require 'wezterm'",
		"local home = os.getenv('HOME')",
		"local image_path = home .. '/old.png'",
		"return { window_background_image = image_path }",
	)

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	return fixture{home: home, settings: settings, lua: lua, stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
}

func (f fixture) engine(mode catalog.Mode) *rotation.Engine {
	return &rotation.Engine{
		Settings: f.settings,
		Mode:     mode,
		Chooser:  selection.NewWithSource(rand.NewPCG(7, 11)),
		Logger:   logging.NewNop(),
		Out:      f.stdout,
		ErrOut:   f.stderr,
	}
}

func TestRotatePatchesConfig(t *testing.T) {
	f := newFixture(t)

	result, err := f.engine(catalog.ModeStatic).Rotate(context.Background())
	if err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	if result.Candidates != 2 {
		t.Fatalf("got %d candidates want 2", result.Candidates)
	}
	if result.Image != "Pictures/wall/a.png" && result.Image != "Pictures/wall/c.jpg" {
		t.Fatalf("unexpected image %q", result.Image)
	}

	want := patcher.ReplacementLine(result.Image)
	content := testsupport.ReadFile(t, f.lua)
	if !strings.Contains(content, want) {
		t.Fatalf("config missing %q:\n%s", want, content)
	}
	if strings.HasSuffix(content, "\n") {
		t.Fatalf("expected no trailing newline after rewrite")
	}
	if got := f.stdout.String(); got != "Updated config with new image: "+want+"\n" {
		t.Fatalf("got %q", got)
	}
}

func TestRotateAnimationsOnly(t *testing.T) {
	f := newFixture(t)

	result, err := f.engine(catalog.ModeAnimations).Rotate(context.Background())
	if err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	if result.Image != "Pictures/anim/loop.gif" || result.Candidates != 1 {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestRotateAllPoolsBothDirectories(t *testing.T) {
	f := newFixture(t)
	seen := map[string]bool{}
	engine := f.engine(catalog.ModeAll)
	for i := 0; i < 200; i++ {
		result, err := engine.Rotate(context.Background())
		if err != nil {
			t.Fatalf("Rotate: %v", err)
		}
		if result.Candidates != 3 {
			t.Fatalf("got %d candidates want 3", result.Candidates)
		}
		seen[result.Image] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected all candidates to be chosen, saw %v", seen)
	}
}

func TestRotateEmptyCatalogLeavesConfig(t *testing.T) {
	f := newFixture(t)
	if err := os.MkdirAll(filepath.Join(f.home, "empty"), 0o755); err != nil {
		t.Fatal(err)
	}
	f.settings.ImagesDir = filepath.Join(f.home, "empty")
	before := testsupport.ReadFile(t, f.lua)

	engine := f.engine(catalog.ModeStatic)
	if _, err := engine.Rotate(context.Background()); !errors.Is(err, failure.ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
	if _, err := engine.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce should not fail on empty catalog: %v", err)
	}
	if got := f.stderr.String(); got != rotation.NoSelectionMessage+"\n" {
		t.Fatalf("got stderr %q", got)
	}
	if after := testsupport.ReadFile(t, f.lua); after != before {
		t.Fatalf("config changed on empty catalog")
	}
}

func TestRunOnceReturnsScanErrors(t *testing.T) {
	f := newFixture(t)
	f.settings.ImagesDir = filepath.Join(f.home, "missing")

	_, err := f.engine(catalog.ModeStatic).RunOnce(context.Background())
	if !errors.Is(err, failure.ErrPathResolution) {
		t.Fatalf("expected ErrPathResolution, got %v", err)
	}
}

func TestRunOnceReturnsPatchErrors(t *testing.T) {
	f := newFixture(t)
	f.settings.ConfigFile = filepath.Join(f.home, "missing.lua")

	_, err := f.engine(catalog.ModeStatic).RunOnce(context.Background())
	if !errors.Is(err, failure.ErrConfigRead) {
		t.Fatalf("expected ErrConfigRead, got %v", err)
	}
}

func TestPinCatalogReusesScan(t *testing.T) {
	f := newFixture(t)
	engine := f.engine(catalog.ModeStatic)
	if err := engine.PinCatalog(context.Background()); err != nil {
		t.Fatalf("PinCatalog: %v", err)
	}
	testsupport.TouchFiles(t, filepath.Join(f.home, "Pictures", "wall"), "d.png")

	for i := 0; i < 100; i++ {
		result, err := engine.Rotate(context.Background())
		if err != nil {
			t.Fatalf("Rotate: %v", err)
		}
		if result.Candidates != 2 || result.Image == "Pictures/wall/d.png" {
			t.Fatalf("pinned catalog not reused: %+v", result)
		}
	}
}

func TestRotateMultipleMatchesRewritesAll(t *testing.T) {
	f := newFixture(t)
	testsupport.WriteLua(t, f.lua, "local image_path = 'x'", "  local image_path = 'y'")

	result, err := f.engine(catalog.ModeStatic).Rotate(context.Background())
	if err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	if result.Patch.Matched != 2 || result.Patch.Replaced != 2 {
		t.Fatalf("unexpected patch result %+v", result.Patch)
	}
	want := result.Patch.Line + "\n" + result.Patch.Line
	if got := testsupport.ReadFile(t, f.lua); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRunPromptCyclesPerLine(t *testing.T) {
	f := newFixture(t)
	var out bytes.Buffer
	clears := 0
	clearScreen := func(io.Writer) { clears++ }

	err := f.engine(catalog.ModeStatic).RunPrompt(context.Background(), strings.NewReader("\n\n"), &out, clearScreen)
	if err != nil {
		t.Fatalf("RunPrompt: %v", err)
	}
	if got := strings.Count(out.String(), rotation.PromptMessage); got != 3 {
		t.Fatalf("expected 3 prompts, got %d", got)
	}
	if clears != 3 {
		t.Fatalf("expected 3 clears, got %d", clears)
	}
	if got := strings.Count(f.stdout.String(), "Updated config with new image"); got != 2 {
		t.Fatalf("expected 2 rotations, got %d", got)
	}
}

func TestRunPromptContinuesAfterFailure(t *testing.T) {
	f := newFixture(t)
	f.settings.ConfigFile = filepath.Join(f.home, "missing.lua")
	var out bytes.Buffer

	err := f.engine(catalog.ModeStatic).RunPrompt(context.Background(), strings.NewReader("\n\n"), &out, nil)
	if err != nil {
		t.Fatalf("RunPrompt should swallow cycle errors: %v", err)
	}
	if got := strings.Count(out.String(), rotation.PromptMessage); got != 3 {
		t.Fatalf("expected 3 prompts, got %d", got)
	}
}

func TestRunPromptStopsOnCancel(t *testing.T) {
	f := newFixture(t)
	reader, writer := io.Pipe()
	defer writer.Close()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- f.engine(catalog.ModeStatic).RunPrompt(ctx, reader, io.Discard, nil)
	}()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("RunPrompt: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("RunPrompt did not stop after cancel")
	}
}

func TestRunIntervalRotatesUntilCancelled(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	if err := f.engine(catalog.ModeStatic).RunInterval(ctx, 20*time.Millisecond); err != nil {
		t.Fatalf("RunInterval: %v", err)
	}
	if got := strings.Count(f.stdout.String(), "Updated config with new image"); got < 2 {
		t.Fatalf("expected several rotations, got %d", got)
	}
}

func TestRunIntervalRejectsNonPositive(t *testing.T) {
	f := newFixture(t)
	if err := f.engine(catalog.ModeStatic).RunInterval(context.Background(), 0); err == nil {
		t.Fatal("expected error for zero interval")
	}
}
