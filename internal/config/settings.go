package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"wezback/internal/failure"
)

//go:embed sample_settings
var sampleSettings string

const (
	KeyImages     = "images"
	KeyWezLua     = "wezlua"
	KeyAnimations = "animations"
)

// FormatHelp describes the settings file layout.
const FormatHelp = `wezback reads its settings from ~/.config/wezback.

Each setting is one line of the form key = "value":

  images = "~/Pictures/wallpapers"
  wezlua = "~/.config/wezterm/wezterm.lua"
  animations = "~/Pictures/animations"

images      directory scanned for static wallpapers
wezlua      wezterm Lua file whose "local image_path" line is rewritten
animations  directory scanned for animated wallpapers

All three keys are required. A leading ~ expands to $HOME. Lines that do not
start with a known key are ignored. Wallpapers must live under $HOME because
the Lua file references them as home .. '/<relative path>'.`

// Settings holds the directories and target file named by the settings file.
type Settings struct {
	ImagesDir     string
	ConfigFile    string
	AnimationsDir string
}

// LoadSettings reads and parses the settings file. An empty path selects
// DefaultSettingsPath; a leading ~ in path is expanded.
func LoadSettings(path string) (Settings, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = settingsPathTemplate
	}
	path, err := ExpandPath(path)
	if err != nil {
		return Settings{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, failure.Wrap(failure.ErrConfigRead, "settings", "read", fmt.Sprintf("failed to read config file: %s", path), err)
	}
	return ParseSettings(string(data))
}

// ParseSettings parses settings file content.
func ParseSettings(content string) (Settings, error) {
	values := map[string]string{}
	for line := range strings.Lines(content) {
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		for _, key := range []string{KeyImages, KeyWezLua, KeyAnimations} {
			raw, ok := strings.CutPrefix(line, key+" = ")
			if !ok {
				continue
			}
			expanded, err := ExpandPath(strings.Trim(raw, `"`))
			if err != nil {
				return Settings{}, fmt.Errorf("settings %s: %w", key, err)
			}
			values[key] = expanded
			break
		}
	}

	for _, key := range []string{KeyImages, KeyWezLua, KeyAnimations} {
		if _, ok := values[key]; !ok {
			return Settings{}, &failure.MissingKeyError{Key: key}
		}
	}
	return Settings{
		ImagesDir:     values[KeyImages],
		ConfigFile:    values[KeyWezLua],
		AnimationsDir: values[KeyAnimations],
	}, nil
}

// WriteSampleSettings writes a sample settings file to path.
func WriteSampleSettings(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleSettings), 0o644); err != nil {
		return fmt.Errorf("write sample settings: %w", err)
	}
	return nil
}
