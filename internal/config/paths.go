package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"wezback/internal/failure"
)

const (
	settingsPathTemplate = "~/.config/wezback"
	optionsFileName      = "wezback.toml"
	appName              = "wezback"
)

// HomeDir returns the user's home directory.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		if err == nil {
			err = os.ErrNotExist
		}
		return "", failure.Wrap(failure.ErrPathResolution, "config", "home directory", "unable to access HOME variable", err)
	}
	return home, nil
}

// ExpandPath replaces the first "~" of a path that starts with "~" by the home
// directory. Any other path is returned untouched.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return strings.Replace(path, "~", home, 1), nil
}

// DefaultSettingsPath returns the expanded location of the settings file.
func DefaultSettingsPath() (string, error) {
	return ExpandPath(settingsPathTemplate)
}

// DefaultOptionsPath returns the runtime options location under the XDG config home.
func DefaultOptionsPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, optionsFileName)
}

func defaultLogDir() string {
	xdg.Reload()
	return filepath.Join(xdg.StateHome, appName, "logs")
}
