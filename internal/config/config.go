package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_options.toml
var sampleOptions string

// Rotation contains driver settings for the rotation loops.
type Rotation struct {
	Mode            string `toml:"mode"`
	IntervalSeconds int    `toml:"interval_seconds"`
	AtomicWrite     bool   `toml:"atomic_write"`
	ClearScreen     bool   `toml:"clear_screen"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format        string `toml:"format"`
	Level         string `toml:"level"`
	Dir           string `toml:"dir"`
	RetentionDays int    `toml:"retention_days"`
}

// Options encapsulates the optional runtime tuning read from wezback.toml.
//
// Sections:
//   - Rotation: default selection mode, daemon interval, write strategy
//   - Logging: log format, level, daemon log directory and retention
type Options struct {
	Rotation Rotation `toml:"rotation"`
	Logging  Logging  `toml:"logging"`
}

// LoadOptions locates, parses, and validates the runtime options file. It
// returns the options, the resolved path and whether the file existed.
func LoadOptions(path string) (*Options, string, bool, error) {
	opts := Default()

	resolvedPath, exists, err := resolveOptionsPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open options: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&opts); err != nil {
			return nil, "", false, fmt.Errorf("parse options: %w", err)
		}
	}

	if err := opts.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := opts.Validate(); err != nil {
		return nil, "", false, err
	}

	return &opts, resolvedPath, exists, nil
}

func resolveOptionsPath(path string) (string, bool, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultOptionsPath()
	}
	expanded, err := ExpandPath(path)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat options: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("options path %s is a directory", expanded)
	}
	return expanded, true, nil
}

// Encode renders the options as TOML.
func (o *Options) Encode() (string, error) {
	data, err := toml.Marshal(o)
	if err != nil {
		return "", fmt.Errorf("encode options: %w", err)
	}
	return string(data), nil
}

// CreateSampleOptions writes a sample runtime options file to the specified location.
func CreateSampleOptions(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create options directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleOptions), 0o644); err != nil {
		return fmt.Errorf("write sample options: %w", err)
	}
	return nil
}
