package catalog

import (
	"fmt"
	"strings"

	"wezback/internal/config"
	"wezback/internal/failure"
)

// Mode selects which catalogs feed the candidate pool.
type Mode int

const (
	// ModeStatic uses the images directory only.
	ModeStatic Mode = iota
	// ModeAll concatenates images and animations.
	ModeAll
	// ModeAnimations uses the animations directory only.
	ModeAnimations
)

func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeAnimations:
		return "animations"
	default:
		return "static"
	}
}

// ParseMode converts an options value into a Mode.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "static":
		return ModeStatic, nil
	case "all":
		return ModeAll, nil
	case "animations", "no-static":
		return ModeAnimations, nil
	default:
		return ModeStatic, failure.Wrap(failure.ErrInvalidOption, "catalog", "mode", fmt.Sprintf("unsupported value %q", value), nil)
	}
}

// ModeFromFlags maps the --all and --no-static toggles onto a Mode, falling
// back to the configured mode when neither is set.
func ModeFromFlags(all, noStatic bool, fallback Mode) Mode {
	switch {
	case noStatic:
		return ModeAnimations
	case all:
		return ModeAll
	default:
		return fallback
	}
}

// Category labels a candidate's origin.
type Category string

const (
	CategoryImage     Category = "image"
	CategoryAnimation Category = "animation"
)

// Entry is a pooled candidate together with its origin.
type Entry struct {
	Path     string
	Category Category
}

// BuildEntries scans the directories mode needs and returns the pooled
// candidates, images first.
func BuildEntries(settings config.Settings, mode Mode) ([]Entry, error) {
	var entries []Entry
	if mode == ModeStatic || mode == ModeAll {
		images, err := Scan(settings.ImagesDir)
		if err != nil {
			return nil, err
		}
		for _, path := range images {
			entries = append(entries, Entry{Path: path, Category: CategoryImage})
		}
	}
	if mode == ModeAnimations || mode == ModeAll {
		animations, err := Scan(settings.AnimationsDir)
		if err != nil {
			return nil, err
		}
		for _, path := range animations {
			entries = append(entries, Entry{Path: path, Category: CategoryAnimation})
		}
	}
	return entries, nil
}

// Build returns the pooled candidate paths for mode.
func Build(settings config.Settings, mode Mode) ([]string, error) {
	entries, err := BuildEntries(settings, mode)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(entries))
	for i, entry := range entries {
		paths[i] = entry.Path
	}
	return paths, nil
}
