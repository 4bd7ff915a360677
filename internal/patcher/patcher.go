package patcher

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"wezback/internal/failure"
	"wezback/internal/fileutil"
)

// Prefix marks the wallpaper assignment line.
const Prefix = "local image_path"

// Result describes one patch application.
type Result struct {
	Path     string
	Line     string
	Matched  int
	Replaced int
}

// Patcher writes patched Lua files.
type Patcher struct {
	// Atomic writes through a temp file in the target directory and renames
	// it over the original.
	Atomic bool
}

// ReplacementLine returns the assignment embedding image.
func ReplacementLine(image string) string {
	return fmt.Sprintf("%s = home .. '/%s'", Prefix, image)
}

// Apply rewrites every assignment line of text to point at image.
func Apply(text, image string) (string, Result) {
	line := ReplacementLine(image)
	result := Result{Line: line}

	lines := splitLines(text)
	for i, current := range lines {
		if !strings.HasPrefix(strings.TrimLeftFunc(current, unicode.IsSpace), Prefix) {
			continue
		}
		result.Matched++
		if current != line {
			lines[i] = line
			result.Replaced++
		}
	}
	return strings.Join(lines, "\n"), result
}

// Patch reads configPath, applies image and writes the result back.
func (p Patcher) Patch(configPath, image string) (Result, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return Result{}, failure.Wrap(failure.ErrConfigRead, "patcher", "read", configPath, err)
	}
	updated, result := Apply(string(data), image)
	result.Path = configPath

	mode := fileutil.FileMode(configPath, 0o644)
	if p.Atomic {
		err = fileutil.WriteFileAtomic(configPath, []byte(updated), mode)
	} else {
		err = os.WriteFile(configPath, []byte(updated), mode)
	}
	if err != nil {
		return result, failure.Wrap(failure.ErrWrite, "patcher", "write", configPath, err)
	}
	return result, nil
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	terminated := lines[len(lines)-1] == ""
	if terminated {
		lines = lines[:len(lines)-1]
	}
	// A "\r" only belongs to the terminator when a "\n" follows it.
	for i, line := range lines {
		if i < len(lines)-1 || terminated {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
	}
	return lines
}
