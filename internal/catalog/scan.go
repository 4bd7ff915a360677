package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"wezback/internal/config"
	"wezback/internal/failure"
)

// Scan lists the allow-listed files directly inside dir and returns their
// home-relative, slash-separated paths in directory order. Entries that do
// not live under the home directory are skipped.
func Scan(dir string) ([]string, error) {
	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return nil, err
	}
	root, err := canonicalize(expanded)
	if err != nil {
		return nil, failure.Wrap(failure.ErrPathResolution, "catalog", "canonicalize", expanded, err)
	}
	home, err := config.HomeDir()
	if err != nil {
		return nil, err
	}
	if resolved, err := filepath.EvalSymlinks(home); err == nil {
		home = resolved
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, failure.Wrap(failure.ErrPathResolution, "catalog", "read dir", root, err)
	}

	images := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext, ok := extension(entry.Name())
		if !ok || !Allowed(ext) {
			continue
		}
		rel, ok := relativeTo(home, filepath.Join(root, entry.Name()))
		if !ok {
			continue
		}
		images = append(images, rel)
	}
	return images, nil
}

func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", &os.PathError{Op: "scan", Path: resolved, Err: os.ErrInvalid}
	}
	return resolved, nil
}

func relativeTo(home, path string) (string, bool) {
	rel, err := filepath.Rel(home, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
