package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// NewHome points HOME and the XDG base directories at a fresh temp directory
// and returns its symlink-resolved path.
func NewHome(t testing.TB) string {
	t.Helper()

	home := t.TempDir()
	if resolved, err := filepath.EvalSymlinks(home); err == nil {
		home = resolved
	}
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))
	if err := os.MkdirAll(filepath.Join(home, ".config"), 0o755); err != nil {
		t.Fatalf("mkdir config home: %v", err)
	}
	return home
}
