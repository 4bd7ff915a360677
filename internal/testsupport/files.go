package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// TouchFiles creates empty files with the given names inside dir.
func TouchFiles(t testing.TB, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		WriteFile(t, filepath.Join(dir, name), "")
	}
}

// ReadFile returns the content of path.
func ReadFile(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// WriteSettings writes a settings file with the three required keys. Empty
// values are omitted so tests can exercise missing keys.
func WriteSettings(t testing.TB, path, images, wezlua, animations string) {
	t.Helper()

	var b strings.Builder
	b.WriteString("# generated by test\n")
	for _, pair := range [][2]string{{"images", images}, {"wezlua", wezlua}, {"animations", animations}} {
		if pair[1] == "" {
			continue
		}
		fmt.Fprintf(&b, "%s = %q\n", pair[0], pair[1])
	}
	WriteFile(t, path, b.String())
}

// WriteLua writes a wezterm-style Lua file joined with newlines and a trailing newline.
func WriteLua(t testing.TB, path string, lines ...string) {
	t.Helper()

	WriteFile(t, path, strings.Join(lines, "\n")+"\n")
}
