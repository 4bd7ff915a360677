package logging_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"wezback/internal/logging"
	"wezback/internal/testsupport"
)

func TestCleanupOldLogs(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "wezback-old.log")
	current := filepath.Join(dir, "wezback-current.log")
	fresh := filepath.Join(dir, "wezback-fresh.log")
	other := filepath.Join(dir, "notes.txt")
	for _, path := range []string{old, current, fresh, other} {
		testsupport.WriteFile(t, path, "x")
	}
	past := time.Now().AddDate(0, 0, -30)
	for _, path := range []string{old, current, other} {
		if err := os.Chtimes(path, past, past); err != nil {
			t.Fatalf("chtimes: %v", err)
		}
	}

	removed := logging.CleanupOldLogs(logging.NewNop(), dir, "wezback-*.log", 14, current)
	if removed != 1 {
		t.Fatalf("expected one pruned file, got %d", removed)
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Fatal("expected old log to be removed")
	}
	for _, path := range []string{current, fresh, other} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s to remain: %v", path, err)
		}
	}
}

func TestCleanupOldLogsDisabled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wezback-old.log")
	testsupport.WriteFile(t, path, "x")
	past := time.Now().AddDate(-1, 0, 0)
	if err := os.Chtimes(path, past, past); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	if removed := logging.CleanupOldLogs(nil, dir, "wezback-*.log", 0, ""); removed != 0 {
		t.Fatalf("retention 0 must not prune, removed %d", removed)
	}
}
