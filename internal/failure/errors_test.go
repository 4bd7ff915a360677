package failure_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"wezback/internal/failure"
)

func TestWrapKeepsMarkerAndCause(t *testing.T) {
	err := failure.Wrap(failure.ErrPathResolution, "catalog", "canonicalize", "/missing", fs.ErrNotExist)
	if !errors.Is(err, failure.ErrPathResolution) {
		t.Fatalf("expected marker in chain: %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected cause in chain: %v", err)
	}
	if !strings.Contains(err.Error(), "catalog: canonicalize: /missing") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := failure.Wrap(failure.ErrEmptyCatalog, "rotation", "", "", nil)
	if err.Error() != "empty catalog: rotation" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestMissingKeyError(t *testing.T) {
	var err error = &failure.MissingKeyError{Key: "wezlua"}
	if !errors.Is(err, failure.ErrMissingConfigKey) {
		t.Fatal("expected MissingKeyError to match ErrMissingConfigKey")
	}
	if !strings.Contains(err.Error(), "'wezlua'") {
		t.Fatalf("expected key in message, got %q", err.Error())
	}
	var missing *failure.MissingKeyError
	if !errors.As(err, &missing) || missing.Key != "wezlua" {
		t.Fatalf("errors.As failed: %#v", missing)
	}
}

func TestKind(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&failure.MissingKeyError{Key: "images"}, "missing_config_key"},
		{failure.Wrap(failure.ErrConfigRead, "settings", "read", "", errors.New("boom")), "config_read"},
		{failure.Wrap(failure.ErrPathResolution, "", "", "", nil), "path_resolution"},
		{failure.Wrap(failure.ErrEmptyCatalog, "", "", "", nil), "empty_catalog"},
		{failure.Wrap(failure.ErrWrite, "", "", "", nil), "write"},
		{failure.Wrap(failure.ErrInvalidOption, "", "", "", nil), "invalid_option"},
		{errors.New("other"), "unknown"},
	}
	for _, tc := range cases {
		if got := failure.Kind(tc.err); got != tc.want {
			t.Errorf("Kind(%v) = %q want %q", tc.err, got, tc.want)
		}
	}
}
