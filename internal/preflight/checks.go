package preflight

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"wezback/internal/config"
	"wezback/internal/daemonrun"
	"wezback/internal/failure"
	"wezback/internal/patcher"
)

// CheckDirectoryAccess verifies that the directory exists and can be listed.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read ok)", path)}
}

// CheckWritableDirectory verifies that the directory exists and accepts new files.
// A missing directory passes when its parent is writable, since it is created on demand.
func CheckWritableDirectory(name, path string) Result {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (created on first use)", path)}
	}
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckConfigFile verifies that the wezterm config exists, is writable, and
// carries at least one line the patcher will replace.
func CheckConfigFile(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: read: %v)", path, err)}
	}
	_, res := patcher.Apply(string(content), "")
	switch res.Matched {
	case 0:
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: no %q line)", path, patcher.Prefix)}
	case 1:
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (writable, 1 image_path line)", path)}
	default:
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (writable, %d image_path lines)", path, res.Matched)}
	}
}

// CheckSettings verifies that the settings file loads with every required key.
func CheckSettings(name, path string) (config.Settings, Result) {
	settings, err := config.LoadSettings(path)
	if err != nil {
		var missing *failure.MissingKeyError
		if errors.As(err, &missing) {
			return config.Settings{}, Result{Name: name, Detail: fmt.Sprintf("missing '%s' key", missing.Key)}
		}
		return config.Settings{}, Result{Name: name, Detail: err.Error()}
	}
	return settings, Result{Name: name, Passed: true, Detail: "all keys present"}
}

// CheckDaemon reports whether a "wezback daemon" recorded in logDir is alive.
// A pid file whose process is gone fails the check.
func CheckDaemon(name, logDir string) Result {
	pid, found, err := daemonrun.ReadPID(logDir)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	if !found {
		return Result{Name: name, Passed: true, Detail: "not running"}
	}
	if err := unix.Kill(pid, 0); err != nil && !errors.Is(err, unix.EPERM) {
		return Result{Name: name, Detail: fmt.Sprintf("stale pid file %s (pid %d not running)", daemonrun.PIDPath(logDir), pid)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("running (pid %d)", pid)}
}
