package daemonrun

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"wezback/internal/config"
	"wezback/internal/logging"
	"wezback/internal/rotation"
)

// Options configures timed rotation runtime behavior.
type Options struct {
	LogLevel string
	// Interval overrides rotation.interval_seconds when positive.
	Interval time.Duration
	// Console receives the non-file log stream; nil means stderr.
	Console *slog.Logger
}

// Run rotates on a timer until the context is cancelled or the process
// receives SIGINT or SIGTERM. Each run writes a JSON log file under the
// configured log directory and prunes run logs past the retention window.
func Run(cmdCtx context.Context, cfg *config.Options, engine *rotation.Engine, opts Options) error {
	if cfg == nil {
		return fmt.Errorf("options are required")
	}
	if engine == nil {
		return fmt.Errorf("rotation engine is required")
	}

	signalCtx, cancel := signal.NotifyContext(cmdCtx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := opts.Console
	if logger == nil {
		var err error
		logger, err = logging.NewFromConfig(cfg, opts.LogLevel)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
	}

	logDir := cfg.Logging.Dir
	runStamp := time.Now().UTC().Format("20060102T150405.000Z")
	logPath := filepath.Join(logDir, fmt.Sprintf("wezback-%s.log", runStamp))
	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	fileLogger, err := logging.New(logging.Options{
		Level:       level,
		Format:      "json",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		return fmt.Errorf("init run log: %w", err)
	}
	logger = logging.TeeLogger(logger, fileLogger.Handler())

	if err := ensureCurrentLogPointer(logDir, logPath); err != nil {
		fmt.Fprintf(os.Stderr, "warn: unable to update wezback.log link: %v\n", err)
	}
	logging.CleanupOldLogs(logger, logDir, "wezback-*.log", cfg.Logging.RetentionDays, logPath)

	pidPath := PIDPath(logDir)
	if err := writePIDFile(pidPath); err != nil {
		return fmt.Errorf("write pid file: %w", err)
	}
	defer os.Remove(pidPath)

	interval := opts.Interval
	if interval <= 0 {
		interval = cfg.Interval()
	}

	runCtx := signalCtx
	if _, ok := logging.RunIDFromContext(runCtx); !ok {
		runCtx = logging.WithRunID(runCtx, logging.NewRunID())
	}
	engine.Logger = logger
	logging.WithContext(runCtx, logger).Info("wezback daemon starting",
		logging.String(logging.FieldEventType, "daemon_start"),
		logging.String("log_path", logPath),
		logging.String("config", engine.Settings.ConfigFile),
		logging.Bool("atomic_write", engine.Patcher.Atomic),
	)

	if err := engine.RunInterval(runCtx, interval); err != nil {
		return err
	}
	logging.WithContext(runCtx, logger).Info("wezback daemon shutting down")
	return nil
}

func ensureCurrentLogPointer(logDir, target string) error {
	if logDir == "" || target == "" {
		return nil
	}
	current := filepath.Join(logDir, "wezback.log")
	if err := os.Remove(current); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove existing log pointer: %w", err)
	}
	if err := os.Symlink(target, current); err == nil {
		return nil
	}
	if err := os.Link(target, current); err != nil {
		return fmt.Errorf("link log pointer: %w", err)
	}
	return nil
}

// PIDFileName is the daemon pid file written inside the log directory.
const PIDFileName = "wezback.pid"

// PIDPath returns the pid file location for logDir.
func PIDPath(logDir string) string {
	return filepath.Join(logDir, PIDFileName)
}

// ReadPID returns the pid recorded by a running daemon. It reports false when
// no pid file exists.
func ReadPID(logDir string) (int, bool, error) {
	data, err := os.ReadFile(PIDPath(logDir))
	if os.IsNotExist(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read pid file: %w", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false, fmt.Errorf("parse pid file %s: invalid pid %q", PIDPath(logDir), strings.TrimSpace(string(data)))
	}
	return pid, true, nil
}

func writePIDFile(path string) error {
	if path == "" {
		return nil
	}
	value := strconv.Itoa(os.Getpid()) + "\n"
	return os.WriteFile(path, []byte(value), 0o644)
}
