package config

import (
	"fmt"
	"time"

	"wezback/internal/failure"
)

var validModes = map[string]struct{}{
	"static":     {},
	"all":        {},
	"animations": {},
}

// Validate ensures the options are usable.
func (o *Options) Validate() error {
	if _, ok := validModes[o.Rotation.Mode]; !ok {
		return failure.Wrap(failure.ErrInvalidOption, "options", "rotation.mode", fmt.Sprintf("unsupported value %q (want static, all or animations)", o.Rotation.Mode), nil)
	}
	if o.Rotation.IntervalSeconds < 0 {
		return failure.Wrap(failure.ErrInvalidOption, "options", "rotation.interval_seconds", "must be positive", nil)
	}
	switch o.Logging.Format {
	case "console", "json":
	default:
		return failure.Wrap(failure.ErrInvalidOption, "options", "logging.format", fmt.Sprintf("unsupported value %q", o.Logging.Format), nil)
	}
	switch o.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return failure.Wrap(failure.ErrInvalidOption, "options", "logging.level", fmt.Sprintf("unsupported value %q", o.Logging.Level), nil)
	}
	return nil
}

// Interval returns the daemon rotation interval.
func (o *Options) Interval() time.Duration {
	return time.Duration(o.Rotation.IntervalSeconds) * time.Second
}
