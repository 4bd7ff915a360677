package config

import (
	"fmt"
	"strings"
)

func (o *Options) normalize() error {
	o.normalizeRotation()
	return o.normalizeLogging()
}

func (o *Options) normalizeRotation() {
	o.Rotation.Mode = strings.ToLower(strings.TrimSpace(o.Rotation.Mode))
	if o.Rotation.Mode == "" {
		o.Rotation.Mode = defaultMode
	}
	if o.Rotation.IntervalSeconds == 0 {
		o.Rotation.IntervalSeconds = defaultIntervalSeconds
	}
}

func (o *Options) normalizeLogging() error {
	o.Logging.Format = strings.ToLower(strings.TrimSpace(o.Logging.Format))
	if o.Logging.Format == "" {
		o.Logging.Format = defaultLogFormat
	}
	o.Logging.Level = strings.ToLower(strings.TrimSpace(o.Logging.Level))
	if o.Logging.Level == "" {
		o.Logging.Level = defaultLogLevel
	}
	if o.Logging.RetentionDays < 0 {
		o.Logging.RetentionDays = 0
	}
	if strings.TrimSpace(o.Logging.Dir) == "" {
		o.Logging.Dir = defaultLogDir()
	}
	var err error
	if o.Logging.Dir, err = ExpandPath(strings.TrimSpace(o.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
