package config

const (
	defaultMode             = "static"
	defaultIntervalSeconds  = 600
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 14
)

// Default returns Options populated with repository defaults.
func Default() Options {
	return Options{
		Rotation: Rotation{
			Mode:            defaultMode,
			IntervalSeconds: defaultIntervalSeconds,
			ClearScreen:     true,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
