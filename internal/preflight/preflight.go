package preflight

import (
	"wezback/internal/catalog"
	"wezback/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every check that applies to the given settings path, mode,
// and runtime options. Path checks are skipped when the settings do not load.
func RunAll(settingsPath string, mode catalog.Mode, opts *config.Options) []Result {
	settings, result := CheckSettings("Settings file", settingsPath)
	results := []Result{result}
	if !result.Passed {
		return results
	}

	if mode != catalog.ModeAnimations {
		results = append(results, CheckDirectoryAccess("Images directory", settings.ImagesDir))
	}
	if mode != catalog.ModeStatic {
		results = append(results, CheckDirectoryAccess("Animations directory", settings.AnimationsDir))
	}
	results = append(results, CheckConfigFile("WezTerm config", settings.ConfigFile))

	if opts != nil && opts.Logging.Dir != "" {
		results = append(results, CheckWritableDirectory("Log directory", opts.Logging.Dir))
		results = append(results, CheckDaemon("Daemon", opts.Logging.Dir))
	}
	return results
}

// Passed reports whether every result passed.
func Passed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
