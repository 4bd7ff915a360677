package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"wezback/internal/catalog"
	"wezback/internal/config"
	"wezback/internal/logging"
	"wezback/internal/patcher"
	"wezback/internal/rotation"
	"wezback/internal/selection"
)

type globalFlags struct {
	settings string
	options  string
	logLevel string
	all      bool
	noStatic bool
}

type commandContext struct {
	flags *globalFlags

	optionsOnce sync.Once
	options     *config.Options
	optionsPath string
	optionsErr  error

	configOnce sync.Once
	settings   config.Settings
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureOptions loads the runtime options file once per invocation.
func (c *commandContext) ensureOptions() (*config.Options, error) {
	c.optionsOnce.Do(func() {
		opts, path, _, err := config.LoadOptions(strings.TrimSpace(c.flags.options))
		if err != nil {
			c.optionsErr = err
			return
		}
		c.options = opts
		c.optionsPath = path
	})
	return c.options, c.optionsErr
}

// ensureConfig loads the runtime options and then the settings file.
func (c *commandContext) ensureConfig() (config.Settings, error) {
	c.configOnce.Do(func() {
		if _, err := c.ensureOptions(); err != nil {
			c.configErr = err
			return
		}
		settings, err := config.LoadSettings(c.settingsPath())
		if err != nil {
			c.configErr = err
			return
		}
		c.settings = settings
	})
	return c.settings, c.configErr
}

func (c *commandContext) settingsPath() string {
	return strings.TrimSpace(c.flags.settings)
}

// mode applies the --all and --no-static toggles on top of rotation.mode.
func (c *commandContext) mode() (catalog.Mode, error) {
	fallback := catalog.ModeStatic
	if c.options != nil {
		parsed, err := catalog.ParseMode(c.options.Rotation.Mode)
		if err != nil {
			return fallback, err
		}
		fallback = parsed
	}
	return catalog.ModeFromFlags(c.flags.all, c.flags.noStatic, fallback), nil
}

func (c *commandContext) logger() (*slog.Logger, error) {
	opts, err := c.ensureOptions()
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(opts, c.flags.logLevel)
}

// engine wires a rotation engine for cmd's output streams.
func (c *commandContext) engine(cmd *cobra.Command) (*rotation.Engine, error) {
	settings, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	mode, err := c.mode()
	if err != nil {
		return nil, err
	}
	logger, err := c.logger()
	if err != nil {
		return nil, err
	}
	return &rotation.Engine{
		Settings: settings,
		Mode:     mode,
		Chooser:  selection.New(),
		Patcher:  patcher.Patcher{Atomic: c.options.Rotation.AtomicWrite},
		Logger:   logger,
		Out:      cmd.OutOrStdout(),
		ErrOut:   cmd.ErrOrStderr(),
	}, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
