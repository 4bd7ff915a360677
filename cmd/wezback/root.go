package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var flags globalFlags
	var once bool

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:           "wezback",
		Short:         "Rotate the wezterm background image",
		Long:          "wezback picks a random wallpaper from the configured directories and rewrites the\n\"local image_path\" line of the wezterm config to point at it.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if once {
				return runOnce(cmd, ctx)
			}
			return runPrompt(cmd, ctx)
		},
	}

	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&flags.settings, "settings", "", "Settings file path (default ~/.config/wezback)")
	persistent.StringVar(&flags.options, "options", "", "Runtime options file path (default $XDG_CONFIG_HOME/wezback.toml)")
	persistent.StringVar(&flags.logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")
	persistent.BoolVar(&flags.all, "all", false, "Pick from images and animations")
	persistent.BoolVar(&flags.noStatic, "no-static", false, "Pick from animations only")
	rootCmd.MarkFlagsMutuallyExclusive("all", "no-static")

	rootCmd.Flags().BoolVarP(&once, "once", "o", false, "Rotate once and exit")

	rootCmd.AddCommand(newOnceCommand(ctx))
	rootCmd.AddCommand(newPromptCommand(ctx))
	rootCmd.AddCommand(newDaemonCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newFormatCommand())

	return rootCmd
}
