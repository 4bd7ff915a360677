package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"wezback/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Settings utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))
	configCmd.AddCommand(newConfigValidateCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool
	var withOptions bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample settings file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultSettingsPath()
				if err != nil {
					return fmt.Errorf("determine default settings path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve settings path: %w", err)
				}
				target = expanded
			}

			if err := ensureWritableTarget(target, overwrite); err != nil {
				return err
			}
			if err := config.WriteSampleSettings(target); err != nil {
				return fmt.Errorf("create sample settings: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample settings to %s\n", target)

			if withOptions {
				optionsPath := config.DefaultOptionsPath()
				if err := ensureWritableTarget(optionsPath, overwrite); err != nil {
					return err
				}
				if err := config.CreateSampleOptions(optionsPath); err != nil {
					return fmt.Errorf("create sample options: %w", err)
				}
				fmt.Fprintf(out, "Wrote sample options to %s\n", optionsPath)
			}
			fmt.Fprintln(out, "Edit the images, wezlua, and animations paths before running wezback.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the settings file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing files if present")
	cmd.Flags().BoolVar(&withOptions, "with-options", false, "Also write a sample runtime options file")
	return cmd
}

func ensureWritableTarget(target string, overwrite bool) error {
	if overwrite {
		return nil
	}
	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("file already exists at %s (use --overwrite to replace it)", target)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("check path: %w", err)
	}
	return nil
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved settings and runtime options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			mode, err := ctx.mode()
			if err != nil {
				return err
			}
			encoded, err := ctx.options.Encode()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rows := [][]string{
				{config.KeyImages, settings.ImagesDir},
				{config.KeyWezLua, settings.ConfigFile},
				{config.KeyAnimations, settings.AnimationsDir},
				{"mode", mode.String()},
			}
			fmt.Fprintln(out, renderTable([]string{"Setting", "Value"}, rows, nil))
			fmt.Fprintf(out, "\n# %s\n%s", ctx.optionsPath, encoded)
			return nil
		},
	}
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Validate the settings and runtime options files",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, path, exists, err := config.LoadOptions(strings.TrimSpace(ctx.flags.options))
			if err != nil {
				return fmt.Errorf("load options: %w", err)
			}
			if _, err := config.LoadSettings(ctx.settingsPath()); err != nil {
				return fmt.Errorf("load settings: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Options path: %s\n", path)
			if !exists {
				fmt.Fprintln(out, "Options file did not exist; defaults were used")
			}
			fmt.Fprintf(out, "Atomic writes: %s\n", yesNo(opts.Rotation.AtomicWrite))
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func newFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "format",
		Short:       "Describe the settings file format",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.FormatHelp)
			return nil
		},
	}
}
