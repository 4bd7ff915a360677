package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"wezback/internal/catalog"
	"wezback/internal/daemonrun"
	"wezback/internal/logging"
)

func newOnceCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "once",
		Short: "Rotate the wallpaper once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd, ctx)
		},
	}
}

func newPromptCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Rotate each time Enter is pressed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, ctx)
		},
	}
}

func newDaemonCommand(ctx *commandContext) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Rotate on a timer until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := ctx.engine(cmd)
			if err != nil {
				return err
			}
			return daemonrun.Run(runContext(cmd), ctx.options, engine, daemonrun.Options{
				LogLevel: ctx.flags.logLevel,
				Interval: interval,
				Console:  engine.Logger,
			})
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 0, "Time between rotations (default rotation.interval_seconds)")
	return cmd
}

func runOnce(cmd *cobra.Command, ctx *commandContext) error {
	engine, err := ctx.engine(cmd)
	if err != nil {
		return err
	}
	_, err = engine.RunOnce(runContext(cmd))
	return err
}

func runPrompt(cmd *cobra.Command, ctx *commandContext) error {
	engine, err := ctx.engine(cmd)
	if err != nil {
		return err
	}

	signalCtx, cancel := signal.NotifyContext(runContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if engine.Mode == catalog.ModeStatic {
		if err := engine.PinCatalog(signalCtx); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	return engine.RunPrompt(signalCtx, cmd.InOrStdin(), out, screenClearer(out, ctx.options.Rotation.ClearScreen))
}

// runContext tags the command context with a fresh run id.
func runContext(cmd *cobra.Command) context.Context {
	base := cmd.Context()
	if base == nil {
		base = context.Background()
	}
	return logging.WithRunID(base, logging.NewRunID())
}
