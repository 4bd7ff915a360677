package main

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"wezback/internal/preflight"
)

var errChecksFailed = errors.New("one or more checks failed")

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "doctor",
		Short:       "Check settings, directories, and the wezterm config",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := ctx.ensureOptions()
			if err != nil {
				return err
			}
			mode, err := ctx.mode()
			if err != nil {
				return err
			}

			results := preflight.RunAll(ctx.settingsPath(), mode, opts)
			out := cmd.OutOrStdout()
			colorize := isTerminal(out)
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{r.Name, statusLabel(r.Passed, colorize), r.Detail})
			}
			fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, rows, nil))
			fmt.Fprintf(out, "Mode: %s\n", mode)
			if !preflight.Passed(results) {
				return errChecksFailed
			}
			fmt.Fprintln(out, "All checks passed")
			return nil
		},
	}
}

func statusLabel(passed, colorize bool) string {
	label, color := "ok", text.FgGreen
	if !passed {
		label, color = "FAIL", text.FgRed
	}
	if !colorize {
		return label
	}
	return color.Sprint(label)
}
