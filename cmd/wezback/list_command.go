package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"wezback/internal/catalog"
)

type listEntry struct {
	Index    int    `json:"index" yaml:"index"`
	Category string `json:"category" yaml:"category"`
	Path     string `json:"path" yaml:"path"`
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the wallpapers the current mode picks from",
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
			entries, err := catalog.BuildEntries(settings, mode)
			if err != nil {
				return err
			}

			listed := make([]listEntry, 0, len(entries))
			for i, entry := range entries {
				listed = append(listed, listEntry{Index: i + 1, Category: string(entry.Category), Path: entry.Path})
			}
			switch {
			case asJSON:
				return writeJSON(cmd, listed)
			case asYAML:
				return writeYAML(cmd, listed)
			}

			out := cmd.OutOrStdout()
			if len(listed) == 0 {
				fmt.Fprintf(out, "No wallpapers found (mode %s)\n", mode)
				return nil
			}
			title := cases.Title(language.English)
			rows := make([][]string, 0, len(listed))
			for _, entry := range listed {
				rows = append(rows, []string{strconv.Itoa(entry.Index), title.String(entry.Category), entry.Path})
			}
			fmt.Fprintln(out, renderTable([]string{"#", "Category", "Path"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft}))
			fmt.Fprintf(out, "%d candidates (mode %s)\n", len(listed), mode)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Output as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")
	return cmd
}
