package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"dupefinder/internal/config"
	"dupefinder/internal/dedupe"
	"dupefinder/internal/scanstore"
)

func newScansCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scans",
		Short: "List saved scans",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *scanstore.Store) error {
				scans, err := store.ListScans(cmd.Context())
				if err != nil {
					return err
				}

				if jsonOutput {
					return writeJSON(cmd, scans)
				}

				out := cmd.OutOrStdout()
				if len(scans) == 0 {
					fmt.Fprintln(out, "No scans recorded")
					return nil
				}

				rows := make([][]string, 0, len(scans))
				for _, scan := range scans {
					rows = append(rows, []string{
						scan.ID,
						scan.CreatedAt.Local().Format("2006-01-02 15:04"),
						scan.Root,
						strconv.Itoa(scan.Stats.TotalFiles),
						strconv.Itoa(scan.Stats.GroupCount),
						dedupe.FormatSize(scan.Stats.DuplicateSpaceBytes),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Date", "Root", "Files", "Groups", "Wasted"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit scans as JSON")
	cmd.AddCommand(newScansClearCommand(ctx))

	return cmd
}

func newScansClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all saved scans",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *scanstore.Store) error {
				if err := store.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Cleared all saved scans")
				return nil
			})
		},
	}
}
