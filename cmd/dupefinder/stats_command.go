package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"dupefinder/internal/config"
	"dupefinder/internal/dedupe"
	"dupefinder/internal/scanstore"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var (
		scanID     string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show summary statistics for a saved scan",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *scanstore.Store) error {
				scan, err := resolveScan(cmd, store, scanID)
				if err != nil {
					return err
				}

				if jsonOutput {
					return writeJSON(cmd, statsView{
						ScanID:    scan.ID,
						Root:      scan.Root,
						CreatedAt: scan.CreatedAt,
						Stats:     scan.Stats,
					})
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Scan ID:           %s\n", scan.ID)
				fmt.Fprintf(out, "Date:              %s\n", scan.CreatedAt.Local().Format("2006-01-02 15:04:05"))
				fmt.Fprintf(out, "Scanned folder:    %s\n", scan.Root)
				fmt.Fprintf(out, "Total files:       %d\n", scan.Stats.TotalFiles)
				fmt.Fprintf(out, "Duplicate files:   %d\n", scan.Stats.TotalDuplicates)
				fmt.Fprintf(out, "Duplicate groups:  %d\n", scan.Stats.GroupCount)
				fmt.Fprintf(out, "Reclaimable space: %s\n", dedupe.FormatSize(scan.Stats.DuplicateSpaceBytes))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&scanID, "scan-id", "", "Scan to summarize (defaults to the latest)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit statistics as JSON")

	return cmd
}

type statsView struct {
	ScanID    string       `json:"scan_id"`
	Root      string       `json:"root"`
	CreatedAt time.Time    `json:"created_at"`
	Stats     dedupe.Stats `json:"stats"`
}
