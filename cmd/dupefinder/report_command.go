package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"dupefinder/internal/config"
	"dupefinder/internal/report"
	"dupefinder/internal/scanstore"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var (
		scanID     string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a plain-text report for a saved scan",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *scanstore.Store) error {
				scan, err := resolveScan(cmd, store, scanID)
				if err != nil {
					return err
				}
				groups, err := store.Groups(cmd.Context(), scan.ID)
				if err != nil {
					return err
				}
				if len(groups) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Scan %s found no duplicates; nothing to report\n", scan.ID)
					return nil
				}

				target := strings.TrimSpace(outputPath)
				if target == "" {
					target = filepath.Join(cfg.Paths.ReportDir, report.DefaultFileName(scan.Root))
				} else if target, err = config.ExpandPath(target); err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}

				if err := report.Write(target, scan.Root, scan.CreatedAt, groups); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", target)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&scanID, "scan-id", "", "Scan to report on (defaults to the latest)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report file destination")

	return cmd
}
