package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"dupefinder/internal/config"
	"dupefinder/internal/dedupe"
	"dupefinder/internal/report"
	"dupefinder/internal/scanstore"
)

func newGroupsCommand(ctx *commandContext) *cobra.Command {
	var (
		scanID     string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List duplicate groups from a saved scan",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *scanstore.Store) error {
				scan, err := resolveScan(cmd, store, scanID)
				if err != nil {
					return err
				}
				groups, err := store.Groups(cmd.Context(), scan.ID)
				if err != nil {
					return err
				}

				if jsonOutput {
					return writeJSON(cmd, groups)
				}

				out := cmd.OutOrStdout()
				if len(groups) == 0 {
					fmt.Fprintf(out, "Scan %s found no duplicates\n", scan.ID)
					return nil
				}
				renderGroups(out, groups)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&scanID, "scan-id", "", "Scan to list (defaults to the latest)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit groups as JSON")

	return cmd
}

func renderGroups(out io.Writer, groups []dedupe.Group) {
	if useTable(out) {
		rows := make([][]string, 0, len(groups))
		for i, group := range groups {
			anchor := group.Anchor()
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				report.DisplayTitle(anchor.Title),
				yearCell(anchor.Year),
				strconv.Itoa(len(group)),
				dedupe.FormatSize(group.DuplicateBytes()),
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"#", "Title", "Year", "Files", "Wasted"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight},
		))
		return
	}

	for i, group := range groups {
		anchor := group.Anchor()
		fmt.Fprintf(out, "%d. %s (%s), %d files, %s wasted\n",
			i+1, report.DisplayTitle(anchor.Title), yearCell(anchor.Year),
			len(group), dedupe.FormatSize(group.DuplicateBytes()))
		for _, rec := range group {
			fmt.Fprintf(out, "   %s (%s)\n", rec.Path, dedupe.FormatSize(rec.SizeBytes))
		}
	}
}

func yearCell(year int) string {
	if year <= 0 {
		return "?"
	}
	return strconv.Itoa(year)
}

func useTable(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
