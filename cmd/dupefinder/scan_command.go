package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dupefinder/internal/config"
	"dupefinder/internal/dedupe"
	"dupefinder/internal/scanner"
	"dupefinder/internal/scanstore"
	"dupefinder/internal/textutil"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var (
		threshold      float64
		algorithm      string
		durationFilter bool
		probeFlag      bool
		jsonOutput     bool
	)

	cmd := &cobra.Command{
		Use:   "scan [root]",
		Short: "Scan a folder for duplicate movies",
		Long: "Scan walks the given folder (or paths.scan_root from the configuration),\n" +
			"parses movie titles from filenames, groups likely duplicates, and saves\n" +
			"the results for later inspection with groups, stats, and report.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			root := cfg.Paths.ScanRoot
			if len(args) > 0 {
				root = strings.TrimSpace(args[0])
			}
			if root == "" {
				return errors.New("no folder given and paths.scan_root is not configured")
			}

			match := cfg.MatchConfig()
			if cmd.Flags().Changed("threshold") {
				if threshold < 0 || threshold > 1 {
					return fmt.Errorf("threshold must be between 0 and 1, got %g", threshold)
				}
				match.SimilarityThreshold = threshold
			}
			if cmd.Flags().Changed("algorithm") {
				alg := textutil.Algorithm(strings.ToLower(strings.TrimSpace(algorithm)))
				if !alg.Valid() {
					return fmt.Errorf("unsupported algorithm %q", algorithm)
				}
				match.Algorithm = alg
			}
			if cmd.Flags().Changed("duration-filter") {
				match.DurationFilterEnabled = durationFilter
			}

			opts := cfg.ScannerOptions()
			if cmd.Flags().Changed("probe-durations") {
				opts.ProbeDurations = probeFlag
			}

			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			records, err := scanner.New(opts, logger).Scan(cmd.Context(), root)
			if err != nil {
				return err
			}
			groups := dedupe.GroupDuplicates(records, match)

			var saved *scanstore.Scan
			err = ctx.withStore(func(_ *config.Config, store *scanstore.Store) error {
				var saveErr error
				saved, saveErr = store.SaveScan(cmd.Context(), root, records, groups)
				return saveErr
			})
			if err != nil {
				return fmt.Errorf("save scan: %w", err)
			}

			if jsonOutput {
				return writeJSON(cmd, scanResultView{
					ScanID: saved.ID,
					Root:   saved.Root,
					Stats:  saved.Stats,
					Groups: groups,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Scanned %d video files under %s\n", saved.Stats.TotalFiles, root)
			if saved.Stats.GroupCount == 0 {
				fmt.Fprintln(out, "No duplicates found")
			} else {
				fmt.Fprintf(out, "Duplicate groups: %d\n", saved.Stats.GroupCount)
				fmt.Fprintf(out, "Duplicate files: %d\n", saved.Stats.TotalDuplicates)
				fmt.Fprintf(out, "Reclaimable space: %s\n", dedupe.FormatSize(saved.Stats.DuplicateSpaceBytes))
			}
			fmt.Fprintf(out, "Scan ID: %s\n", saved.ID)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&threshold, "threshold", "t", dedupe.DefaultSimilarityThreshold, "Title similarity threshold (0 to 1)")
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "Similarity algorithm (sequence, jaro-winkler, levenshtein, sorensen-dice)")
	cmd.Flags().BoolVar(&durationFilter, "duration-filter", true, "Require similar durations before grouping")
	cmd.Flags().BoolVar(&probeFlag, "probe-durations", false, "Probe video durations with ffprobe")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit results as JSON")

	return cmd
}

type scanResultView struct {
	ScanID string         `json:"scan_id"`
	Root   string         `json:"root"`
	Stats  dedupe.Stats   `json:"stats"`
	Groups []dedupe.Group `json:"groups"`
}
