package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gyeh/tagstamp/internal/exitcode"
	"github.com/gyeh/tagstamp/internal/extract"
	"github.com/gyeh/tagstamp/internal/ingest"
	"github.com/gyeh/tagstamp/internal/normalize"
	"github.com/gyeh/tagstamp/internal/recordread"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and stats (no writes)",
	Run:   runPlan,
}

func init() {
	planCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Path to a .parquet, .yaml or .json record file (required)")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) {
	log := newLogger()

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	n := mustNormalizer(log)

	sha, err := normalize.FileHash(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash file")
		os.Exit(exitcode.ValidationError)
	}

	stat, err := os.Stat(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to stat file")
		os.Exit(exitcode.ValidationError)
	}

	src, err := recordread.OpenSource(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to open record file")
		os.Exit(exitcode.ValidationError)
	}
	defer src.Close()

	tally, err := ingest.Walk(context.Background(), src, n, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to read records")
		os.Exit(exitcode.ValidationError)
	}

	zone := n.Zone()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== tagstamp plan ===")
	fmt.Fprintf(out, "File:        %s\n", cfg.FilePath)
	fmt.Fprintf(out, "SHA-256:     %s\n", sha)
	fmt.Fprintf(out, "Size:        %d bytes\n", stat.Size())
	fmt.Fprintf(out, "Time zone:   %s (%s, base offset %s)\n", zone.Name, zone.Abbrev, zone.Base)
	fmt.Fprintf(out, "Records:     %d\n", tally.Read)
	fmt.Fprintf(out, "Flagged:     %d\n", tally.Flagged)
	fmt.Fprintf(out, "Normalized:  %d\n", tally.Normalized)
	fmt.Fprintf(out, "Absent:      %d\n", tally.Absent())
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Outcomes:")

	reasons := make([]extract.Reason, 0, len(tally.Reasons))
	for r := range tally.Reasons {
		reasons = append(reasons, r)
	}
	sort.Slice(reasons, func(i, j int) bool { return reasons[i] < reasons[j] })
	for _, r := range reasons {
		fmt.Fprintf(out, "  %-12s %d\n", r, tally.Reasons[r])
	}
}
