package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gyeh/tagstamp/internal/exitcode"
	"github.com/gyeh/tagstamp/internal/extract"
	"github.com/gyeh/tagstamp/internal/ingest"
	"github.com/gyeh/tagstamp/internal/model"
	"github.com/gyeh/tagstamp/internal/normalize"
	"github.com/gyeh/tagstamp/internal/recordread"
)

var (
	extractAll        bool
	extractInLocation bool
	extractNaive      bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Print the normalized sync time of every flagged record",
	Run:   runExtract,
}

func init() {
	f := extractCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to a .parquet, .yaml or .json record file (required)")
	f.BoolVar(&extractAll, "all", false, "Also list records without a sync time, with the reason")
	f.BoolVar(&extractInLocation, "in-location", false, "Add a column with the daylight-aware offset")
	f.BoolVar(&extractNaive, "naive", false, "Add a column with the legacy host-offset rendering (same --flag-key/--value-key)")
	_ = extractCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) {
	log := newLogger()

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	n := mustNormalizer(log)

	display, err := normalize.Layout(model.DisplayFormat, nil)
	if err != nil {
		log.Error().Err(err).Msg("invalid display format")
		os.Exit(exitcode.ConfigError)
	}

	src, err := recordread.OpenSource(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to open record file")
		os.Exit(exitcode.ValidationError)
	}
	defer src.Close()

	opts := cfg.Options()
	out := cmd.OutOrStdout()
	tally, err := ingest.Walk(context.Background(), src, n, func(rowNum int64, rec *model.TaggedRecord, o extract.Outcome) error {
		if o.Result == nil && !extractAll {
			return nil
		}
		line := rec.ID
		if o.Result != nil {
			line += "\t" + o.Result.Instant.Format(time.RFC3339) + "\t" + o.Result.Instant.Format(display)
		} else {
			line += "\t-\t" + string(o.Reason)
		}
		if extractInLocation {
			if in := n.NormalizeInLocation(rec); in != nil {
				line += "\t" + in.Instant.Format(time.RFC3339)
			} else {
				line += "\t-"
			}
		}
		if extractNaive {
			line += "\t" + naiveColumn(rec, opts.FlagKey, opts.ValueKey)
		}
		_, err := fmt.Fprintln(out, line)
		return err
	})
	if err != nil {
		log.Error().Err(err).Msg("extract failed")
		os.Exit(exitcode.ExtractError)
	}

	log.Info().
		Int64("records", tally.Read).
		Int64("normalized", tally.Normalized).
		Int64("absent", tally.Absent()).
		Str("time_zone", n.Zone().Name).
		Msg("extract complete")
}

func naiveColumn(rec *model.TaggedRecord, flagKey, valueKey string) string {
	s, err := extract.NaiveSyncTimeFor(rec, flagKey, valueKey)
	switch {
	case err != nil:
		return "error: " + err.Error()
	case s == nil:
		return "-"
	}
	return *s
}
