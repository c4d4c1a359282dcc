package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/tagstamp/internal/db"
	"github.com/gyeh/tagstamp/internal/exitcode"
	"github.com/gyeh/tagstamp/internal/ingest"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Normalize a record file and load the results into the database",
	Run:   runLoad,
}

func init() {
	f := loadCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to a .parquet, .yaml or .json record file (required)")
	f.BoolVar(&cfg.Force, "force", false, "Re-load even if the file SHA already exists")
	_ = loadCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) {
	log := newLogger()
	ctx := context.Background()

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	mustNormalizer(log)

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := ingest.Run(ctx, pool, log, &cfg)
	if err != nil {
		var pe *ingest.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("load failed")
		} else {
			log.Error().Err(err).Msg("load failed")
		}
		pool.Close()
		os.Exit(exitCodeForError(err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Load complete: %d records read, %d sync times stored (%.1fs)\n",
		summary.RecordsRead, summary.RowsStored, summary.DurationTotal.Seconds())
}
