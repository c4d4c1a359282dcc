package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/tagstamp/internal/db"
	"github.com/gyeh/tagstamp/internal/exitcode"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database schema migrations",
	Run:   runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) {
	log := newLogger()
	ctx := context.Background()

	if cfg.DSN == "" {
		log.Error().Msg("--dsn or TAGSTAMP_DB_URL is required")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	if err := db.ApplyMigrations(ctx, pool, log); err != nil {
		log.Error().Err(err).Msg("migration failed")
		pool.Close()
		os.Exit(exitcode.FinalizeError)
	}

	log.Info().Msg("all migrations applied successfully")
}
