package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/tagstamp/internal/config"
	"github.com/gyeh/tagstamp/internal/exitcode"
	"github.com/gyeh/tagstamp/internal/extract"
	"github.com/gyeh/tagstamp/internal/logging"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "tagstamp",
	Short: "Offline sync-time extractor for tagged clinical records",
	Long: "Reads records whose meta tags flag an offline submission, normalizes the " +
		"recorded sync time to a time zone's base offset, and optionally loads the " +
		"results into Postgres via the COPY protocol.",
	PersistentPreRun: loadConfigFile,
	SilenceUsage:     true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("TAGSTAMP_DB_URL"), "Postgres connection string (or set TAGSTAMP_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&cfg.ConfigPath, "config", "", "YAML file with flag_key, value_key, time_zone, culture, formats")
	pf.StringVar(&cfg.TimeZone, "time-zone", "", "Target IANA time zone (default Australia/Hobart)")
	pf.StringVar(&cfg.FlagKey, "flag-key", "", "Tag system of the offline flag")
	pf.StringVar(&cfg.ValueKey, "value-key", "", "Tag system of the sync time value")
	pf.StringVar(&cfg.Culture, "culture", "", "Culture for month names and date order (default en-US)")
	pf.StringArrayVar(&cfg.Formats, "format", nil, "Exact pattern tried before ISO-8601, e.g. \"dd/MM/yyyy HH:mm\" (repeatable)")
}

func loadConfigFile(cmd *cobra.Command, args []string) {
	if cfg.ConfigPath == "" {
		return
	}
	if err := cfg.LoadFromFile(cfg.ConfigPath); err != nil {
		log := newLogger()
		log.Error().Err(err).Str("config", cfg.ConfigPath).Msg("config file failed to load")
		os.Exit(exitcode.UsageError)
	}
}

func newLogger() zerolog.Logger {
	return logging.Setup(cfg.LogFormat, cfg.LogLevel)
}

// mustNormalizer resolves the extraction settings or exits with ConfigError.
func mustNormalizer(log zerolog.Logger) *extract.Normalizer {
	n, err := cfg.Resolve()
	if err != nil {
		log.Error().Err(err).Msg("invalid extraction settings")
		os.Exit(exitCodeForError(err))
	}
	return n
}
