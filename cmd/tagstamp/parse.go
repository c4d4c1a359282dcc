package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gyeh/tagstamp/internal/extract"
	"github.com/gyeh/tagstamp/internal/normalize"
)

var parseToZone bool

var parseCmd = &cobra.Command{
	Use:   "parse TEXT...",
	Short: "Parse timestamps with the configured formats and culture",
	Args:  cobra.MinimumNArgs(1),
	Run:   runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseToZone, "to-zone", false, "Also show each value at the --time-zone base offset")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) {
	log := newLogger()
	opts := cfg.Options()

	var zone *extract.Zone
	if parseToZone {
		z, err := extract.ResolveZone(opts.TimeZone)
		if err != nil {
			log.Error().Err(err).Msg("invalid time zone")
			os.Exit(exitCodeForError(err))
		}
		zone = z
	}

	out := cmd.OutOrStdout()
	unparsed := 0
	for _, text := range args {
		p, err := normalize.ToTimestamp(text, opts.Formats, opts.Culture)
		if err != nil {
			log.Error().Err(err).Msg("invalid parse settings")
			os.Exit(exitCodeForError(err))
		}
		if p == nil {
			unparsed++
			fmt.Fprintf(out, "%s\t-\n", text)
			continue
		}
		line := p.Instant.Format(time.RFC3339Nano)
		if zone != nil {
			line += "\t" + zone.AtBaseOffset(p).Instant.Format(time.RFC3339Nano)
		}
		fmt.Fprintf(out, "%s\t%s\n", text, line)
	}
	log.Debug().Int("inputs", len(args)).Int("unparsed", unparsed).Msg("parse complete")
}
