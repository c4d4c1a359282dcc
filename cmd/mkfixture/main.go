// mkfixture converts a YAML or JSON record file into a Parquet tag-row file.
// Usage: go run ./cmd/mkfixture --in testdata/issues.yaml --out testdata/issues.parquet
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gyeh/tagstamp/internal/model"
	"github.com/gyeh/tagstamp/internal/recordread"
)

func main() {
	in := flag.String("in", "testdata/issues.yaml", "input record file (.yaml, .yml, .json or .parquet)")
	out := flag.String("out", "testdata/issues.parquet", "output parquet")
	maxRecords := flag.Int("records", 0, "max records to output (0 = all)")
	checkOnly := flag.Bool("check", false, "only print stats, don't write")
	flag.Parse()

	records, err := recordread.Load(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load input: %v\n", err)
		os.Exit(1)
	}
	if *maxRecords > 0 && len(records) > *maxRecords {
		records = records[:*maxRecords]
	}

	var tags, untagged int
	systems := make(map[string]int)
	for _, rec := range records {
		if !rec.HasTags() {
			untagged++
		}
		for _, t := range rec.Tags {
			tags++
			systems[t.System]++
		}
	}
	fmt.Printf("Read %d records (%d tags, %d without tags) from %s\n", len(records), tags, untagged, *in)

	if *checkOnly {
		for system, n := range systems {
			fmt.Printf("  %-48s %d\n", system, n)
		}
		return
	}

	rows, err := recordread.WriteParquet(*out, records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d %s rows to %s\n", rows, model.TagRowColumns(), *out)
}
