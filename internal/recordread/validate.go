package recordread

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/tagstamp/internal/model"
)

// ValidateSchema checks that the Parquet schema carries every tag-row column.
func ValidateSchema(schema *parquet.Schema) error {
	columns := make(map[string]bool)
	for _, field := range schema.Fields() {
		columns[strings.ToLower(field.Name())] = true
	}

	var missing []string
	for _, col := range model.TagRowColumns() {
		if !columns[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
