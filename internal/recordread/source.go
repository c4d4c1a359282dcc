package recordread

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gyeh/tagstamp/internal/model"
)

// Source yields records one at a time. Next returns io.EOF when done.
type Source interface {
	Next() (*model.TaggedRecord, error)
	Close() error
}

// Format names a record file encoding.
type Format string

const (
	FormatParquet Format = "parquet"
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
)

// DetectFormat picks the file format from its extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return FormatParquet, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported record file %q: want .parquet, .yaml, .yml or .json", filepath.Base(path))
}

// OpenSource opens path as a record Source. Parquet files stream and have
// their schema validated; YAML and JSON files are decoded up front.
func OpenSource(path string) (Source, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatParquet:
		r, err := Open(path)
		if err != nil {
			return nil, err
		}
		if err := ValidateSchema(r.Schema()); err != nil {
			r.Close()
			return nil, err
		}
		return r, nil
	case FormatYAML:
		recs, err := readDocumentFile(path, ReadYAML)
		if err != nil {
			return nil, err
		}
		return NewSliceSource(recs), nil
	default:
		recs, err := readDocumentFile(path, ReadJSON)
		if err != nil {
			return nil, err
		}
		return NewSliceSource(recs), nil
	}
}

// Load reads every record from path.
func Load(path string) ([]*model.TaggedRecord, error) {
	src, err := OpenSource(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	var out []*model.TaggedRecord
	for {
		rec, err := src.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
}

// SliceSource serves records from memory.
type SliceSource struct {
	records []*model.TaggedRecord
	pos     int
}

func NewSliceSource(records []*model.TaggedRecord) *SliceSource {
	return &SliceSource{records: records}
}

func (s *SliceSource) Next() (*model.TaggedRecord, error) {
	if s.pos >= len(s.records) {
		return nil, io.EOF
	}
	rec := s.records[s.pos]
	s.pos++
	return rec, nil
}

func (s *SliceSource) Close() error { return nil }

var (
	_ Source = (*Reader)(nil)
	_ Source = (*SliceSource)(nil)
)
