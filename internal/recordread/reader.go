package recordread

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/tagstamp/internal/model"
)

const readBatchSize = 1024

// Reader streams TaggedRecords out of a Parquet tag-row file. Consecutive
// rows sharing record_id are folded into one record, tags in file order.
type Reader struct {
	file   *os.File
	reader *parquet.GenericReader[model.TagRow]

	buf  []model.TagRow
	pos  int
	n    int
	done bool
}

// Open opens a Parquet file and returns a streaming Reader.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	r := parquet.NewGenericReader[model.TagRow](pf)
	return &Reader{file: f, reader: r, buf: make([]model.TagRow, readBatchSize)}, nil
}

// NumRows returns the number of tag rows in the file, not the number of records.
func (r *Reader) NumRows() int64 {
	return r.reader.NumRows()
}

// Schema returns the Parquet schema for validation.
func (r *Reader) Schema() *parquet.Schema {
	return r.reader.Schema()
}

// Next returns the next record, or io.EOF when the file is exhausted.
// A record whose only row is a placeholder has an empty, non-nil tag slice.
func (r *Reader) Next() (*model.TaggedRecord, error) {
	first, err := r.peek()
	if err != nil {
		return nil, err
	}

	rec := &model.TaggedRecord{ID: first.RecordID, Tags: []model.Tag{}}
	for {
		row, err := r.peek()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if row.RecordID != rec.ID {
			break
		}
		if !row.IsPlaceholder() {
			rec.Tags = append(rec.Tags, model.Tag{System: row.System, Code: row.Code})
		}
		r.pos++
	}
	return rec, nil
}

// peek returns the current row without consuming it, refilling the buffer as needed.
func (r *Reader) peek() (*model.TagRow, error) {
	for r.pos >= r.n {
		if r.done {
			return nil, io.EOF
		}
		n, err := r.reader.Read(r.buf)
		r.pos, r.n = 0, n
		if err == io.EOF {
			r.done = true
		} else if err != nil {
			return nil, fmt.Errorf("read parquet rows: %w", err)
		}
	}
	return &r.buf[r.pos], nil
}

// Close releases all resources.
func (r *Reader) Close() error {
	if err := r.reader.Close(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}
