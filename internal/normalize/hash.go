package normalize

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/gyeh/tagstamp/internal/model"
)

// FileHash computes the hex-encoded SHA-256 of the file at path.
func FileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for hash: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// RecordHash computes a stable SHA-256 over a record's position, id and tags.
// Tag systems are case-folded so case-variant copies of a record hash alike.
func RecordHash(rowNum int64, rec *model.TaggedRecord) []byte {
	h := sha256.New()
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(rowNum))
	h.Write(buf)
	h.Write([]byte(rec.ID))
	h.Write([]byte{0})
	for _, t := range rec.Tags {
		h.Write([]byte(Fold(t.System)))
		h.Write([]byte{0})
		h.Write([]byte(t.Code))
		h.Write([]byte{0})
	}
	return h.Sum(nil)
}
