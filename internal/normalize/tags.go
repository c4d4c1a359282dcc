package normalize

import (
	"sync"

	"golang.org/x/text/cases"

	"github.com/gyeh/tagstamp/internal/model"
)

// A Caser is used by one goroutine at a time.
var folderPool = sync.Pool{
	New: func() any { return cases.Fold() },
}

// Fold returns the Unicode case-folded form of s.
func Fold(s string) string {
	c := folderPool.Get().(cases.Caser)
	out := c.String(s)
	c.Reset()
	folderPool.Put(c)
	return out
}

// EqualFold reports whether a and b are equal under Unicode case folding.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// FindFirst returns the first tag whose system matches key case-insensitively,
// or nil if none does.
func FindFirst(tags []model.Tag, key string) *model.Tag {
	want := Fold(key)
	for i := range tags {
		if Fold(tags[i].System) == want {
			t := tags[i]
			return &t
		}
	}
	return nil
}

// ReadBooleanFlag reports whether the tag identified by key is present with a
// code of "true" (any case). Missing tags and any other code read as false.
func ReadBooleanFlag(tags []model.Tag, key string) bool {
	t := FindFirst(tags, key)
	if t == nil {
		return false
	}
	return Fold(t.Code) == "true"
}
