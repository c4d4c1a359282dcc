package model

// Tag is a single coding attached to a record's metadata.
// System is conventionally a URI; Code is a short value or a boolean literal.
type Tag struct {
	System string `yaml:"system" json:"system"`
	Code   string `yaml:"code" json:"code"`
}

// TaggedRecord is the read-only view of a clinical record the extractor needs.
// A nil Tags slice means the record carries no tag collection at all.
type TaggedRecord struct {
	ID   string
	Tags []Tag
}

// HasTags reports whether the record has a non-empty tag collection.
func (r *TaggedRecord) HasTags() bool {
	return r != nil && len(r.Tags) > 0
}
