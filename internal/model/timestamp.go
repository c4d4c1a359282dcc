package model

import "time"

// ParsedTimestamp is the result of a successful flexible parse.
// Instant carries a fixed zone whose offset equals Offset.
type ParsedTimestamp struct {
	Instant time.Time
	Offset  time.Duration
}

// NormalizedTimestamp is a parsed timestamp re-expressed at a zone's base offset.
// Offset is the zone's standard offset, not the offset in force at Instant.
type NormalizedTimestamp struct {
	Instant time.Time
	Offset  time.Duration
	Zone    string
}

// OffsetSeconds returns Offset as whole seconds, the unit stored in Postgres.
func (n *NormalizedTimestamp) OffsetSeconds() int32 {
	return int32(n.Offset / time.Second)
}
