package db

import (
	"github.com/jackc/pgx/v5"

	"github.com/gyeh/tagstamp/internal/model"
)

// ChannelSource implements pgx.CopyFromSource by reading SyncTimeRows from a
// channel, so the record reader and the COPY writer run concurrently.
type ChannelSource struct {
	ch      <-chan *model.SyncTimeRow
	current *model.SyncTimeRow
	sent    int64
}

// NewChannelSource creates a CopyFromSource backed by a channel.
func NewChannelSource(ch <-chan *model.SyncTimeRow) *ChannelSource {
	return &ChannelSource{ch: ch}
}

// Next advances to the next row. Returns false when the channel is closed.
func (s *ChannelSource) Next() bool {
	row, ok := <-s.ch
	if !ok {
		return false
	}
	s.current = row
	s.sent++
	return true
}

// Values returns the current row's values in COPY column order.
func (s *ChannelSource) Values() ([]any, error) {
	return s.current.CopyValues(), nil
}

// Err always returns nil; producer failures travel on their own channel.
func (s *ChannelSource) Err() error {
	return nil
}

// Sent reports how many rows have been handed to COPY.
func (s *ChannelSource) Sent() int64 {
	return s.sent
}

var _ pgx.CopyFromSource = (*ChannelSource)(nil)
