package db

import (
	"github.com/jackc/pgx/v5"

	"github.com/gyeh/fonoledger/internal/model"
)

// VisitSource implements pgx.CopyFromSource by reading VisitRecords from a
// channel, giving the restore path natural backpressure between the dump
// reader and the COPY writer.
type VisitSource struct {
	ch      <-chan *model.VisitRecord
	current *model.VisitRecord
	err     error
}

// NewVisitSource creates a CopyFromSource backed by a channel.
func NewVisitSource(ch <-chan *model.VisitRecord) *VisitSource {
	return &VisitSource{ch: ch}
}

// Next advances to the next record. Returns false when the channel is closed.
func (s *VisitSource) Next() bool {
	rec, ok := <-s.ch
	if !ok {
		return false
	}
	s.current = rec
	return true
}

// Values returns the current record's values in COPY column order.
func (s *VisitSource) Values() ([]any, error) {
	return s.current.CopyValues(), nil
}

// Err returns any error encountered during iteration.
func (s *VisitSource) Err() error {
	return s.err
}

// Compile-time check that VisitSource satisfies the interface.
var _ pgx.CopyFromSource = (*VisitSource)(nil)
