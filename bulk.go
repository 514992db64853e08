package provgraph

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/provgraph/core"
	"github.com/hupe1980/provgraph/metadata"
)

// ErrLengthMismatch is returned when the base and derived templates of a
// bulk insertion have different row counts.
var ErrLengthMismatch = errors.New("template length mismatch")

// OrderedDependency pairs two templates row by row: row i of a, then the
// inner records, then row i of b. It returns one chain per row, in row order.
func OrderedDependency(a, b metadata.Template, inner ...metadata.Record) ([]Chain, error) {
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("%w: base has %d rows, derived has %d", ErrLengthMismatch, a.Len(), b.Len())
	}

	chains := make([]Chain, a.Len())
	for i := range chains {
		c := make(Chain, 0, len(inner)+2)
		c = append(c, a.Row(i))
		c = append(c, inner...)
		c = append(c, b.Row(i))
		chains[i] = c
	}
	return chains, nil
}

// AddQuantity records every row of q as derived through prefix: row i is
// inserted as the chain prefix -> q.Row(i). The prefix vertices are shared by
// all rows while each row's leaf gets its own path id (the first row
// continues a path that ends at the prefix's last record, see NextID).
//
// With an empty prefix each row is a single-record chain: its vertex is
// created and its id is 0.
//
// The returned ids are in row order. Insertion stops at the first failing
// row; the ids of the rows inserted so far are returned with the error.
func (s *Store) AddQuantity(ctx context.Context, prefix Chain, q metadata.Template) ([]core.PathID, error) {
	start := time.Now()

	chains := make([]Chain, q.Len())
	for i := range chains {
		c := make(Chain, 0, len(prefix)+1)
		c = append(c, prefix...)
		chains[i] = append(c, q.Row(i))
	}
	return s.insertChains(ctx, chains, start)
}

// AddDerivedValues inserts a derived dataset: row i of derived is recorded as
// computed from row i of base through the inner records. Each row becomes
// its own chain with its own path id (or continues the path ending at its
// base row, see NextID). All base rows are created before any derived row.
//
// The returned ids are in row order. Insertion stops at the first failing
// row; the ids of the rows inserted so far are returned with the error.
func (s *Store) AddDerivedValues(ctx context.Context, base, derived metadata.Template, inner ...metadata.Record) ([]core.PathID, error) {
	start := time.Now()

	chains, err := OrderedDependency(base, derived, inner...)
	if err != nil {
		s.metrics.RecordBulkInsert(base.Len(), base.Len(), time.Since(start))
		return nil, err
	}

	for _, row := range base.Rows() {
		s.GetOrCreate(row)
	}
	return s.insertChains(ctx, chains, start)
}

func (s *Store) insertChains(ctx context.Context, chains []Chain, start time.Time) ([]core.PathID, error) {
	ids := make([]core.PathID, 0, len(chains))
	for i, chain := range chains {
		id, _, err := s.AddChain(ctx, chain)
		if err != nil {
			failed := len(chains) - i
			s.metrics.RecordBulkInsert(len(chains), failed, time.Since(start))
			s.logger.WithCount(len(chains)).LogBulkInsert(ctx, failed)
			return ids, fmt.Errorf("row %d: %w", i, err)
		}
		ids = append(ids, id)
	}

	s.metrics.RecordBulkInsert(len(chains), 0, time.Since(start))
	s.logger.WithCount(len(chains)).LogBulkInsert(ctx, 0)
	return ids, nil
}
