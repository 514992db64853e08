package provgraph

import (
	"context"
	"testing"

	"github.com/hupe1980/provgraph/core"
	"github.com/hupe1980/provgraph/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedDependency(t *testing.T) {
	x := metadata.MustTemplate(metadata.Col("x", metadata.Ints(1, 2, 3)...))
	y := metadata.MustTemplate(metadata.Col("y", metadata.Ints(1, 4, 9)...))
	alg := rec("alg", "square")

	chains, err := OrderedDependency(x, y, alg)
	require.NoError(t, err)
	require.Len(t, chains, 3)
	for i, c := range chains {
		require.Len(t, c, 3)
		assert.True(t, c[0].Equal(x.Row(i)))
		assert.True(t, c[1].Equal(alg))
		assert.True(t, c[2].Equal(y.Row(i)))
	}

	short := metadata.MustTemplate(metadata.Col("y", metadata.Ints(1, 4)...))
	_, err = OrderedDependency(x, short)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestAddDerivedValues_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"scan", nil},
		{"indexed", []Option{WithIndex("x", "y")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := squares(t, tt.opts...)

			assert.Equal(t, 6, s.NumVertices())
			assert.Equal(t, 3, s.NumEdges())
			for e := range s.Edges() {
				assert.Equal(t, 1, e.NumPaths())
			}

			for i, want := range []int64{1, 4, 9} {
				attrs, ok := s.Attrs(core.VertexID(4 + i))
				require.True(t, ok)
				got, ok := attrs.Get("y")
				require.True(t, ok)
				assert.Equal(t, metadata.Int(want), got)
			}

			x1 := mustVertex(t, s, rec("x", 1))
			path := s.PathsThrough(x1, Forward)
			assert.True(t, s.OnPath(mustVertex(t, s, rec("y", 1)), path))
			assert.False(t, s.OnPath(mustVertex(t, s, rec("y", 4)), path))
			require.NoError(t, s.CheckInvariants())
		})
	}
}

func TestAddDerivedValues_SharedInner(t *testing.T) {
	ctx := context.Background()
	s := New()

	x := metadata.MustTemplate(metadata.Col("x", metadata.Ints(1, 2, 3)...))
	y := metadata.MustTemplate(metadata.Col("y", metadata.Ints(1, 4, 9)...))
	ids, err := s.AddDerivedValues(ctx, x, y, rec("alg", "square"))
	require.NoError(t, err)
	assert.Equal(t, []core.PathID{1, 2, 3}, ids)

	assert.Equal(t, 7, s.NumVertices())
	assert.Equal(t, 6, s.NumEdges())

	alg := mustVertex(t, s, rec("alg", "square"))
	want := []core.VertexID{mustVertex(t, s, rec("x", 2)), alg, mustVertex(t, s, rec("y", 4))}
	assert.Equal(t, want, s.PathVertices(2))

	leaves, err := s.FinalNeighbors(ctx, NewChain(rec("x", 2), rec("alg", "square")))
	require.NoError(t, err)
	assert.Equal(t, []metadata.Value{metadata.Int(4)}, s.CollectValues(leaves, "y"))
}

func TestAddDerivedValues_ContinuesPaths(t *testing.T) {
	ctx := context.Background()
	s := New()

	p := metadata.MustTemplate(metadata.Col("P", metadata.Ints(1, 2)...))
	x := metadata.MustTemplate(metadata.Col("x", metadata.Ints(10, 20)...))
	y := metadata.MustTemplate(metadata.Col("y", metadata.Ints(100, 400)...))

	ids, err := s.AddDerivedValues(ctx, p, x)
	require.NoError(t, err)
	assert.Equal(t, []core.PathID{1, 2}, ids)

	ids, err = s.AddDerivedValues(ctx, x, y)
	require.NoError(t, err)
	assert.Equal(t, []core.PathID{1, 2}, ids)
	assert.Equal(t, core.PathID(3), s.PeekPathID())

	want := []core.VertexID{
		mustVertex(t, s, rec("P", 1)),
		mustVertex(t, s, rec("x", 10)),
		mustVertex(t, s, rec("y", 100)),
	}
	assert.Equal(t, want, s.PathVertices(1))
}

func TestAddDerivedValues_StopsAtFirstFailure(t *testing.T) {
	ctx := context.Background()
	metrics := &BasicMetricsCollector{}
	s := New(WithMetricsCollector(metrics))

	_, err := s.AddNodes(ctx, NewChain(rec("a", 1), rec("x", 1)), 1)
	require.NoError(t, err)
	_, err = s.AddNodes(ctx, NewChain(rec("b", 1), rec("x", 1)), 2)
	require.NoError(t, err)

	x := metadata.MustTemplate(metadata.Col("x", metadata.Ints(5, 1, 7)...))
	y := metadata.MustTemplate(metadata.Col("y", metadata.Ints(25, 1, 49)...))

	ids, err := s.AddDerivedValues(ctx, x, y)
	require.ErrorIs(t, err, ErrAmbiguousContinuation)
	assert.Equal(t, []core.PathID{3}, ids)

	_, ok := s.Lookup(rec("x", 7))
	assert.True(t, ok, "base rows are created up front")
	_, ok = s.Lookup(rec("y", 49))
	assert.False(t, ok)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.BulkInsertCount)
	assert.Equal(t, int64(2), stats.BulkInsertFailed)
}

func TestAddDerivedValues_LengthMismatch(t *testing.T) {
	s := New()
	x := metadata.MustTemplate(metadata.Col("x", metadata.Ints(1, 2)...))
	y := metadata.MustTemplate(metadata.Col("y", metadata.Ints(1)...))

	ids, err := s.AddDerivedValues(context.Background(), x, y)
	require.ErrorIs(t, err, ErrLengthMismatch)
	assert.Nil(t, ids)
	assert.Equal(t, 0, s.NumVertices())
}

func TestAddQuantity(t *testing.T) {
	ctx := context.Background()
	s := New(WithIndex("x"))

	prefix := NewChain(rec("P", 1), rec("alg", "alg1"))
	_, _, err := s.AddChain(ctx, prefix)
	require.NoError(t, err)

	q := metadata.MustTemplate(metadata.Col("x", metadata.Ints(1, 2, 3)...))
	ids, err := s.AddQuantity(ctx, prefix, q)
	require.NoError(t, err)
	assert.Equal(t, []core.PathID{1, 2, 3}, ids, "the first row continues the prefix's path")

	assert.Equal(t, 5, s.NumVertices(), "prefix vertices are shared")
	p := mustVertex(t, s, rec("P", 1))
	alg := mustVertex(t, s, rec("alg", "alg1"))
	shared, ok := s.PathIDs(p, alg)
	require.True(t, ok)
	assert.Equal(t, []core.PathID{1, 2, 3}, shared.IDs())

	for i, x := range []int64{1, 2, 3} {
		leaf := mustVertex(t, s, rec("x", x))
		got, ok := s.PathIDs(alg, leaf)
		require.True(t, ok)
		assert.Equal(t, []core.PathID{ids[i]}, got.IDs())
	}

	leaves, err := s.FinalNeighbors(ctx, prefix)
	require.NoError(t, err)
	assert.Equal(t, metadata.Ints(1, 2, 3), s.CollectValues(leaves, "x"))
	require.NoError(t, s.CheckInvariants())

	again, err := s.AddQuantity(ctx, prefix, q)
	require.NoError(t, err)
	assert.Equal(t, ids, again)
	assert.Equal(t, 5, s.NumVertices())
	assert.Equal(t, core.PathID(4), s.PeekPathID())
}

func TestAddQuantity_NewPrefix(t *testing.T) {
	ctx := context.Background()
	metrics := &BasicMetricsCollector{}
	s := New(WithMetricsCollector(metrics))

	q := metadata.MustTemplate(metadata.Col("x", metadata.Ints(1, 2)...))
	ids, err := s.AddQuantity(ctx, NewChain(rec("P", 2)), q)
	require.NoError(t, err)
	assert.Equal(t, []core.PathID{1, 2}, ids)
	assert.Equal(t, 2, s.NumEdges())

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.BulkInsertCount)
	assert.Equal(t, int64(2), stats.BulkInsertChains)
	assert.Equal(t, int64(0), stats.BulkInsertFailed)
}

func TestAddQuantity_EmptyPrefix(t *testing.T) {
	s := New()
	q := metadata.MustTemplate(
		metadata.Col("x", metadata.Ints(1, 2, 3)...),
		metadata.Col("unit", metadata.Strings("m", "m", "m")...),
	)
	ids, err := s.AddQuantity(context.Background(), nil, q)
	require.NoError(t, err)
	assert.Equal(t, []core.PathID{0, 0, 0}, ids)
	assert.Equal(t, 3, s.NumVertices())
	assert.Equal(t, 0, s.NumEdges())
	assert.Equal(t, core.PathID(1), s.PeekPathID())
}
