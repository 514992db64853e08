package provgraph

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/hupe1980/provgraph/core"
	"github.com/hupe1980/provgraph/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(kv ...any) metadata.Record { return metadata.MustRecord(kv...) }

func TestStore_GetOrCreateIsIdempotent(t *testing.T) {
	for _, keys := range [][]string{nil, {"x"}} {
		s := New(WithIndex(keys...))

		id, created := s.GetOrCreate(rec("x", 1))
		require.True(t, created)
		nv := s.NumVertices()

		again, created := s.GetOrCreate(rec("x", 1))
		assert.False(t, created)
		assert.Equal(t, id, again)
		assert.Equal(t, nv, s.NumVertices())
	}
}

func TestStore_Lookup(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	s := New(WithIndex("x"), WithMetricsCollector(metrics))

	a := s.AddVertex(rec("x", 1))
	b := s.AddVertex(rec("alg", "alg1"))

	id, ok := s.Lookup(rec("x", 1))
	require.True(t, ok)
	assert.Equal(t, a, id)

	id, ok = s.Lookup(rec("alg", "alg1"))
	require.True(t, ok)
	assert.Equal(t, b, id)

	_, ok = s.Lookup(rec("x", 2))
	assert.False(t, ok)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.LookupHits)
	assert.Equal(t, int64(1), stats.LookupMisses)
}

func TestStore_VertexOf(t *testing.T) {
	s := New()
	s.AddVertex(rec("x", 1))

	id, err := s.VertexOf(rec("x", 1))
	require.NoError(t, err)
	assert.Equal(t, core.VertexID(1), id)

	_, err = s.VertexOf(rec("x", 2))
	require.ErrorIs(t, err, ErrNotFound)
	var nf *RecordNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "(x=2,)", nf.Record)
}

func TestStore_DeclareIndexLate(t *testing.T) {
	s := New()
	s.AddVertex(rec("x", 1))
	s.AddVertex(rec("x", 2))

	assert.True(t, s.DeclareIndex("x"))
	assert.False(t, s.DeclareIndex("x"))
	assert.Equal(t, []string{"x"}, s.IndexedKeys())

	id, ok := s.Lookup(rec("x", 2))
	require.True(t, ok)
	assert.Equal(t, core.VertexID(2), id)

	// Vertices created after declaration are indexed too.
	v := s.AddVertex(rec("x", 3))
	id, ok = s.Lookup(rec("x", 3))
	require.True(t, ok)
	assert.Equal(t, v, id)
	require.NoError(t, s.CheckInvariants())
}

func TestStore_PropertyStore(t *testing.T) {
	s := New()
	a := s.AddVertex(rec("x", 1))
	b := s.AddVertex(rec("y", 1))

	require.NoError(t, s.AddEdge(a, b, 1))
	require.NoError(t, s.AddEdge(a, b, 2))
	require.ErrorIs(t, s.AddEdge(a, b, 0), ErrInvalidPathID)

	assert.Equal(t, 1, s.NumEdges())
	assert.Equal(t, []core.VertexID{b}, s.OutNeighbors(a))
	assert.Equal(t, []core.VertexID{a}, s.InNeighbors(b))

	ids, ok := s.PathIDs(a, b)
	require.True(t, ok)
	assert.Equal(t, []core.PathID{1, 2}, ids.IDs())

	attrs, ok := s.Attrs(b)
	require.True(t, ok)
	assert.True(t, attrs.Equal(rec("y", 1)))
	assert.Equal(t, core.PathID(3), s.PeekPathID())
}

func TestStore_PathCounter(t *testing.T) {
	s := New(WithFirstPathID(10))
	assert.Equal(t, core.PathID(10), s.PeekPathID())
	assert.Equal(t, core.PathID(10), s.NextPathID())
	assert.Equal(t, core.PathID(11), s.PeekPathID())

	_, err := s.AddNodes(context.Background(), NewChain(rec("x", 1), rec("y", 1)), 11)
	require.NoError(t, err)
	require.ErrorIs(t, s.SetPathID(11), ErrInvalidPathID)
	require.NoError(t, s.SetPathID(40))
	assert.Equal(t, core.PathID(40), s.PeekPathID())
}

func TestStore_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := New(WithLogger(logger))

	_, _, err := s.AddChain(context.Background(), NewChain(rec("x", 1), rec("y", 1)))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"msg":"chain inserted"`)
	assert.Contains(t, buf.String(), `"path":1`)
}

func TestChain_String(t *testing.T) {
	c := NewChain(rec("P", 1), rec("alg", "alg1"))
	assert.Equal(t, `(P=1,) -> (alg="alg1",)`, c.String())
}

func TestStore_GraphIsReadOnly(t *testing.T) {
	s := New(WithIndex("x"))
	a := s.AddVertex(rec("x", 1))
	b := s.AddVertex(rec("y", 1))
	require.NoError(t, s.AddEdge(a, b, 3))

	view := s.Graph()
	_, mutable := any(view).(interface {
		AddVertex(metadata.Record) core.VertexID
	})
	assert.False(t, mutable)
	_, mutable = any(view).(interface{ SetPathID(core.PathID) error })
	assert.False(t, mutable)

	attrs, ok := view.Attrs(b)
	require.True(t, ok)
	assert.True(t, attrs.Equal(rec("y", 1)))
	assert.Equal(t, 2, view.NumVertices())
	assert.Equal(t, 1, view.NumEdges())
	assert.Equal(t, core.PathID(3), view.MaxPathID())
	assert.Len(t, view.EdgesOf(a, Forward), 1)

	ids, ok := view.PathIDs(a, b)
	require.True(t, ok)
	assert.Equal(t, []core.PathID{3}, ids.IDs())

	// The view follows later mutations and never bypasses the index.
	c, _ := s.GetOrCreate(rec("x", 2))
	_, ok = view.Attrs(c)
	assert.True(t, ok)
	require.NoError(t, s.CheckInvariants())
}

func TestStore_BulkLogging(t *testing.T) {
	var buf bytes.Buffer
	s := New(WithLogger(NewLogger(slog.NewJSONHandler(&buf, nil))))

	x := metadata.MustTemplate(metadata.Col("x", metadata.Ints(1, 2)...))
	y := metadata.MustTemplate(metadata.Col("y", metadata.Ints(1, 4)...))
	_, err := s.AddDerivedValues(context.Background(), x, y)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"msg":"bulk insert completed"`)
	assert.Contains(t, buf.String(), `"count":2`)
	assert.NotContains(t, buf.String(), `"msg":"chain inserted"`, "per-chain events are debug level")
}
