package provgraph

import (
	"context"
	"iter"
	"strings"

	"github.com/hupe1980/provgraph/codec"
	"github.com/hupe1980/provgraph/core"
	"github.com/hupe1980/provgraph/graph"
	"github.com/hupe1980/provgraph/index"
	"github.com/hupe1980/provgraph/metadata"
	"github.com/hupe1980/provgraph/pathset"
)

// Direction selects which edges of a vertex are followed.
type Direction = graph.Direction

const (
	// Forward follows out-edges.
	Forward = graph.Forward
	// Backward follows in-edges.
	Backward = graph.Backward
)

// Chain is a dependency chain: an ordered list of attribute records from a
// root input to a derived output. Inserted, it becomes a directed walk whose
// edges all carry the chain's path id.
type Chain []metadata.Record

// NewChain builds a chain from records, root first.
func NewChain(records ...metadata.Record) Chain {
	return Chain(records)
}

// String renders the chain as (P=1,) -> (alg="alg1",).
func (c Chain) String() string {
	var sb strings.Builder
	for i, r := range c {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		sb.WriteString(r.String())
	}
	return sb.String()
}

// Store is a path-indexed attributed graph.
//
// Mutating methods (everything that adds vertices, edges, indices or moves
// the path counter) must be serialized by the caller. Read methods may run
// concurrently with each other, which is what WalkPaths relies on.
type Store struct {
	g   *graph.Graph
	idx *index.Index

	codec           codec.Codec
	metrics         MetricsCollector
	logger          *Logger
	walkConcurrency int
}

// New creates an empty store.
func New(optFns ...Option) *Store {
	o := applyOptions(optFns)

	s := &Store{
		g:               graph.NewWithCounter(graph.NewPathCounter(o.firstPathID)),
		idx:             index.New(),
		codec:           o.codec,
		metrics:         o.metricsCollector,
		logger:          o.logger,
		walkConcurrency: o.walkConcurrency,
	}
	for _, key := range o.indexKeys {
		s.DeclareIndex(key)
	}
	return s
}

// Graph returns a read-only view of the underlying property store.
// Mutations go through the Store so the indices stay in sync.
func (s *Store) Graph() GraphView { return GraphView{g: s.g} }

// GraphView exposes the read side of the property store. It reflects later
// mutations of its Store.
type GraphView struct {
	g *graph.Graph
}

// Attrs returns the record stored on v.
func (v GraphView) Attrs(id core.VertexID) (metadata.Record, bool) { return v.g.Attrs(id) }

// Vertices iterates all vertices in id order.
func (v GraphView) Vertices() iter.Seq2[core.VertexID, metadata.Record] { return v.g.Vertices() }

// Edges iterates all edges in creation order.
func (v GraphView) Edges() iter.Seq[*graph.Edge] { return v.g.Edges() }

// EdgesOf returns the out-edges (Forward) or in-edges (Backward) of id.
// The returned slice must not be modified.
func (v GraphView) EdgesOf(id core.VertexID, dir Direction) []*graph.Edge {
	return v.g.EdgesOf(id, dir)
}

// PathIDs returns a copy of the path ids carried by src->dst.
func (v GraphView) PathIDs(src, dst core.VertexID) (*pathset.Set, bool) { return v.g.PathIDs(src, dst) }

// NumVertices returns the number of vertices.
func (v GraphView) NumVertices() int { return v.g.NumVertices() }

// NumEdges returns the number of edges.
func (v GraphView) NumEdges() int { return v.g.NumEdges() }

// MaxPathID returns the largest path id stored on any edge, or 0.
func (v GraphView) MaxPathID() core.PathID { return v.g.MaxPathID() }

// AddVertex stores rec as a new vertex without looking it up first.
// Most callers want GetOrCreate.
func (s *Store) AddVertex(rec metadata.Record) core.VertexID {
	id := s.g.AddVertex(rec)
	s.idx.Add(id, rec)
	return id
}

// AddEdge tags src->dst with id, creating the edge if needed.
func (s *Store) AddEdge(src, dst core.VertexID, id core.PathID) error {
	_, err := s.g.AddEdge(src, dst, id)
	return err
}

// Attrs returns the record stored on v.
func (s *Store) Attrs(v core.VertexID) (metadata.Record, bool) { return s.g.Attrs(v) }

// OutNeighbors returns the destinations of v's out-edges.
func (s *Store) OutNeighbors(v core.VertexID) []core.VertexID { return s.g.OutNeighbors(v) }

// InNeighbors returns the sources of v's in-edges.
func (s *Store) InNeighbors(v core.VertexID) []core.VertexID { return s.g.InNeighbors(v) }

// PathIDs returns a copy of the path ids carried by src->dst.
func (s *Store) PathIDs(src, dst core.VertexID) (*pathset.Set, bool) { return s.g.PathIDs(src, dst) }

// NumVertices returns the number of vertices.
func (s *Store) NumVertices() int { return s.g.NumVertices() }

// NumEdges returns the number of edges.
func (s *Store) NumEdges() int { return s.g.NumEdges() }

// Vertices iterates all vertices in id order.
func (s *Store) Vertices() iter.Seq2[core.VertexID, metadata.Record] { return s.g.Vertices() }

// Edges iterates all edges in creation order.
func (s *Store) Edges() iter.Seq[*graph.Edge] { return s.g.Edges() }

// DeclareIndex registers key as indexed and indexes the vertices that
// already carry it. It reports whether key was newly declared.
func (s *Store) DeclareIndex(key string) bool {
	if !s.idx.Declare(key, s.g) {
		return false
	}
	s.logger.LogIndexDeclared(context.Background(), key, s.g.NumVertices())
	return true
}

// IndexedKeys returns the declared index keys in declaration order.
func (s *Store) IndexedKeys() []string { return s.idx.Keys() }

// Lookup returns the vertex holding a record equal to rec.
func (s *Store) Lookup(rec metadata.Record) (core.VertexID, bool) {
	id, _, ok := s.idx.Lookup(s.g, rec)
	s.metrics.RecordLookup(ok)
	return id, ok
}

// VertexOf is like Lookup but reports a miss as an error matching ErrNotFound.
func (s *Store) VertexOf(rec metadata.Record) (core.VertexID, error) {
	id, ok := s.Lookup(rec)
	if !ok {
		return core.NoVertex, &RecordNotFoundError{Record: rec.String()}
	}
	return id, nil
}

// GetOrCreate returns the vertex holding rec, creating it on a miss.
// Calling it twice with equal records never creates a second vertex.
func (s *Store) GetOrCreate(rec metadata.Record) (id core.VertexID, created bool) {
	if id, ok := s.Lookup(rec); ok {
		return id, false
	}
	return s.AddVertex(rec), true
}

// NextPathID consumes a fresh path id.
func (s *Store) NextPathID() core.PathID { return s.g.NextPathID() }

// PeekPathID returns the next unused path id without consuming it.
func (s *Store) PeekPathID() core.PathID { return s.g.PeekPathID() }

// SetPathID moves the path counter. It refuses ids at or below the largest
// id already stored on an edge.
func (s *Store) SetPathID(id core.PathID) error { return s.g.SetPathID(id) }
