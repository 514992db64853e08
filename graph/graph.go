package graph

import (
	"fmt"
	"iter"

	"github.com/hupe1980/provgraph/core"
	"github.com/hupe1980/provgraph/metadata"
	"github.com/hupe1980/provgraph/pathset"
)

// Direction selects which edges of a vertex are considered.
type Direction uint8

const (
	// Forward follows out-edges.
	Forward Direction = iota
	// Backward follows in-edges.
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Edge is a directed arc carrying a set of path ids.
type Edge struct {
	src   core.VertexID
	dst   core.VertexID
	paths *pathset.Set
}

// Src returns the source vertex.
func (e *Edge) Src() core.VertexID { return e.src }

// Dst returns the destination vertex.
func (e *Edge) Dst() core.VertexID { return e.dst }

// Endpoint returns the vertex at the far end when the edge is followed in dir.
func (e *Edge) Endpoint(dir Direction) core.VertexID {
	if dir == Forward {
		return e.dst
	}
	return e.src
}

// PathIDs returns a copy of the edge's path-id set.
func (e *Edge) PathIDs() *pathset.Set { return e.paths.Clone() }

// Carries reports whether the edge is tagged with id.
func (e *Edge) Carries(id core.PathID) bool { return e.paths.Contains(id) }

// Intersects reports whether the edge is tagged with any id of s.
func (e *Edge) Intersects(s *pathset.Set) bool { return e.paths.Intersects(s) }

// UnionInto adds the edge's path ids to dst.
func (e *Edge) UnionInto(dst *pathset.Set) { dst.Or(e.paths) }

// NumPaths returns the number of path ids on the edge.
func (e *Edge) NumPaths() int { return e.paths.Len() }

type edgeKey struct {
	src, dst core.VertexID
}

// Graph is a directed attributed graph with path-tagged edges.
type Graph struct {
	// Per-vertex storage, indexed by VertexID-1.
	records []metadata.Record
	out     [][]*Edge
	in      [][]*Edge

	edges    map[edgeKey]*Edge
	edgeList []*Edge // creation order

	counter *PathCounter
	maxPath core.PathID
}

// New creates an empty graph whose path counter starts at core.FirstPathID.
func New() *Graph {
	return NewWithCounter(NewPathCounter(core.FirstPathID))
}

// NewWithCounter creates an empty graph that hands out ids from counter.
func NewWithCounter(counter *PathCounter) *Graph {
	if counter == nil {
		counter = NewPathCounter(core.FirstPathID)
	}
	return &Graph{
		edges:   make(map[edgeKey]*Edge),
		counter: counter,
	}
}

// AddVertex stores a new vertex and returns its id. Ids start at 1.
//
// The graph does not deduplicate records; callers look up before inserting.
func (g *Graph) AddVertex(rec metadata.Record) core.VertexID {
	g.records = append(g.records, rec.Clone())
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	return core.VertexID(len(g.records))
}

// HasVertex reports whether v exists.
func (g *Graph) HasVertex(v core.VertexID) bool {
	return v != core.NoVertex && int(v) <= len(g.records)
}

// Attrs returns the record stored on v.
func (g *Graph) Attrs(v core.VertexID) (metadata.Record, bool) {
	if !g.HasVertex(v) {
		return metadata.Record{}, false
	}
	return g.records[v-1], true
}

// NumVertices returns the number of vertices.
func (g *Graph) NumVertices() int { return len(g.records) }

// NumEdges returns the number of edges. Parallel edges count once.
func (g *Graph) NumEdges() int { return len(g.edgeList) }

// AddEdge tags the edge src->dst with id, creating the edge if needed.
// It reports whether a new edge was created.
func (g *Graph) AddEdge(src, dst core.VertexID, id core.PathID) (bool, error) {
	if id == 0 {
		return false, ErrInvalidPathID
	}
	if !g.HasVertex(src) {
		return false, vertexNotFound(src)
	}
	if !g.HasVertex(dst) {
		return false, vertexNotFound(dst)
	}

	g.reserve(id)

	key := edgeKey{src: src, dst: dst}
	if e, ok := g.edges[key]; ok {
		e.paths.Add(id)
		return false, nil
	}

	e := &Edge{src: src, dst: dst, paths: pathset.Of(id)}
	g.edges[key] = e
	g.edgeList = append(g.edgeList, e)
	g.out[src-1] = append(g.out[src-1], e)
	g.in[dst-1] = append(g.in[dst-1], e)
	return true, nil
}

func (g *Graph) reserve(id core.PathID) {
	g.counter.Reserve(id)
	if id > g.maxPath {
		g.maxPath = id
	}
}

// Edge returns the edge src->dst.
func (g *Graph) Edge(src, dst core.VertexID) (*Edge, bool) {
	e, ok := g.edges[edgeKey{src: src, dst: dst}]
	return e, ok
}

// PathIDs returns a copy of the path ids on src->dst.
func (g *Graph) PathIDs(src, dst core.VertexID) (*pathset.Set, bool) {
	e, ok := g.Edge(src, dst)
	if !ok {
		return nil, false
	}
	return e.PathIDs(), true
}

// OutEdges returns the out-edges of v in creation order.
// The returned slice must not be modified.
func (g *Graph) OutEdges(v core.VertexID) []*Edge {
	if !g.HasVertex(v) {
		return nil
	}
	return g.out[v-1]
}

// InEdges returns the in-edges of v in creation order.
// The returned slice must not be modified.
func (g *Graph) InEdges(v core.VertexID) []*Edge {
	if !g.HasVertex(v) {
		return nil
	}
	return g.in[v-1]
}

// EdgesOf returns the out-edges (Forward) or in-edges (Backward) of v.
func (g *Graph) EdgesOf(v core.VertexID, dir Direction) []*Edge {
	if dir == Forward {
		return g.OutEdges(v)
	}
	return g.InEdges(v)
}

// OutNeighbors returns the destinations of v's out-edges.
func (g *Graph) OutNeighbors(v core.VertexID) []core.VertexID {
	return g.Neighbors(v, Forward)
}

// InNeighbors returns the sources of v's in-edges.
func (g *Graph) InNeighbors(v core.VertexID) []core.VertexID {
	return g.Neighbors(v, Backward)
}

// Neighbors returns v's neighbors in dir, in edge creation order.
func (g *Graph) Neighbors(v core.VertexID, dir Direction) []core.VertexID {
	edges := g.EdgesOf(v, dir)
	if len(edges) == 0 {
		return nil
	}
	out := make([]core.VertexID, len(edges))
	for i, e := range edges {
		out[i] = e.Endpoint(dir)
	}
	return out
}

// IsDeadEnd reports whether v has no out-edges.
func (g *Graph) IsDeadEnd(v core.VertexID) bool {
	return len(g.OutEdges(v)) == 0
}

// Vertices iterates all vertices in id order.
func (g *Graph) Vertices() iter.Seq2[core.VertexID, metadata.Record] {
	return func(yield func(core.VertexID, metadata.Record) bool) {
		for i, rec := range g.records {
			if !yield(core.VertexID(i+1), rec) {
				return
			}
		}
	}
}

// Edges iterates all edges in creation order.
func (g *Graph) Edges() iter.Seq[*Edge] {
	return func(yield func(*Edge) bool) {
		for _, e := range g.edgeList {
			if !yield(e) {
				return
			}
		}
	}
}

// NextPathID consumes a fresh path id.
func (g *Graph) NextPathID() core.PathID { return g.counter.Next() }

// PeekPathID returns the next unused path id without consuming it.
func (g *Graph) PeekPathID() core.PathID { return g.counter.Peek() }

// MaxPathID returns the largest path id stored on any edge, or 0.
func (g *Graph) MaxPathID() core.PathID { return g.maxPath }

// SetPathID moves the counter to id. The counter may not be moved to or
// below an id already stored on an edge.
func (g *Graph) SetPathID(id core.PathID) error {
	if id == 0 || id <= g.maxPath {
		return fmt.Errorf("%w: %d (largest stored id is %d)", ErrInvalidPathID, id, g.maxPath)
	}
	g.counter.Set(id)
	return nil
}
