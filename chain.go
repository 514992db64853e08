package provgraph

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/provgraph/core"
	"github.com/hupe1980/provgraph/pathset"
)

// Dependency is the result of WalkDependency: how far a chain already exists
// in the store and along which paths.
type Dependency struct {
	// Reached is the index in the chain of the last record reached, or -1 if
	// the chain's root is not in the store.
	Reached int
	// Vertex is the vertex of chain[Reached], or core.NoVertex.
	Vertex core.VertexID
	// Paths are the path ids compatible with every link walked so far.
	Paths *pathset.Set
}

// Found reports whether the root of the chain exists.
func (d Dependency) Found() bool { return d.Reached >= 0 }

// WalkDependency follows chain through edges that already exist.
//
// The walk starts at the root with every path touching it as the compatible
// set, then for each link intersects that set with the link's edge. It stops
// at the first record that is absent, not linked to the previous one, or only
// linked along incompatible paths.
func (s *Store) WalkDependency(chain Chain) (Dependency, error) {
	if len(chain) == 0 {
		return Dependency{}, ErrEmptyChain
	}

	root, ok := s.Lookup(chain[0])
	if !ok {
		return Dependency{Reached: -1, Vertex: core.NoVertex, Paths: pathset.New()}, nil
	}

	compat := pathset.Union(s.PathsThrough(root, Forward), s.PathsThrough(root, Backward))
	dep := Dependency{Reached: 0, Vertex: root, Paths: compat}

	for i := 1; i < len(chain); i++ {
		next, ok := s.Lookup(chain[i])
		if !ok {
			break
		}
		e, ok := s.g.Edge(dep.Vertex, next)
		if !ok || !e.Intersects(dep.Paths) {
			break
		}
		dep.Paths.And(e.PathIDs())
		dep.Reached = i
		dep.Vertex = next
	}
	return dep, nil
}

// NextID decides which path id inserting chain should use.
//
// If the chain attaches to the store at a vertex with out-edges, or does not
// attach at all, the result is the singleton holding the next unused id: a
// new path starts. If it attaches at a dead end, the ids carried by the
// dead end's in-edges that are compatible with the walked chain are returned,
// so appending to a path that ended there continues it. More than one
// returned id means several paths converge at the dead end; the caller has to
// choose.
//
// The result is never empty.
func (s *Store) NextID(chain Chain) (*pathset.Set, error) {
	dep, err := s.WalkDependency(chain)
	if err != nil {
		return nil, err
	}
	if !dep.Found() || !s.g.IsDeadEnd(dep.Vertex) {
		return pathset.Of(s.g.PeekPathID()), nil
	}

	candidates := pathset.New()
	for _, e := range s.g.InEdges(dep.Vertex) {
		if e.Intersects(dep.Paths) {
			ids := e.PathIDs()
			ids.And(dep.Paths)
			candidates.Or(ids)
		}
	}
	if candidates.IsEmpty() {
		return pathset.Of(s.g.PeekPathID()), nil
	}
	return candidates, nil
}

// AddNodes inserts chain under path id, creating missing vertices and edges,
// and returns the chain's vertices root first.
//
// Every link of the chain gets id added to its edge. The path counter is
// moved past id, so a later new path never reuses it. A single-record chain
// has no links: its vertex is created but no id is consumed.
func (s *Store) AddNodes(ctx context.Context, chain Chain, id core.PathID) (vertices []core.VertexID, err error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordChainInsert(time.Since(start), err)
		s.logger.WithPath(id).LogChainInsert(ctx, len(chain), err)
	}()

	if len(chain) == 0 {
		return nil, ErrEmptyChain
	}
	if id == 0 {
		return nil, ErrInvalidPathID
	}

	vertices = make([]core.VertexID, len(chain))
	for i, rec := range chain {
		vertices[i], _ = s.GetOrCreate(rec)
	}

	for i := 1; i < len(vertices); i++ {
		if _, err := s.g.AddEdge(vertices[i-1], vertices[i], id); err != nil {
			return nil, fmt.Errorf("link %d of chain: %w", i, err)
		}
	}
	return vertices, nil
}

// AddChain inserts chain with the id chosen by NextID: it continues the path
// that ends where chain attaches, or starts a new one.
//
// A single-record chain has no links to tag: its vertex is created and the
// returned id is 0.
//
// If NextID is ambiguous nothing is inserted and an
// *AmbiguousContinuationError listing the candidates is returned; pass the
// chosen id to AddNodes to resolve it.
func (s *Store) AddChain(ctx context.Context, chain Chain) (core.PathID, []core.VertexID, error) {
	if len(chain) == 1 {
		v, _ := s.GetOrCreate(chain[0])
		return 0, []core.VertexID{v}, nil
	}

	ids, err := s.NextID(chain)
	if err != nil {
		return 0, nil, err
	}

	id, ok := ids.Single()
	if !ok {
		candidates := ids.IDs()
		s.logger.LogAmbiguous(ctx, candidates)
		return 0, nil, &AmbiguousContinuationError{Candidates: candidates}
	}

	if id == s.g.PeekPathID() {
		s.g.NextPathID()
	}
	vertices, err := s.AddNodes(ctx, chain, id)
	if err != nil {
		return 0, nil, err
	}
	return id, vertices, nil
}
