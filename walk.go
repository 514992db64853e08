package provgraph

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/provgraph/core"
	"github.com/hupe1980/provgraph/metadata"
	"golang.org/x/sync/errgroup"
)

// StopFunc ends a walk at v when it returns true. A nil StopFunc never stops;
// the walk then runs until no compatible neighbor is left.
//
// StopFunc is also where a caller needing bounded latency checks a deadline.
type StopFunc func(v core.VertexID) bool

// VisitFunc is called for each vertex a walk passes through, with the walked
// path id and v's neighbors in the walk direction.
//
// During WalkPaths visits for different ids run concurrently. A VisitFunc may
// only write to state owned by the caller and partitioned by path id (for
// example one slot per id); it must never mutate the Store.
type VisitFunc func(id core.PathID, v core.VertexID, neighbors []core.VertexID)

// WalkPath walks path id from start in dir and returns the vertex it ends on.
//
// At each vertex the walk stops if stop holds; otherwise it calls visit and
// moves to the first neighbor that belongs to the path. Forward, a neighbor
// belongs to the path when OnPath holds for it; backward, when the edge
// leading back to it carries id. With no such neighbor the walk ends at the
// current vertex.
//
// Backward steps do not use OnPath. OnPath inspects a vertex's in-edges, and
// a path's root has none, so the backward rule checks the traversed edge
// instead; otherwise a backward walk could never reach the root.
func (s *Store) WalkPath(ctx context.Context, id core.PathID, start core.VertexID, dir Direction, stop StopFunc, visit VisitFunc) (core.VertexID, error) {
	begin := time.Now()
	v, err := s.walk(ctx, id, start, dir, stop, visit)
	s.metrics.RecordWalk(1, time.Since(begin), err)
	s.logger.LogWalk(ctx, 1, err)
	return v, err
}

// WalkPaths runs one independent WalkPath per id, in parallel, and returns
// the end vertices in the order of ids. The first failing walk cancels the
// others and its error is returned.
func (s *Store) WalkPaths(ctx context.Context, ids []core.PathID, start core.VertexID, dir Direction, stop StopFunc, visit VisitFunc) ([]core.VertexID, error) {
	begin := time.Now()

	results := make([]core.VertexID, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.walkConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			v, err := s.walk(gctx, id, start, dir, stop, visit)
			results[i] = v
			return err
		})
	}
	err := g.Wait()

	s.metrics.RecordWalk(len(ids), time.Since(begin), err)
	s.logger.LogWalk(ctx, len(ids), err)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Store) walk(ctx context.Context, id core.PathID, start core.VertexID, dir Direction, stop StopFunc, visit VisitFunc) (core.VertexID, error) {
	if !s.g.HasVertex(start) {
		return core.NoVertex, fmt.Errorf("walk start %d: %w", start, ErrNotFound)
	}

	limit := s.g.NumVertices()
	v := start
	for steps := 0; ; steps++ {
		if err := ctx.Err(); err != nil {
			return v, err
		}
		if stop != nil && stop(v) {
			return v, nil
		}
		if visit != nil {
			visit(id, v, s.g.Neighbors(v, dir))
		}

		next := core.NoVertex
		for _, e := range s.g.EdgesOf(v, dir) {
			n := e.Endpoint(dir)
			if dir == Forward && s.onPathID(n, id) || dir == Backward && e.Carries(id) {
				next = n
				break
			}
		}
		if next == core.NoVertex {
			return v, nil
		}
		if steps >= limit {
			return v, fmt.Errorf("path %d: %w", id, ErrCycle)
		}
		v = next
	}
}

// PathVertices returns the vertices of path id from its root to its leaf.
// It returns nil if no edge carries id.
func (s *Store) PathVertices(id core.PathID) []core.VertexID {
	hasIn := make(map[core.VertexID]bool)
	var sources []core.VertexID
	for e := range s.g.Edges() {
		if e.Carries(id) {
			sources = append(sources, e.Src())
			hasIn[e.Dst()] = true
		}
	}
	if len(sources) == 0 {
		return nil
	}

	root := sources[0]
	for _, src := range sources {
		if !hasIn[src] {
			root = src
			break
		}
	}

	seen := map[core.VertexID]bool{root: true}
	out := []core.VertexID{root}
	for v := root; ; {
		next := core.NoVertex
		for _, e := range s.g.OutEdges(v) {
			if e.Carries(id) && !seen[e.Dst()] {
				next = e.Dst()
				break
			}
		}
		if next == core.NoVertex {
			return out
		}
		seen[next] = true
		out = append(out, next)
		v = next
	}
}

// PathMembers returns every vertex belonging to at least one of ids, in
// ascending id order.
func (s *Store) PathMembers(ids ...core.PathID) []core.VertexID {
	members := roaring.New()
	for _, id := range ids {
		for _, v := range s.PathVertices(id) {
			members.Add(uint32(v))
		}
	}
	out := make([]core.VertexID, 0, members.GetCardinality())
	it := members.Iterator()
	for it.HasNext() {
		out = append(out, core.VertexID(it.Next()))
	}
	return out
}

// FinalNeighbors returns the leaf vertices of every path running through all
// records of chain: each such path is walked forward from the chain's last
// record to its end. Leaves are returned in path id order, without duplicates.
func (s *Store) FinalNeighbors(ctx context.Context, chain Chain) ([]core.VertexID, error) {
	if len(chain) == 0 {
		return nil, ErrEmptyChain
	}
	ids := s.ChainPaths(chain, Forward)
	if ids.IsEmpty() {
		return nil, nil
	}
	last, err := s.VertexOf(chain[len(chain)-1])
	if err != nil {
		return nil, err
	}

	ends, err := s.WalkPaths(ctx, ids.IDs(), last, Forward, nil, nil)
	if err != nil {
		return nil, err
	}

	out := make([]core.VertexID, 0, len(ends))
	for _, v := range ends {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out, nil
}

// CollectValues returns the key attribute of each vertex, in order.
// Vertices without key are skipped.
func (s *Store) CollectValues(vertices []core.VertexID, key string) []metadata.Value {
	out := make([]metadata.Value, 0, len(vertices))
	for _, v := range vertices {
		rec, ok := s.g.Attrs(v)
		if !ok {
			continue
		}
		if val, ok := rec.Get(key); ok {
			out = append(out, val)
		}
	}
	return out
}
