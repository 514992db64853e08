package provgraph

import (
	"github.com/hupe1980/provgraph/core"
	"github.com/hupe1980/provgraph/pathset"
)

// PathsThrough returns the union of the path-id sets on v's out-edges
// (Forward) or in-edges (Backward). It is empty for core.NoVertex, for
// unknown vertices, and for vertices without edges in dir.
func (s *Store) PathsThrough(v core.VertexID, dir Direction) *pathset.Set {
	out := pathset.New()
	for _, e := range s.g.EdgesOf(v, dir) {
		e.UnionInto(out)
	}
	return out
}

// ChainPaths returns the path ids common to every record of chain: the
// intersection of PathsThrough over the chain's vertices. A chain only
// exists along the ids shared by all of its members, so a chain with a
// record that is not in the store yields the empty set.
func (s *Store) ChainPaths(chain Chain, dir Direction) *pathset.Set {
	if len(chain) == 0 {
		return pathset.New()
	}
	var acc *pathset.Set
	for _, rec := range chain {
		v, ok := s.Lookup(rec)
		if !ok {
			return pathset.New()
		}
		through := s.PathsThrough(v, dir)
		if acc == nil {
			acc = through
		} else {
			acc.And(through)
		}
		if acc.IsEmpty() {
			break
		}
	}
	return acc
}

// OnPath reports whether v belongs to any path of paths: whether at least one
// edge entering v is tagged with one of them. Out-edges are never examined,
// so membership is a forward-only notion and a root vertex is on no path.
func (s *Store) OnPath(v core.VertexID, paths *pathset.Set) bool {
	if paths.IsEmpty() {
		return false
	}
	for _, e := range s.g.InEdges(v) {
		if e.Intersects(paths) {
			return true
		}
	}
	return false
}

// onPathID is OnPath for a single id.
func (s *Store) onPathID(v core.VertexID, id core.PathID) bool {
	for _, e := range s.g.InEdges(v) {
		if e.Carries(id) {
			return true
		}
	}
	return false
}
