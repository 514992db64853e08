package provgraph

import "fmt"

// CheckInvariants verifies the structural invariants of the store and
// returns an *InvariantError for the first violation found:
//
//   - every edge carries at least one path id
//   - the path counter is above every id stored on an edge
//   - every edge is listed once in its source's out-edges and once in its
//     destination's in-edges
//   - the secondary indices agree with the vertex records
func (s *Store) CheckInvariants() error {
	next := s.g.PeekPathID()
	for e := range s.g.Edges() {
		if e.NumPaths() == 0 {
			return &InvariantError{
				Invariant: "non-empty edge",
				Detail:    fmt.Sprintf("edge %d->%d has no path ids", e.Src(), e.Dst()),
			}
		}
		if maxID, _ := e.PathIDs().Max(); maxID >= next {
			return &InvariantError{
				Invariant: "counter above edge ids",
				Detail:    fmt.Sprintf("edge %d->%d carries %d, counter is %d", e.Src(), e.Dst(), maxID, next),
			}
		}
		if n := count(s.g.OutEdges(e.Src()), e); n != 1 {
			return &InvariantError{
				Invariant: "adjacency",
				Detail:    fmt.Sprintf("edge %d->%d listed %d times in out-edges", e.Src(), e.Dst(), n),
			}
		}
		if n := count(s.g.InEdges(e.Dst()), e); n != 1 {
			return &InvariantError{
				Invariant: "adjacency",
				Detail:    fmt.Sprintf("edge %d->%d listed %d times in in-edges", e.Src(), e.Dst(), n),
			}
		}
	}
	if err := s.idx.Verify(s.g); err != nil {
		return &InvariantError{Invariant: "index", Detail: err.Error()}
	}
	return nil
}

func count[T comparable](xs []T, x T) int {
	n := 0
	for _, y := range xs {
		if y == x {
			n++
		}
	}
	return n
}
