// Package pathset implements sets of path identifiers.
//
// A Set wraps a 32-bit roaring bitmap. Edge path-id sets, the union of paths
// through a vertex, and the intersection along a dependency chain are all Sets,
// so the path algebra reduces to bitmap And/Or.
package pathset

import (
	"iter"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/provgraph/core"
)

// Set is a set of path ids. The zero value is not usable; use New or Of.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// Of creates a set holding ids.
func Of(ids ...core.PathID) *Set {
	s := New()
	for _, id := range ids {
		s.rb.Add(uint32(id))
	}
	return s
}

// Add adds id to the set. It reports whether id was newly added.
func (s *Set) Add(id core.PathID) bool {
	return s.rb.CheckedAdd(uint32(id))
}

// Contains reports whether id is in the set.
func (s *Set) Contains(id core.PathID) bool {
	return s.rb.Contains(uint32(id))
}

// IsEmpty returns true if the set is empty. A nil set is empty.
func (s *Set) IsEmpty() bool {
	return s == nil || s.rb.IsEmpty()
}

// Len returns the number of ids in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return int(s.rb.GetCardinality())
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	if s == nil {
		return New()
	}
	return &Set{rb: s.rb.Clone()}
}

// Max returns the largest id. ok is false for an empty set.
func (s *Set) Max() (id core.PathID, ok bool) {
	if s.IsEmpty() {
		return 0, false
	}
	return core.PathID(s.rb.Maximum()), true
}

// Single returns the only id of a singleton set.
func (s *Set) Single() (core.PathID, bool) {
	if s.Len() != 1 {
		return 0, false
	}
	return core.PathID(s.rb.Minimum()), true
}

// All iterates the ids in ascending order.
func (s *Set) All() iter.Seq[core.PathID] {
	return func(yield func(core.PathID) bool) {
		if s == nil {
			return
		}
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(core.PathID(it.Next())) {
				return
			}
		}
	}
}

// IDs returns the ids in ascending order.
func (s *Set) IDs() []core.PathID {
	out := make([]core.PathID, 0, s.Len())
	for id := range s.All() {
		out = append(out, id)
	}
	return out
}

// Or adds every id of other to s (in-place union).
func (s *Set) Or(other *Set) {
	if other == nil {
		return
	}
	s.rb.Or(other.rb)
}

// And keeps only the ids also in other (in-place intersection).
// A nil other empties s.
func (s *Set) And(other *Set) {
	if other == nil {
		s.rb.Clear()
		return
	}
	s.rb.And(other.rb)
}

// Intersects reports whether s and other share at least one id.
func (s *Set) Intersects(other *Set) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return false
	}
	return s.rb.Intersects(other.rb)
}

// Equal reports whether both sets hold the same ids.
func (s *Set) Equal(other *Set) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return s.IsEmpty() == other.IsEmpty()
	}
	return s.rb.Equals(other.rb)
}

// Clear removes all ids.
func (s *Set) Clear() {
	s.rb.Clear()
}

// String renders the set as {1, 2, 3}.
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	i := 0
	for id := range s.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatUint(uint64(id), 10))
		i++
	}
	sb.WriteByte('}')
	return sb.String()
}

// Union returns a new set holding the ids of every input set.
func Union(sets ...*Set) *Set {
	out := New()
	for _, s := range sets {
		out.Or(s)
	}
	return out
}

// Intersect returns a new set holding the ids common to every input set.
// The intersection of no sets is empty.
func Intersect(sets ...*Set) *Set {
	if len(sets) == 0 {
		return New()
	}
	out := sets[0].Clone()
	for _, s := range sets[1:] {
		out.And(s)
	}
	return out
}
