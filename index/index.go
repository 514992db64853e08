package index

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/provgraph/core"
	"github.com/hupe1980/provgraph/metadata"
)

// Source is the vertex store an Index resolves candidates against.
type Source interface {
	Attrs(v core.VertexID) (metadata.Record, bool)
	Vertices() iter.Seq2[core.VertexID, metadata.Record]
}

// Strategy reports how a lookup was answered.
type Strategy uint8

const (
	// StrategyScan means no declared key was present and the source was scanned.
	StrategyScan Strategy = iota
	// StrategyIndex means the posting list of a declared key was consulted.
	StrategyIndex
)

// String returns the strategy name.
func (s Strategy) String() string {
	if s == StrategyIndex {
		return "index"
	}
	return "scan"
}

// Index maps declared attribute values to vertex ids.
//
// Index is not safe for concurrent mutation.
type Index struct {
	keys     []string // declaration order
	postings map[string]map[string]*roaring.Bitmap
}

// New creates an index with the given keys declared.
func New(keys ...string) *Index {
	ix := &Index{postings: make(map[string]map[string]*roaring.Bitmap)}
	for _, k := range keys {
		ix.Declare(k, nil)
	}
	return ix
}

// Declare registers key as indexed. It reports whether key was newly declared.
//
// If src is non-nil, vertices already in src that carry key are indexed
// immediately; vertices added later are indexed through Add.
func (ix *Index) Declare(key string, src Source) bool {
	if ix.IsIndexed(key) {
		return false
	}
	ix.keys = append(ix.keys, key)
	ix.postings[key] = make(map[string]*roaring.Bitmap)

	if src != nil {
		for id, rec := range src.Vertices() {
			if v, ok := rec.Get(key); ok {
				ix.addPosting(key, v, id)
			}
		}
	}
	return true
}

// IsIndexed reports whether key has been declared.
func (ix *Index) IsIndexed(key string) bool {
	_, ok := ix.postings[key]
	return ok
}

// Keys returns the declared keys in declaration order.
func (ix *Index) Keys() []string {
	return append([]string(nil), ix.keys...)
}

// Add indexes vertex id under every declared key present in rec.
func (ix *Index) Add(id core.VertexID, rec metadata.Record) {
	for k, v := range rec.Fields() {
		if ix.IsIndexed(k) {
			ix.addPosting(k, v, id)
		}
	}
}

func (ix *Index) addPosting(key string, v metadata.Value, id core.VertexID) {
	vm := ix.postings[key]
	vk := v.Key()
	bm, ok := vm[vk]
	if !ok {
		bm = roaring.New()
		vm[vk] = bm
	}
	bm.Add(uint32(id))
}

// Plan returns the declared key a lookup of rec would consult: the first
// field of rec, in field order, whose key is declared.
func (ix *Index) Plan(rec metadata.Record) (key string, ok bool) {
	for k := range rec.Fields() {
		if ix.IsIndexed(k) {
			return k, true
		}
	}
	return "", false
}

// Postings returns the ids of vertices whose key attribute equals v,
// in ascending order.
func (ix *Index) Postings(key string, v metadata.Value) []core.VertexID {
	bm := ix.postings[key][v.Key()]
	if bm == nil {
		return nil
	}
	out := make([]core.VertexID, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, core.VertexID(it.Next()))
	}
	return out
}

// Lookup finds a vertex of src whose record equals rec.
func (ix *Index) Lookup(src Source, rec metadata.Record) (core.VertexID, Strategy, bool) {
	if key, ok := ix.Plan(rec); ok {
		v, _ := rec.Get(key)
		for _, id := range ix.Postings(key, v) {
			if cand, ok := src.Attrs(id); ok && cand.Equal(rec) {
				return id, StrategyIndex, true
			}
		}
		return core.NoVertex, StrategyIndex, false
	}

	for id, cand := range src.Vertices() {
		if cand.Equal(rec) {
			return id, StrategyScan, true
		}
	}
	return core.NoVertex, StrategyScan, false
}

// Verify checks that every vertex of src carrying a declared key is present
// in the matching posting list and that no posting points at a vertex with a
// different value.
func (ix *Index) Verify(src Source) error {
	for id, rec := range src.Vertices() {
		for _, key := range ix.keys {
			v, ok := rec.Get(key)
			if !ok {
				continue
			}
			bm := ix.postings[key][v.Key()]
			if bm == nil || !bm.Contains(uint32(id)) {
				return fmt.Errorf("vertex %d missing from index %q", id, key)
			}
		}
	}
	for key, vm := range ix.postings {
		for vk, bm := range vm {
			it := bm.Iterator()
			for it.HasNext() {
				id := core.VertexID(it.Next())
				rec, ok := src.Attrs(id)
				if !ok {
					return fmt.Errorf("index %q references unknown vertex %d", key, id)
				}
				v, ok := rec.Get(key)
				if !ok || v.Key() != vk {
					return fmt.Errorf("index %q holds stale posting for vertex %d", key, id)
				}
			}
		}
	}
	return nil
}
