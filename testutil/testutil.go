package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/provgraph/metadata"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Record returns a single-field record keyed by key with an int value in
// [0,cardinality).
func (r *RNG) Record(key string, cardinality int) metadata.Record {
	return metadata.NewRecord(metadata.F(key, metadata.Int(int64(r.Intn(cardinality)))))
}

// Chain returns a chain of length records. Record i uses keys[i%len(keys)]
// with a value in [0,cardinality); consecutive records never repeat, so a
// chain never links a vertex to itself.
func (r *RNG) Chain(length int, keys []string, cardinality int) []metadata.Record {
	chain := make([]metadata.Record, 0, length)
	for i := 0; i < length; i++ {
		rec := r.Record(keys[i%len(keys)], cardinality)
		if i > 0 && rec.Equal(chain[i-1]) {
			v, _ := rec.Get(keys[i%len(keys)])
			rec = metadata.NewRecord(metadata.F(keys[i%len(keys)], metadata.Int(v.I64+int64(cardinality))))
		}
		chain = append(chain, rec)
	}
	return chain
}

// Column returns n int values in [0,cardinality), for building templates.
func (r *RNG) Column(n, cardinality int) []metadata.Value {
	out := make([]metadata.Value, n)
	for i := range out {
		out[i] = metadata.Int(int64(r.Intn(cardinality)))
	}
	return out
}
