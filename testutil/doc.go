// Package testutil provides testing utilities for provgraph.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG and generators for random attribute
// records and dependency chains drawn from a small value space, so that
// generated chains share vertices and exercise path continuation.
//
// # Random Chains
//
//	rng := testutil.NewRNG(seed)
//	chain := rng.Chain(3, []string{"P", "alg", "x"}, 4)
package testutil
