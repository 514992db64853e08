// Package provgraph provides a path-indexed attributed graph for recording
// provenance chains of derived data.
//
// Each inserted record (a parameter set, an input value, a derived result)
// becomes a vertex. A dependency chain of records becomes a directed walk,
// and every edge of that walk is tagged with the chain's path id, so that
// "everything that belongs to run N" can be recovered later without
// re-deriving the dependency logic.
//
// # Quick Start
//
//	ctx := context.Background()
//	s := provgraph.New(provgraph.WithIndex("x", "y"))
//
//	x := metadata.MustTemplate(metadata.Col("x", metadata.Ints(1, 2, 3)...))
//	y := metadata.MustTemplate(metadata.Col("y", metadata.Ints(1, 4, 9)...))
//
//	ids, _ := s.AddDerivedValues(ctx, x, y) // paths 1, 2, 3
//
// # Path Algebra
//
//	s.PathsThrough(v, provgraph.Forward) // union of ids on v's out-edges
//	s.ChainPaths(chain, provgraph.Forward) // ids common to every record of chain
//	s.OnPath(v, ids)                     // does an edge entering v carry one of ids?
//
// # Continuation
//
// AddChain asks NextID which id to use. A chain that attaches at a dead end
// continues the path that ended there; anything else starts a new path. When
// several paths end at the same dead end the choice is ambiguous and AddChain
// returns an *AmbiguousContinuationError instead of guessing; AddNodes takes
// an explicit id.
//
// # Walking
//
//	ends, _ := s.WalkPaths(ctx, []core.PathID{1, 2}, start, provgraph.Forward, nil, nil)
//
// Walks of different ids run in parallel and return in input order.
//
// # Concurrency
//
// A Store has no internal locking. Mutations must be serialized by the
// caller; reads, including parallel walks, may run concurrently as long as no
// mutation runs at the same time.
package provgraph
