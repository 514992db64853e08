// Package graph implements the property store underneath provgraph.
//
// A Graph is a directed graph whose vertices carry a metadata.Record and
// whose edges carry a non-empty pathset.Set. There is at most one edge per
// ordered vertex pair: adding a second edge between the same pair extends the
// existing edge's path-id set instead.
//
// The graph also owns the PathCounter, the only mutable id state of the
// system. The counter always stays strictly above every path id stored on an
// edge.
//
// A Graph is not safe for concurrent mutation. Concurrent readers are fine as
// long as no writer runs at the same time.
package graph
