// Package index provides secondary attribute indices for vertex lookup.
//
// An Index holds one inverted posting list per declared attribute key:
//
//	key -> value.Key() -> roaring bitmap of vertex ids
//
// Lookups consult the first declared key found in the record (in the record's
// field order). A record with no declared key falls back to a full scan of the
// Source for structural equality. Either way, a hit is only returned for a
// vertex whose whole record is Equal to the query, so indexing changes the
// cost of a lookup but never its result.
package index
