// Package metadata defines the attribute records stored on graph vertices.
//
// A Record is an ordered set of named, typed values:
//
//	rec := metadata.NewRecord(
//	    metadata.F("P", metadata.Int(1)),
//	    metadata.F("alg", metadata.String("alg1")),
//	)
//
// Values are a small tagged union (null, int, float, string, bool, array) with
// no reflection on the hot path. Records compare structurally and expose a
// canonical Key, which is what vertex deduplication is built on.
//
// # Templates
//
// A Template holds parallel columns of equal length and expands into one
// record per row:
//
//	x := metadata.MustTemplate(metadata.Col("x", metadata.Ints(1, 2, 3)...))
//	x.Row(1) // (x=2,)
package metadata
