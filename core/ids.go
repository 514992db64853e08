package core

// VertexID is a dense identifier for a vertex within a graph.
// It is strictly 32-bit so vertex sets fit in roaring bitmaps.
// IDs are assigned monotonically starting at 1 and never reused.
type VertexID uint32

// NoVertex is the sentinel "no vertex" id.
const NoVertex VertexID = 0

// PathID names one complete dependency chain from a root record to a leaf record.
type PathID uint32

// FirstPathID is the first path id handed out by a fresh graph.
const FirstPathID PathID = 1

// MaxPathID is the maximum possible value for a PathID.
const MaxPathID = ^PathID(0)
