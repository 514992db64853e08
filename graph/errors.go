package graph

import (
	"errors"
	"fmt"

	"github.com/hupe1980/provgraph/core"
)

var (
	// ErrVertexNotFound is returned when a vertex id is not present in the graph.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrInvalidPathID is returned for the reserved path id 0.
	ErrInvalidPathID = errors.New("graph: invalid path id")
)

func vertexNotFound(v core.VertexID) error {
	return fmt.Errorf("%w: %d", ErrVertexNotFound, v)
}
