package provgraph

import (
	"errors"
	"fmt"

	"github.com/hupe1980/provgraph/core"
	"github.com/hupe1980/provgraph/graph"
)

var (
	// ErrNotFound is returned when a record or vertex a strict operation
	// needs is absent.
	ErrNotFound = errors.New("not found")

	// ErrEmptyChain is returned when a chain holds no records.
	ErrEmptyChain = errors.New("empty chain")

	// ErrInvalidPathID is returned for the reserved path id 0.
	ErrInvalidPathID = graph.ErrInvalidPathID

	// ErrAmbiguousContinuation is matched by *AmbiguousContinuationError.
	ErrAmbiguousContinuation = errors.New("ambiguous path continuation")

	// ErrCycle is returned when a walk keeps going after visiting as many
	// vertices as the graph holds.
	ErrCycle = errors.New("walk did not terminate: path contains a cycle")

	// ErrInvariant is matched by *InvariantError.
	ErrInvariant = errors.New("structural invariant violated")
)

// AmbiguousContinuationError reports that a chain's attachment point continues
// more than one existing path. The caller picks one of Candidates and passes
// it to AddNodes, or starts a new path.
type AmbiguousContinuationError struct {
	Candidates []core.PathID
}

func (e *AmbiguousContinuationError) Error() string {
	return fmt.Sprintf("ambiguous path continuation: candidates %v", e.Candidates)
}

// Is reports whether target is ErrAmbiguousContinuation.
func (e *AmbiguousContinuationError) Is(target error) bool {
	return target == ErrAmbiguousContinuation
}

// InvariantError describes a violated structural invariant.
// A correct store never produces one.
type InvariantError struct {
	Invariant string
	Detail    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("structural invariant %q violated: %s", e.Invariant, e.Detail)
}

// Is reports whether target is ErrInvariant.
func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariant
}

// RecordNotFoundError is returned when a record is not present in the store.
// It matches ErrNotFound.
type RecordNotFoundError struct {
	Record string
}

func (e *RecordNotFoundError) Error() string {
	return fmt.Sprintf("record %s: not found", e.Record)
}

func (e *RecordNotFoundError) Unwrap() error { return ErrNotFound }
