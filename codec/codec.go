// Package codec encodes the read view of a graph for external collaborators
// such as plotting or reporting tools.
package codec

import "io"

// Codec streams values to and from an encoded form.
// Implementations must be safe for concurrent use.
type Codec interface {
	// Encode writes v to w as one document.
	Encode(w io.Writer, v any) error
	// Decode reads one document from r into v.
	Decode(r io.Reader, v any) error
	Name() string
}

// Default is the codec used by Store.Export unless configured otherwise.
var Default Codec = GoJSON{}
