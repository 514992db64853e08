package codec

import (
	"io"

	gojson "github.com/goccy/go-json"
)

// GoJSON is a JSON codec backed by github.com/goccy/go-json.
// A non-empty Indent pretty-prints every nesting level with it.
type GoJSON struct {
	Indent string
}

// Encode writes v as a newline-terminated JSON document.
func (c GoJSON) Encode(w io.Writer, v any) error {
	enc := gojson.NewEncoder(w)
	if c.Indent != "" {
		enc.SetIndent("", c.Indent)
	}
	return enc.Encode(v)
}

// Decode reads the next JSON document from r.
func (GoJSON) Decode(r io.Reader, v any) error { return gojson.NewDecoder(r).Decode(v) }

// Name returns "go-json".
func (GoJSON) Name() string { return "go-json" }
