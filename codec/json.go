package codec

import (
	"encoding/json"
	"io"
)

// JSON is the standard-library codec, for consumers that need exactly what
// encoding/json produces. Indent works as in GoJSON.
type JSON struct {
	Indent string
}

// Encode writes v as a newline-terminated JSON document.
func (c JSON) Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if c.Indent != "" {
		enc.SetIndent("", c.Indent)
	}
	return enc.Encode(v)
}

// Decode reads the next JSON document from r.
func (JSON) Decode(r io.Reader, v any) error { return json.NewDecoder(r).Decode(v) }

// Name returns "json".
func (JSON) Name() string { return "json" }
