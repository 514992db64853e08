package provgraph

import (
	"fmt"
	"io"

	"github.com/hupe1980/provgraph/codec"
	"github.com/hupe1980/provgraph/core"
)

// VertexView is the exported form of a vertex.
type VertexView struct {
	ID    core.VertexID  `json:"id"`
	Label string         `json:"label"`
	Keys  []string       `json:"keys"`
	Attrs map[string]any `json:"attrs"`
}

// EdgeView is the exported form of an edge. An edge carrying several path ids
// is a single EdgeView whose Label lists them, which is how a diagram should
// draw it.
type EdgeView struct {
	Src   core.VertexID `json:"src"`
	Dst   core.VertexID `json:"dst"`
	Paths []core.PathID `json:"paths"`
	Label string        `json:"label"`
}

// View is a plain, self-contained copy of the graph for plotting and
// reporting tools.
type View struct {
	Vertices   []VertexView `json:"vertices"`
	Edges      []EdgeView   `json:"edges"`
	NextPathID core.PathID  `json:"next_path_id"`
}

// Snapshot copies the graph into a View.
func (s *Store) Snapshot() View {
	view := View{
		Vertices:   make([]VertexView, 0, s.g.NumVertices()),
		Edges:      make([]EdgeView, 0, s.g.NumEdges()),
		NextPathID: s.g.PeekPathID(),
	}
	for id, rec := range s.g.Vertices() {
		view.Vertices = append(view.Vertices, VertexView{
			ID:    id,
			Label: rec.String(),
			Keys:  rec.Keys(),
			Attrs: rec.Map(),
		})
	}
	for e := range s.g.Edges() {
		ids := e.PathIDs()
		view.Edges = append(view.Edges, EdgeView{
			Src:   e.Src(),
			Dst:   e.Dst(),
			Paths: ids.IDs(),
			Label: ids.String(),
		})
	}
	return view
}

// Export writes a Snapshot to w using the store's codec.
func (s *Store) Export(w io.Writer) error {
	if err := s.codec.Encode(w, s.Snapshot()); err != nil {
		return fmt.Errorf("export with codec %s: %w", s.codec.Name(), err)
	}
	return nil
}

// ReadView decodes a View written by Export. A nil codec means
// codec.Default. Plotting and reporting tools use it to work on an export
// without a Store.
func ReadView(r io.Reader, c codec.Codec) (View, error) {
	if c == nil {
		c = codec.Default
	}
	var view View
	if err := c.Decode(r, &view); err != nil {
		return View{}, fmt.Errorf("read view with codec %s: %w", c.Name(), err)
	}
	return view, nil
}
