package progrock

import (
	"github.com/vito/progrock"
)

// Vertex wraps *progrock.VertexRecorder as a ports.Vertex.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Done completes the vertex; a non-nil error marks it failed.
func (v *Vertex) Done(err error) {
	v.vertex.Done(err)
}
