package ports

import "context"

// Telemetry records build progress as vertices, one per target build.
type Telemetry interface {
	// Record starts a vertex for the named unit of work.
	Record(ctx context.Context, name string) Vertex
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	// Done completes the vertex; a non-nil error marks it failed.
	Done(err error)
}
