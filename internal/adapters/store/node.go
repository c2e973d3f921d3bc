package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/core/ports"
)

const NodeID graft.ID = "adapter.store"

// DefaultPath is where build-info records are persisted, relative to the
// working directory.
const DefaultPath = ".forge/build_info.json"

func init() {
	graft.Register(graft.Node[ports.BuildInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.BuildInfoStore, error) {
			return NewStore(DefaultPath)
		},
	})
}
