package proc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/core/ports"
)

const NodeID graft.ID = "adapter.runner"

func init() {
	graft.Register(graft.Node[ports.RunnerFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RunnerFactory, error) {
			return New, nil
		},
	})
}
