package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/fs"                 //nolint:depguard // Wired in engine layer
	"go.trai.ch/forge/internal/adapters/logger"             //nolint:depguard // Wired in engine layer
	"go.trai.ch/forge/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine layer
	"go.trai.ch/forge/internal/core/ports"
)

// NodeID is the unique identifier for the Scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ListerNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			lister, err := graft.Dep[ports.Lister](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(lister, log, telemetry), nil
		},
	})
}
