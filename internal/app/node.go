package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/config"              //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/fs"                  //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/logger"              //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/proc"                //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/telemetry/progrock"  //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			fs.StamperNodeID,
			progrock.NodeID,
			proc.NodeID,
			scheduler.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	stamper, err := graft.Dep[ports.Stamper](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	newRunner, err := graft.Dep[ports.RunnerFactory](ctx)
	if err != nil {
		return nil, err
	}

	sched, err := graft.Dep[*scheduler.Scheduler](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, stamper, telemetry, newRunner, sched), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
