package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/store" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/forge/internal/core/ports"
)

const (
	// ListerNodeID is the unique identifier for the Lister Graft node.
	ListerNodeID graft.ID = "adapter.fs.lister"
	// StamperNodeID is the unique identifier for the Stamper Graft node.
	StamperNodeID graft.ID = "adapter.fs.stamper"
)

func init() {
	graft.Register(graft.Node[ports.Lister]{
		ID:        ListerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Lister, error) {
			return NewLister(), nil
		},
	})

	graft.Register(graft.Node[ports.Stamper]{
		ID:        StamperNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{store.NodeID},
		Run: func(ctx context.Context) (ports.Stamper, error) {
			infoStore, err := graft.Dep[ports.BuildInfoStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewStamper(NewHasher(), infoStore), nil
		},
	})
}
