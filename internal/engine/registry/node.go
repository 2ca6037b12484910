package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/devrun/internal/adapters/fs" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/devrun/internal/core/ports"
)

// NodeID is the unique identifier for the detector registry Graft node.
const NodeID graft.ID = "engine.registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (*Registry, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return New(fsys), nil
		},
	})
}
