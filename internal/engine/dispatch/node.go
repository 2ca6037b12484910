package dispatch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/devrun/internal/adapters/shell" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/devrun/internal/core/ports"
	"go.trai.ch/devrun/internal/engine/discovery"
)

// NodeID is the unique identifier for the dispatcher Graft node.
const NodeID graft.ID = "engine.dispatch"

func init() {
	graft.Register(graft.Node[*Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{discovery.NodeID, shell.NodeID},
		Run: func(ctx context.Context) (*Dispatcher, error) {
			scripts, err := graft.Dep[*discovery.Discoverer](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			return New(scripts, runner), nil
		},
	})
}
