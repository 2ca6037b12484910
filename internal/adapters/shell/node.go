package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/devrun/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the process runner Graft node.
	NodeID graft.ID = "adapter.shell"
	// ProberNodeID is the unique identifier for the tool prober Graft node.
	ProberNodeID graft.ID = "adapter.shell.prober"
)

func init() {
	graft.Register(graft.Node[ports.ProcessRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.ProcessRunner, error) {
			return NewRunner(), nil
		},
	})

	graft.Register(graft.Node[ports.ToolProber]{
		ID:        ProberNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.ToolProber, error) {
			return NewProber(), nil
		},
	})
}
