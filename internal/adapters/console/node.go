package console

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the console mode Graft node.
const NodeID graft.ID = "adapter.console"

func init() {
	graft.Register(graft.Node[Mode]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Mode, error) {
			return Detect(), nil
		},
	})
}
