package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/grindlemire/graft"
	"go.trai.ch/devrun/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/devrun/internal/core/domain"
	"go.trai.ch/devrun/internal/core/ports"
	"go.trai.ch/devrun/internal/engine/registry"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{registry.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			reg, err := graft.Dep[*registry.Registry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(reg, LogTrace(log)), nil
		},
	})
}

// LogTrace returns a TraceFunc that reports every visited directory at debug level.
func LogTrace(log ports.Logger) TraceFunc {
	return func(level int, dir string, matches []domain.DetectedRunner) {
		if len(matches) == 0 {
			log.Debug(fmt.Sprintf("level %d: %s: nothing detected", level, dir))
			return
		}
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, m.Name+" ("+m.DetectedFile+")")
		}
		log.Debug(fmt.Sprintf("level %d: %s: %s", level, dir, strings.Join(names, ", ")))
	}
}
