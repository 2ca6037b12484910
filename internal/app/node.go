package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/devrun/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/devrun/internal/adapters/console" //nolint:depguard // Wired in app layer
	"go.trai.ch/devrun/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/devrun/internal/adapters/shell"   //nolint:depguard // Wired in app layer
	"go.trai.ch/devrun/internal/core/ports"
	"go.trai.ch/devrun/internal/engine/discovery"
	"go.trai.ch/devrun/internal/engine/dispatch"
	"go.trai.ch/devrun/internal/engine/registry"
	"go.trai.ch/devrun/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the application with the adapters the CLI talks to directly.
type Components struct {
	App     *App
	Logger  ports.Logger
	Console console.Mode
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			registry.NodeID,
			resolver.NodeID,
			discovery.NodeID,
			dispatch.NodeID,
			shell.ProberNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			console.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	reg, err := graft.Dep[*registry.Registry](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	scripts, err := graft.Dep[*discovery.Discoverer](ctx)
	if err != nil {
		return nil, err
	}

	dispatcher, err := graft.Dep[*dispatch.Dispatcher](ctx)
	if err != nil {
		return nil, err
	}

	prober, err := graft.Dep[ports.ToolProber](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, reg, res, scripts, dispatcher, prober, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	mode, err := graft.Dep[console.Mode](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:     app,
		Logger:  log,
		Console: mode,
	}, nil
}
