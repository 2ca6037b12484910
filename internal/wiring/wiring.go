// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/devrun/internal/adapters/config"
	_ "go.trai.ch/devrun/internal/adapters/console"
	_ "go.trai.ch/devrun/internal/adapters/fs"
	_ "go.trai.ch/devrun/internal/adapters/logger"
	_ "go.trai.ch/devrun/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/devrun/internal/app"
	_ "go.trai.ch/devrun/internal/engine/discovery"
	_ "go.trai.ch/devrun/internal/engine/dispatch"
	_ "go.trai.ch/devrun/internal/engine/registry"
	_ "go.trai.ch/devrun/internal/engine/resolver"
)
