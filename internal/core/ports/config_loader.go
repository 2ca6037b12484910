package ports

import "go.trai.ch/devrun/internal/core/domain"

// ConfigLoader defines the interface for loading the user configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the global and project-local configuration visible from cwd
	// and returns the merged result. Missing files are not an error.
	Load(cwd string) (*domain.Config, error)
}
