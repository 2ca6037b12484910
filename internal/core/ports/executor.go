// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/devrun/internal/core/domain"
)

// ProcessRunner starts external programs.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type ProcessRunner interface {
	// Run starts the invocation with inherited stdio, waits for it and returns its exit code.
	//
	// A non-zero exit code is not an error. An error is returned only when the
	// program could not be started at all.
	Run(ctx context.Context, inv domain.Invocation) (int, error)
}

// ToolStatus describes whether a runner tool is installed.
type ToolStatus struct {
	Name      string
	Installed bool
	Path      string
	Version   string
}

// ToolProber checks whether runner tools are available on PATH.
type ToolProber interface {
	// Probe looks the tool up and asks it for its version.
	Probe(ctx context.Context, tool string) ToolStatus
}
