// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/devflow/internal/core/domain"
)

// ProcessRunner spawns execution actions as child processes.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ProcessRunner interface {
	// Run executes the action and blocks until it exits.
	// A non-zero exit status is returned as an error carrying the exit code.
	Run(ctx context.Context, action domain.ExecutionAction) error

	// LookPath resolves an executable on the search path.
	LookPath(name string) (string, error)
}
