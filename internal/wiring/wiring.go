// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/devflow/internal/adapters/config"
	_ "go.trai.ch/devflow/internal/adapters/container"
	_ "go.trai.ch/devflow/internal/adapters/fs"
	_ "go.trai.ch/devflow/internal/adapters/logger"
	_ "go.trai.ch/devflow/internal/adapters/shell"
	_ "go.trai.ch/devflow/internal/adapters/subprocess"
	_ "go.trai.ch/devflow/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/devflow/internal/adapters/workflow"
	// Register app and engine nodes.
	_ "go.trai.ch/devflow/internal/app"
	_ "go.trai.ch/devflow/internal/engine/discovery"
	_ "go.trai.ch/devflow/internal/engine/executor"
)
