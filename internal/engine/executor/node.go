package executor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/devflow/internal/adapters/container"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/devflow/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/devflow/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/devflow/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/devflow/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/devflow/internal/core/ports"
)

// NodeID is the unique identifier for the executor Graft node.
const NodeID graft.ID = "engine.executor"

func init() {
	graft.Register(graft.Node[*Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			container.NodeID,
			fs.ProjectNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Executor, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}

			proxy, err := graft.Dep[ports.ContainerProxy](ctx)
			if err != nil {
				return nil, err
			}

			project, err := graft.Dep[ports.Project](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(runner, proxy, project, telemetry, log), nil
		},
	})
}
