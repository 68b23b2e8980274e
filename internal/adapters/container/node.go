package container

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/devflow/internal/adapters/fs"
	"go.trai.ch/devflow/internal/adapters/logger"
	"go.trai.ch/devflow/internal/core/ports"
)

// NodeID is the unique identifier for the container proxy Graft node.
const NodeID graft.ID = "adapter.container_proxy"

func init() {
	graft.Register(graft.Node[ports.ContainerProxy]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ProjectNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ContainerProxy, error) {
			project, err := graft.Dep[ports.Project](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProxy(project, log), nil
		},
	})
}
