package workflow

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/devflow/internal/core/ports"
)

// NodeID is the unique identifier for the workflow renderer Graft node.
const NodeID graft.ID = "adapter.workflow_renderer"

func init() {
	graft.Register(graft.Node[ports.WorkflowRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.WorkflowRenderer, error) {
			return NewRenderer(), nil
		},
	})
}
