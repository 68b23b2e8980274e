package shell

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/devflow/internal/core/ports"
)

// NodeID is the unique identifier for the process runner Graft node.
const NodeID graft.ID = "adapter.runner"

func init() {
	graft.Register(graft.Node[ports.ProcessRunner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProcessRunner, error) {
			return NewRunner(os.Stdin, os.Stdout, os.Stderr), nil
		},
	})
}
