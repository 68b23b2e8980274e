package subprocess

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/devflow/internal/adapters/logger"
	"go.trai.ch/devflow/internal/core/ports"
)

// ProberNodeID is the unique identifier for the extension prober Graft node.
const ProberNodeID graft.ID = "adapter.subprocess.prober"

func init() {
	graft.Register(graft.Node[ports.ExtensionProber]{
		ID:        ProberNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ExtensionProber, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProber(log, os.Stderr), nil
		},
	})
}
