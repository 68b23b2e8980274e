package discovery

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/devflow/internal/adapters/builtin"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/devflow/internal/adapters/logger"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/devflow/internal/adapters/subprocess" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/devflow/internal/core/ports"
)

// NodeID is the unique identifier for the discovery Graft node.
const NodeID graft.ID = "engine.discovery"

func init() {
	graft.Register(graft.Node[*Discoverer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			subprocess.ProberNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Discoverer, error) {
			prober, err := graft.Dep[ports.ExtensionProber](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(prober, builtin.Lookup, log), nil
		},
	})
}
