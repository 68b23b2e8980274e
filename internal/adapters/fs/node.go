package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/devflow/internal/core/ports"
)

const (
	// BaseNodeID provides the host filesystem.
	BaseNodeID graft.ID = "adapter.fs.base"
	// ProjectNodeID provides ports.Project.
	ProjectNodeID graft.ID = "adapter.fs.project"
	// FingerprinterNodeID provides ports.Fingerprinter.
	FingerprinterNodeID graft.ID = "adapter.fs.fingerprinter"
)

func init() {
	graft.Register(graft.Node[afero.Fs]{
		ID:        BaseNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (afero.Fs, error) {
			return afero.NewOsFs(), nil
		},
	})

	graft.Register(graft.Node[ports.Project]{
		ID:        ProjectNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{BaseNodeID},
		Run: func(ctx context.Context) (ports.Project, error) {
			base, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewProject(base), nil
		},
	})

	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        FingerprinterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{BaseNodeID},
		Run: func(ctx context.Context) (ports.Fingerprinter, error) {
			base, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewFingerprinter(base), nil
		},
	})
}
