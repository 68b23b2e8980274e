package ports

import (
	"context"

	"go.trai.ch/devflow/internal/core/domain"
)

// ContainerProxy rewrites host actions into container-engine invocations.
//
//go:generate mockgen -source=container.go -destination=mocks/mock_container.go -package=mocks
type ContainerProxy interface {
	// Wrap returns an action running the given one inside a container.
	Wrap(ctx context.Context, action domain.ExecutionAction, req domain.ProxyRequest) (domain.ExecutionAction, error)
}
