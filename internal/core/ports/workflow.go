package ports

import "go.trai.ch/devflow/internal/core/domain"

// WorkflowRenderer renders the CI workflow for a project.
//
//go:generate mockgen -source=workflow.go -destination=mocks/mock_workflow.go -package=mocks
type WorkflowRenderer interface {
	// Render returns the workflow document for cfg.
	Render(cfg *domain.Config) ([]byte, error)
}
