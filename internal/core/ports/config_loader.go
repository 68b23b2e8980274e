package ports

import "go.trai.ch/devflow/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads and validates the configuration file at path.
	Load(path string) (*domain.Config, error)

	// Encode renders cfg in the configuration file format.
	Encode(cfg *domain.Config) ([]byte, error)
}
