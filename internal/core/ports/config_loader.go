package ports

import "go.trai.ch/quill/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds quill.yaml at or above cwd and returns the parsed configuration.
	// Without a config file the defaults rooted at cwd are returned.
	Load(cwd string) (*domain.Config, error)
}
