package ports

import "go.trai.ch/aptsrc/internal/core/domain"

// ConfigLoader defines the interface for loading source declarations.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the sources file at path and returns its specs ordered by name.
	Load(path string) ([]domain.SourceSpec, error)
}
