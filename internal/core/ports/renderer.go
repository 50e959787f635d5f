package ports

import "go.trai.ch/aptsrc/internal/core/domain"

// SourceRenderer renders one source entry into its textual config format.
// Implementations must not modify the SourceSpec.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type SourceRenderer interface {
	Render(spec *domain.SourceSpec) (string, error)
}
