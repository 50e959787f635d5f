package ports

import (
	"context"

	"go.trai.ch/aptsrc/internal/core/domain"
)

// EntryWriter places rendered entries where apt reads them.
//
//go:generate go run go.uber.org/mock/mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type EntryWriter interface {
	// Write stores a present entry or removes an absent one.
	// It reports whether anything changed, so callers can decide on a cache refresh.
	Write(ctx context.Context, entry domain.SourceEntry) (changed bool, err error)
}
