package s3

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aptsrc/internal/adapters/config"
)

// NodeID is the unique identifier for the bucket writer Graft node.
const NodeID graft.ID = "adapter.s3.writer"

func init() {
	// Resolves to nil when no bucket is configured.
	graft.Register(graft.Node[*Writer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (*Writer, error) {
			settings, err := graft.Dep[config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			if !settings.S3.Enabled() {
				return nil, nil
			}
			return NewWriter(NewClient(settings.S3), settings.S3.Bucket, settings.S3.Prefix), nil
		},
	})
}
