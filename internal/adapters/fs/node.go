package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aptsrc/internal/adapters/config"
)

// WriterNodeID is the unique identifier for the directory writer Graft node.
const WriterNodeID graft.ID = "adapter.fs.writer"

func init() {
	graft.Register(graft.Node[*Writer]{
		ID:        WriterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (*Writer, error) {
			settings, err := graft.Dep[config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(settings.SourcesDir), nil
		},
	})
}
