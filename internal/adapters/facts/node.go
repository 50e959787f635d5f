package facts

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aptsrc/internal/adapters/config"
	"go.trai.ch/aptsrc/internal/core/ports"
)

// NodeID is the unique identifier for the fact resolver Graft node.
const NodeID graft.ID = "adapter.facts"

func init() {
	graft.Register(graft.Node[ports.FactResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.FactResolver, error) {
			settings, err := graft.Dep[config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return FromOSRelease(settings.OSRelease, Overrides{
				Codename:     settings.Codename,
				Architecture: settings.Architecture,
			})
		},
	})
}
