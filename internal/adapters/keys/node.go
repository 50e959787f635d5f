package keys

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aptsrc/internal/core/ports"
)

// NodeID is the unique identifier for the key inspector Graft node.
const NodeID graft.ID = "adapter.keys"

func init() {
	graft.Register(graft.Node[ports.KeyInspector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.KeyInspector, error) {
			return NewInspector(), nil
		},
	})
}
