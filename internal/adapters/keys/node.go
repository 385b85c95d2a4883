package keys

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/syringe/internal/core/ports"
)

// NodeID is the graft node providing the KeyFactory.
const NodeID graft.ID = "adapter.keys"

func init() {
	graft.Register(graft.Node[ports.KeyFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.KeyFactory, error) {
			return NewFactory(), nil
		},
	})
}
