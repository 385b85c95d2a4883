package annotation

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/syringe/internal/core/domain"
)

// NodeID is the graft node providing the Lookup factory.
const NodeID graft.ID = "adapter.annotation"

// Factory creates a Lookup for a configuration.
type Factory func(cfg *domain.Config) *Lookup

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Factory, error) {
			return NewLookup, nil
		},
	})
}
