package typemodel

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/syringe/internal/core/domain"
)

// NodeID is the graft node providing the Model factory.
const NodeID graft.ID = "adapter.typemodel"

// Factory creates a Model for a configuration.
type Factory func(cfg *domain.Config) *Model

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Factory, error) {
			return NewModel, nil
		},
	})
}
