package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/syringe/internal/core/ports"
)

// NodeID is the graft node providing the report formats.
const NodeID graft.ID = "adapter.report"

func init() {
	graft.Register(graft.Node[ports.Formats]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Formats, error) {
			return NewFormats(), nil
		},
	})
}
