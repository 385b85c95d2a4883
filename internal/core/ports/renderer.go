package ports

import (
	"io"

	"go.trai.ch/syringe/internal/core/domain"
)

// Renderer writes an analysis report.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	Render(w io.Writer, report *domain.Report) error
}

// Formats resolves an output format name to its Renderer.
type Formats interface {
	Renderer(format string) (Renderer, error)
	Names() []string
}
