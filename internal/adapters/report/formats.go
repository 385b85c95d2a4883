// Package report renders analysis reports.
package report

import (
	"slices"

	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports"
	"go.trai.ch/zerr"
)

// Format names.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

var _ ports.Formats = (*Formats)(nil)

// Formats implements ports.Formats over the built-in renderers.
type Formats struct {
	renderers map[string]ports.Renderer
}

// NewFormats creates a Formats with the text and YAML renderers.
func NewFormats() *Formats {
	return &Formats{
		renderers: map[string]ports.Renderer{
			FormatText: NewTextRenderer(),
			FormatYAML: NewYAMLRenderer(),
		},
	}
}

// Renderer returns the renderer for format.
func (f *Formats) Renderer(format string) (ports.Renderer, error) {
	r, ok := f.renderers[format]
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrUnknownFormat, "unsupported output format"), "format", format)
		return nil, zerr.With(err, "supported", f.Names())
	}
	return r, nil
}

// Names returns the supported format names in sorted order.
func (f *Formats) Names() []string {
	names := make([]string, 0, len(f.renderers))
	for name := range f.renderers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
