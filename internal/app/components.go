package app

import (
	"go.trai.ch/syringe/internal/adapters/annotation" //nolint:depguard // Wired in app layer
	"go.trai.ch/syringe/internal/adapters/typemodel"  //nolint:depguard // Wired in app layer
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
}

// NewFrontends returns a FrontendFactory backed by the go/types model and the
// directive lookups.
func NewFrontends(models typemodel.Factory, lookups annotation.Factory) FrontendFactory {
	return func(cfg *domain.Config) Frontend {
		model := models(cfg)
		lookup := lookups(cfg)
		return Frontend{
			Loader:     model,
			Types:      model,
			Maps:       model,
			Qualifiers: lookup,
			Nullables:  lookup,
		}
	}
}
