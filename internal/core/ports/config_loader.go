package ports

import "go.trai.ch/syringe/internal/core/domain"

// ConfigLoader defines the interface for loading the analyzer configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration. A directory is searched for the config file,
	// walking up its parents; a file is read directly. The default configuration is
	// returned when no config file exists.
	Load(path string) (*domain.Config, error)
}
