package ports

import (
	"context"

	"go.trai.ch/syringe/internal/core/domain"
)

// PackageLoader loads Go packages and discovers the request sites in them.
//
//go:generate mockgen -source=package_loader.go -destination=mocks/mock_package_loader.go -package=mocks
type PackageLoader interface {
	// Load loads the packages matching patterns relative to dir.
	Load(ctx context.Context, dir string, patterns []string) ([]*domain.Package, error)
}

// MapTypes synthesises the provider map behind a map request.
type MapTypes interface {
	// MapOfProviders returns map[K]Provider[V] for t = map[K]V, and false for any other type.
	MapOfProviders(t domain.Type) (domain.Type, bool)
}
