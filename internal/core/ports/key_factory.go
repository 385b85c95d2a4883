package ports

import "go.trai.ch/syringe/internal/core/domain"

// KeyFactory builds canonical keys.
//
//go:generate mockgen -source=key_factory.go -destination=mocks/mock_key_factory.go -package=mocks
type KeyFactory interface {
	// ForQualifiedType returns the key of t under the given qualifier.
	// The zero Annotation means unqualified.
	ForQualifiedType(qualifier domain.Annotation, t domain.Type) (domain.Key, error)

	// ForMembersInjectedType returns the members-injection key of t.
	ForMembersInjectedType(t domain.Type) (domain.Key, error)
}
