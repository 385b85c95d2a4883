package ports

import "go.trai.ch/syringe/internal/core/domain"

// TypeModel answers the questions request classification asks about type expressions.
// Implementations must be safe for concurrent read-only use.
//
//go:generate mockgen -source=type_model.go -destination=mocks/mock_type_model.go -package=mocks
type TypeModel interface {
	// IsTypeVariable reports whether t denotes a type parameter.
	IsTypeVariable(t domain.Type) bool

	// IsWrapper reports whether t is an instantiation of the wrapper shape w.
	// It is only defined for declared types and must not be called on a type variable.
	IsWrapper(t domain.Type, w domain.Wrapper) bool

	// SoleTypeArgument returns the single type argument of a declared generic type.
	SoleTypeArgument(t domain.Type) (domain.Type, error)

	// AsElement returns the declaration of a declared type.
	AsElement(t domain.Type) (domain.Element, error)
}
