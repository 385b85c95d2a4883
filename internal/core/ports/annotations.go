package ports

import "go.trai.ch/syringe/internal/core/domain"

// QualifierLookup extracts the qualifier of an element.
//
//go:generate mockgen -source=annotations.go -destination=mocks/mock_annotations.go -package=mocks
type QualifierLookup interface {
	// Qualifier returns the qualifier of e, or the zero Annotation when unqualified.
	// It fails with domain.ErrMultipleQualifiers when e carries more than one.
	Qualifier(e domain.Element) (domain.Annotation, error)
}

// NullableLookup finds nullable markers on an element.
type NullableLookup interface {
	// NullableMarker returns the recognised nullable marker of e, if any.
	NullableMarker(e domain.Element) (domain.Annotation, bool)
}
