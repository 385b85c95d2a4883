// Package request turns type references at injection points into dependency requests.
package request

import (
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports"
	"go.trai.ch/zerr"
)

// Classification is the kind of a request type and the payload type that kind wraps.
type Classification struct {
	Kind    domain.Kind
	Payload domain.Type
}

// Classify extracts the request kind and payload out of a request type.
// For inject.Provider[Foo] it returns KindProvider with Foo. Wrappers are never
// unwrapped more than once, so inject.Provider[inject.Lazy[Foo]] yields
// KindProvider with inject.Lazy[Foo].
func Classify(model ports.TypeModel, t domain.Type) (Classification, error) {
	if t == nil {
		return Classification{}, zerr.Wrap(domain.ErrPreconditionViolation, "request type is nil")
	}

	// Wrapper predicates are only defined for declared types, so type variables are
	// settled before any of them is evaluated.
	if model.IsTypeVariable(t) {
		return Classification{Kind: domain.KindInstance, Payload: t}, nil
	}

	for _, w := range domain.ClassifiableWrappers() {
		if !model.IsWrapper(t, w) {
			continue
		}
		payload, err := model.SoleTypeArgument(t)
		if err != nil {
			err = zerr.With(zerr.Wrap(domain.ErrPreconditionViolation, err.Error()), "wrapper", w.String())
			return Classification{}, zerr.With(err, "type", t.String())
		}
		return Classification{Kind: w.Kind(), Payload: payload}, nil
	}

	return Classification{Kind: domain.KindInstance, Payload: t}, nil
}
