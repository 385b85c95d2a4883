package typemodel

import (
	"go/token"
	"go/types"
	"sync"

	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/zerr"
)

// Model implements ports.TypeModel, ports.MapTypes and ports.PackageLoader over
// go/types. Load populates the model; after it returns, the model is safe for
// concurrent read-only use.
type Model struct {
	wrappers map[domain.Wrapper]domain.QualifiedName
	prefix   string

	fset *token.FileSet
	// wrapperObjs holds the declarations of the wrapper shapes found while loading.
	wrapperObjs map[domain.Wrapper]*types.TypeName
	// docs holds the directive lines of every declaration that has any.
	docs map[types.Object][]string

	mu       sync.Mutex
	elements map[types.Object]*element
}

// NewModel creates a Model recognising the wrapper shapes and directives of cfg.
func NewModel(cfg *domain.Config) *Model {
	return &Model{
		wrappers:    cfg.Wrappers,
		prefix:      cfg.DirectivePrefix,
		fset:        token.NewFileSet(),
		wrapperObjs: make(map[domain.Wrapper]*types.TypeName),
		docs:        make(map[types.Object][]string),
		elements:    make(map[types.Object]*element),
	}
}

// IsTypeVariable reports whether t is a type parameter.
func (m *Model) IsTypeVariable(t domain.Type) bool {
	gt, ok := Unwrap(t)
	if !ok {
		return false
	}
	_, ok = types.Unalias(gt).(*types.TypeParam)
	return ok
}

// IsWrapper reports whether t instantiates the generic type configured for w.
func (m *Model) IsWrapper(t domain.Type, w domain.Wrapper) bool {
	gt, ok := Unwrap(t)
	if !ok {
		return false
	}
	n, ok := named(gt, false)
	if !ok {
		return false
	}
	want, ok := m.wrappers[w]
	if !ok {
		return false
	}
	obj := n.Origin().Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == want.Path && obj.Name() == want.Name
}

// SoleTypeArgument returns the only type argument of an instantiated generic type.
func (m *Model) SoleTypeArgument(t domain.Type) (domain.Type, error) {
	gt, ok := Unwrap(t)
	if !ok {
		return nil, zerr.Wrap(domain.ErrNotADeclaredType, "type was not created by the type model")
	}
	n, ok := named(gt, false)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrNotADeclaredType, "type has no type arguments"), "type", t.String())
	}
	args := n.TypeArgs()
	if args.Len() != 1 {
		err := zerr.With(zerr.New("expected exactly one type argument"), "type", t.String())
		return nil, zerr.With(err, "arguments", args.Len())
	}
	return Wrap(args.At(0)), nil
}

// AsElement returns the declaration of a declared type or of a pointer to one.
func (m *Model) AsElement(t domain.Type) (domain.Element, error) {
	gt, ok := Unwrap(t)
	if !ok {
		return nil, zerr.Wrap(domain.ErrNotADeclaredType, "type was not created by the type model")
	}
	n, ok := named(gt, true)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrNotADeclaredType, "type has no declaration"), "type", t.String())
	}
	return m.typeElement(n.Origin().Obj()), nil
}

// MapOfProviders returns map[K]Provider[V] for an unnamed map type map[K]V. It
// returns false when t is not such a map or the provider type was not loaded.
func (m *Model) MapOfProviders(t domain.Type) (domain.Type, bool) {
	gt, ok := Unwrap(t)
	if !ok {
		return nil, false
	}
	mt, ok := types.Unalias(gt).(*types.Map)
	if !ok {
		return nil, false
	}
	provider, ok := m.wrapperObjs[domain.WrapperProvider]
	if !ok {
		return nil, false
	}
	inst, err := types.Instantiate(nil, provider.Type(), []types.Type{mt.Elem()}, false)
	if err != nil {
		return nil, false
	}
	return Wrap(types.NewMap(mt.Key(), inst)), true
}

// WrapperType returns the loaded declaration of a wrapper shape.
func (m *Model) WrapperType(w domain.Wrapper) (domain.Type, error) {
	obj, ok := m.wrapperObjs[w]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownWrapper, "wrapper type was not loaded"), "wrapper", w.String())
	}
	return Wrap(obj.Type()), nil
}
