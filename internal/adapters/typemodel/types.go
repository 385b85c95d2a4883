// Package typemodel implements the request type model over go/types.
package typemodel

import (
	"go/types"
	"slices"
	"strings"

	"go.trai.ch/syringe/internal/core/domain"
)

// Type is a domain.Type backed by a go/types type.
type Type struct {
	t types.Type
}

// Wrap returns t as a domain.Type, or nil when t is nil.
func Wrap(t types.Type) domain.Type {
	if t == nil {
		return nil
	}
	return Type{t: t}
}

// Unwrap returns the go/types type behind a domain.Type created by this package.
func Unwrap(t domain.Type) (types.Type, bool) {
	tt, ok := t.(Type)
	if !ok || tt.t == nil {
		return nil, false
	}
	return tt.t, true
}

// String returns the fully package-qualified spelling of the type.
func (t Type) String() string {
	return types.TypeString(t.t, nil)
}

// Canonical returns the spelling used for binding keys. It extends String with the
// declaration owning every type parameter, so the T of two generic declarations
// never share a key.
func (t Type) Canonical() string {
	s := t.String()
	params := typeParams(t.t, nil)
	if len(params) == 0 {
		return s
	}
	owners := make([]string, len(params))
	for i, tp := range params {
		owners[i] = tp.Obj().Name() + " of " + typeParamOwner(tp)
	}
	return s + " where " + strings.Join(owners, ", ")
}

// Identical reports whether other denotes the same go/types type.
func (t Type) Identical(other domain.Type) bool {
	o, ok := Unwrap(other)
	return ok && types.Identical(t.t, o)
}

// named returns the named type behind t, looking through aliases and, when deref
// is set, a single pointer.
func named(t types.Type, deref bool) (*types.Named, bool) {
	t = types.Unalias(t)
	if p, ok := t.(*types.Pointer); ok && deref {
		t = types.Unalias(p.Elem())
	}
	n, ok := t.(*types.Named)
	return n, ok
}

// typeParams appends the type parameters occurring in t to seen, in order of first
// occurrence.
func typeParams(t types.Type, seen []*types.TypeParam) []*types.TypeParam {
	switch t := t.(type) {
	case *types.TypeParam:
		if !slices.Contains(seen, t) {
			seen = append(seen, t)
		}
	case *types.Alias:
		seen = typeParams(types.Unalias(t), seen)
	case *types.Named:
		for i := range t.TypeArgs().Len() {
			seen = typeParams(t.TypeArgs().At(i), seen)
		}
	case *types.Pointer:
		seen = typeParams(t.Elem(), seen)
	case *types.Slice:
		seen = typeParams(t.Elem(), seen)
	case *types.Array:
		seen = typeParams(t.Elem(), seen)
	case *types.Chan:
		seen = typeParams(t.Elem(), seen)
	case *types.Map:
		seen = typeParams(t.Key(), seen)
		seen = typeParams(t.Elem(), seen)
	case *types.Tuple:
		for i := range t.Len() {
			seen = typeParams(t.At(i).Type(), seen)
		}
	case *types.Signature:
		seen = typeParams(t.Params(), seen)
		seen = typeParams(t.Results(), seen)
	case *types.Struct:
		for i := range t.NumFields() {
			seen = typeParams(t.Field(i).Type(), seen)
		}
	}
	return seen
}

// typeParamOwner returns the qualified name of the generic function, type or method
// declaring tp, or its package path when the declaration is not package-level.
func typeParamOwner(tp *types.TypeParam) string {
	pkg := tp.Obj().Pkg()
	if pkg == nil {
		return ""
	}
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		switch obj := scope.Lookup(name).(type) {
		case *types.Func:
			if declares(obj.Type().(*types.Signature).TypeParams(), tp) {
				return pkg.Path() + "." + obj.Name()
			}
		case *types.TypeName:
			n, ok := obj.Type().(*types.Named)
			if !ok {
				continue
			}
			if declares(n.TypeParams(), tp) {
				return pkg.Path() + "." + obj.Name()
			}
			for i := range n.NumMethods() {
				m := n.Method(i)
				if declares(m.Type().(*types.Signature).RecvTypeParams(), tp) {
					return pkg.Path() + "." + obj.Name() + "." + m.Name()
				}
			}
		}
	}
	return pkg.Path()
}

func declares(list *types.TypeParamList, tp *types.TypeParam) bool {
	for i := range list.Len() {
		if list.At(i) == tp {
			return true
		}
	}
	return false
}
