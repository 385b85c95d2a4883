package typemodel

import (
	"fmt"
	"go/types"
	"path/filepath"

	"go.trai.ch/syringe/internal/core/domain"
)

// element is a domain.Element backed by a go/types object.
type element struct {
	obj       types.Object
	kind      domain.ElementKind
	enclosing domain.Element
	typ       domain.Type
	params    []domain.Element
	ret       domain.Type
	doc       []string
	pos       string
}

func (e *element) Name() string { return e.obj.Name() }

func (e *element) Kind() domain.ElementKind { return e.kind }

func (e *element) Enclosing() domain.Element { return e.enclosing }

func (e *element) Type() domain.Type { return e.typ }

func (e *element) Parameters() []domain.Element { return e.params }

func (e *element) ReturnType() domain.Type { return e.ret }

func (e *element) Doc() []string { return e.doc }

func (e *element) Pos() string { return e.pos }

// typeElement returns the cached element of a type declaration.
func (m *Model) typeElement(obj *types.TypeName) *element {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.elements[obj]; ok {
		return e
	}
	e := &element{
		obj:  obj,
		kind: domain.ElementType,
		typ:  Wrap(obj.Type()),
		doc:  m.docs[obj],
		pos:  m.position(obj),
	}
	m.elements[obj] = e
	return e
}

// funcElement returns the cached element of a function or method together with
// elements for its parameters.
func (m *Model) funcElement(fn *types.Func) *element {
	m.mu.Lock()
	if e, ok := m.elements[fn]; ok {
		m.mu.Unlock()
		return e
	}
	m.mu.Unlock()

	sig := fn.Type().(*types.Signature)
	e := &element{
		obj:  fn,
		kind: domain.ElementFunc,
		typ:  Wrap(sig),
		ret:  Wrap(resultType(sig)),
		doc:  m.docs[fn],
		pos:  m.position(fn),
	}
	if owner := declaringTypeName(fn); owner != nil {
		e.enclosing = m.typeElement(owner)
	}
	if sig.Recv() != nil {
		e.kind = domain.ElementMethod
	}
	for i := range sig.Params().Len() {
		p := sig.Params().At(i)
		e.params = append(e.params, &element{
			obj:       p,
			kind:      domain.ElementParameter,
			enclosing: e,
			typ:       Wrap(p.Type()),
			doc:       e.doc,
			pos:       m.position(p),
		})
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.elements[fn]; ok {
		return existing
	}
	m.elements[fn] = e
	return e
}

func (m *Model) position(obj types.Object) string {
	if m.fset == nil || !obj.Pos().IsValid() {
		return ""
	}
	p := m.fset.Position(obj.Pos())
	return fmt.Sprintf("%s:%d", filepath.Base(p.Filename), p.Line)
}

// resultType returns the value a function produces: its only result, or the first
// of (T, error).
func resultType(sig *types.Signature) types.Type {
	res := sig.Results()
	switch res.Len() {
	case 1:
		return res.At(0).Type()
	case 2:
		if types.Identical(res.At(1).Type(), types.Universe.Lookup("error").Type()) {
			return res.At(0).Type()
		}
	}
	return nil
}

// declaringTypeName returns the type a function belongs to: the receiver base type
// of a method, the interface of an interface method, or the named type a
// constructor returns.
func declaringTypeName(fn *types.Func) *types.TypeName {
	sig := fn.Type().(*types.Signature)
	if recv := sig.Recv(); recv != nil {
		if n, ok := named(recv.Type(), true); ok {
			return n.Origin().Obj()
		}
		return nil
	}
	if n, ok := named(resultType(sig), true); ok {
		return n.Origin().Obj()
	}
	return nil
}
