package request_test

import (
	"strings"

	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/zerr"
)

// fakeType is a type expression: a declared type, a type variable or a wrapper instantiation.
type fakeType struct {
	name    string
	typeVar bool
	wrapper domain.Wrapper
	args    []domain.Type
}

func declared(name string) *fakeType { return &fakeType{name: name} }

func typeVar(name string) *fakeType { return &fakeType{name: name, typeVar: true} }

func wrap(w domain.Wrapper, args ...domain.Type) *fakeType {
	return &fakeType{name: "inject." + wrapperNames[w], wrapper: w, args: args}
}

var wrapperNames = map[domain.Wrapper]string{
	domain.WrapperProvider:        "Provider",
	domain.WrapperLazy:            "Lazy",
	domain.WrapperMembersInjector: "MembersInjector",
	domain.WrapperProducer:        "Producer",
	domain.WrapperProduced:        "Produced",
	domain.WrapperFuture:          "Future",
}

func (f *fakeType) String() string {
	if len(f.args) == 0 {
		return f.name
	}
	args := make([]string, len(f.args))
	for i, a := range f.args {
		args[i] = a.String()
	}
	return f.name + "[" + strings.Join(args, ", ") + "]"
}

func (f *fakeType) Identical(other domain.Type) bool {
	o, ok := other.(*fakeType)
	return ok && o.String() == f.String()
}

// fakeModel answers type questions from fakeType fields. It panics when a wrapper
// predicate is evaluated on a type variable.
type fakeModel struct {
	declarations map[string]domain.Element
}

func (m *fakeModel) IsTypeVariable(t domain.Type) bool {
	return t.(*fakeType).typeVar
}

func (m *fakeModel) IsWrapper(t domain.Type, w domain.Wrapper) bool {
	ft := t.(*fakeType)
	if ft.typeVar {
		panic("wrapper predicate evaluated on a type variable")
	}
	return ft.wrapper == w
}

func (m *fakeModel) SoleTypeArgument(t domain.Type) (domain.Type, error) {
	ft := t.(*fakeType)
	if len(ft.args) != 1 {
		return nil, zerr.With(zerr.New("expected exactly one type argument"), "arguments", len(ft.args))
	}
	return ft.args[0], nil
}

func (m *fakeModel) AsElement(t domain.Type) (domain.Element, error) {
	if e, ok := m.declarations[t.String()]; ok {
		return e, nil
	}
	return nil, zerr.With(domain.ErrNotADeclaredType, "type", t.String())
}

// fakeElement carries its qualifier and nullable marker directly.
type fakeElement struct {
	name       string
	kind       domain.ElementKind
	enclosing  domain.Element
	typ        domain.Type
	params     []domain.Element
	ret        domain.Type
	qualifiers []domain.Annotation
	nullable   bool
}

func (e *fakeElement) Name() string { return e.name }

func (e *fakeElement) Kind() domain.ElementKind { return e.kind }

func (e *fakeElement) Enclosing() domain.Element { return e.enclosing }

func (e *fakeElement) Type() domain.Type { return e.typ }

func (e *fakeElement) Parameters() []domain.Element { return e.params }

func (e *fakeElement) ReturnType() domain.Type { return e.ret }

func (e *fakeElement) Doc() []string { return nil }

func (e *fakeElement) Pos() string { return "app.go:1" }

type fakeAnnotations struct{}

func (fakeAnnotations) Qualifier(e domain.Element) (domain.Annotation, error) {
	fe := e.(*fakeElement)
	switch len(fe.qualifiers) {
	case 0:
		return domain.Annotation{}, nil
	case 1:
		return fe.qualifiers[0], nil
	default:
		return domain.Annotation{}, zerr.Wrap(domain.ErrMultipleQualifiers, "invalid qualifiers")
	}
}

func (fakeAnnotations) NullableMarker(e domain.Element) (domain.Annotation, bool) {
	if e.(*fakeElement).nullable {
		return domain.Annotation{Name: "nullable"}, true
	}
	return domain.Annotation{}, false
}

type fakeKeys struct{}

func (fakeKeys) ForQualifiedType(q domain.Annotation, t domain.Type) (domain.Key, error) {
	return domain.NewKey(q, t.String(), false, 0), nil
}

func (fakeKeys) ForMembersInjectedType(t domain.Type) (domain.Key, error) {
	return domain.NewKey(domain.Annotation{}, t.String(), true, 0), nil
}

func key(t domain.Type) domain.Key {
	k, _ := fakeKeys{}.ForQualifiedType(domain.Annotation{}, t)
	return k
}

func qualifiedKey(q domain.Annotation, t domain.Type) domain.Key {
	k, _ := fakeKeys{}.ForQualifiedType(q, t)
	return k
}

// fixture is a type Service with a constructor NewService and a component App.
type fixture struct {
	service     *fakeElement
	constructor *fakeElement
	component   *fakeElement
	model       *fakeModel
}

func newFixture() *fixture {
	service := &fakeElement{name: "Service", kind: domain.ElementType, typ: declared("example.com/app.Service")}
	constructor := &fakeElement{name: "NewService", kind: domain.ElementFunc, enclosing: service}
	component := &fakeElement{name: "App", kind: domain.ElementType, typ: declared("example.com/app.App")}
	return &fixture{
		service:     service,
		constructor: constructor,
		component:   component,
		model: &fakeModel{declarations: map[string]domain.Element{
			"example.com/app.Service": service,
			"example.com/app.App":     component,
		}},
	}
}

func (f *fixture) param(name string, t domain.Type) *fakeElement {
	p := &fakeElement{name: name, kind: domain.ElementParameter, enclosing: f.constructor, typ: t}
	f.constructor.params = append(f.constructor.params, p)
	return p
}

func (f *fixture) accessor(name string, ret domain.Type, params ...domain.Element) *fakeElement {
	return &fakeElement{name: name, kind: domain.ElementMethod, enclosing: f.component, ret: ret, params: params}
}
