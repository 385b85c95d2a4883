package request

import (
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder creates dependency requests, one entry point per request site.
// A Builder holds no mutable state and is safe for concurrent use as long as its
// collaborators are.
type Builder struct {
	model      ports.TypeModel
	qualifiers ports.QualifierLookup
	nullables  ports.NullableLookup
	keys       ports.KeyFactory
}

// NewBuilder creates a new Builder.
func NewBuilder(
	model ports.TypeModel,
	qualifiers ports.QualifierLookup,
	nullables ports.NullableLookup,
	keys ports.KeyFactory,
) *Builder {
	return &Builder{
		model:      model,
		qualifiers: qualifiers,
		nullables:  nullables,
		keys:       keys,
	}
}

// ForRequiredVariables creates one request per parameter, in parameter order.
func (b *Builder) ForRequiredVariables(params []domain.Element) ([]domain.DependencyRequest, error) {
	requests := make([]domain.DependencyRequest, 0, len(params))
	for _, p := range params {
		req, err := b.ForRequiredVariable(p)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// ForRequiredVariable creates the request of a constructor or method parameter.
// The enclosing type is the type declaring the function that owns the parameter.
func (b *Builder) ForRequiredVariable(param domain.Element) (domain.DependencyRequest, error) {
	if param == nil {
		return domain.DependencyRequest{}, precondition("parameter is nil")
	}
	container, err := declaringType(param)
	if err != nil {
		return domain.DependencyRequest{}, err
	}
	return b.build(param, param.Type(), container)
}

// ForRequiredResolvedVariables creates the requests of parameters whose types were
// substituted for the type arguments of container. resolvedTypes is index-aligned
// with params.
func (b *Builder) ForRequiredResolvedVariables(
	container domain.Type,
	params []domain.Element,
	resolvedTypes []domain.Type,
) ([]domain.DependencyRequest, error) {
	if len(params) != len(resolvedTypes) {
		err := zerr.With(precondition("resolved types do not match parameters"), "parameters", len(params))
		return nil, zerr.With(err, "resolved_types", len(resolvedTypes))
	}
	requests := make([]domain.DependencyRequest, 0, len(params))
	for i, p := range params {
		req, err := b.ForRequiredResolvedVariable(container, p, resolvedTypes[i])
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// ForRequiredResolvedVariable creates the request of a parameter whose type was
// already substituted. container is used as the enclosing type as is.
func (b *Builder) ForRequiredResolvedVariable(
	container domain.Type,
	param domain.Element,
	resolvedType domain.Type,
) (domain.DependencyRequest, error) {
	switch {
	case param == nil:
		return domain.DependencyRequest{}, precondition("parameter is nil")
	case resolvedType == nil:
		return domain.DependencyRequest{}, zerr.With(precondition("resolved type is nil"), "element", param.Name())
	case container == nil:
		return domain.DependencyRequest{}, zerr.With(precondition("container type is nil"), "element", param.Name())
	}
	return b.build(param, resolvedType, container)
}

// ForComponentProvisionMethod creates the request of a component provision method.
func (b *Builder) ForComponentProvisionMethod(method domain.Element) (domain.DependencyRequest, error) {
	if err := b.checkAccessor(method, "component provision methods must have no parameters"); err != nil {
		return domain.DependencyRequest{}, err
	}
	container, err := declaringType(method)
	if err != nil {
		return domain.DependencyRequest{}, err
	}
	return b.build(method, method.ReturnType(), container)
}

// ForComponentProductionMethod creates the request of a production component method.
// A method returning inject.Future[T] requests T as a future; this is the only site
// where a future can be requested, so classification never sees the Future shape.
func (b *Builder) ForComponentProductionMethod(method domain.Element) (domain.DependencyRequest, error) {
	if err := b.checkAccessor(method, "component production methods must have no parameters"); err != nil {
		return domain.DependencyRequest{}, err
	}
	container, err := declaringType(method)
	if err != nil {
		return domain.DependencyRequest{}, err
	}

	t := method.ReturnType()
	if b.model.IsTypeVariable(t) || !b.model.IsWrapper(t, domain.WrapperFuture) {
		return b.build(method, t, container)
	}

	qualifier, err := b.qualifier(method)
	if err != nil {
		return domain.DependencyRequest{}, err
	}
	payload, err := b.model.SoleTypeArgument(t)
	if err != nil {
		return domain.DependencyRequest{}, zerr.With(zerr.Wrap(domain.ErrPreconditionViolation, err.Error()), "type", t.String())
	}
	key, err := b.keys.ForQualifiedType(qualifier, payload)
	if err != nil {
		return domain.DependencyRequest{}, withElement(zerr.Wrap(err, "failed to build key"), method)
	}
	return domain.NewDependencyRequest(domain.KindFuture, key, method, container, false), nil
}

// ForComponentMembersInjectionMethod creates the request of a component method that
// injects the members of its single parameter.
func (b *Builder) ForComponentMembersInjectionMethod(method domain.Element) (domain.DependencyRequest, error) {
	if method == nil {
		return domain.DependencyRequest{}, precondition("method is nil")
	}
	qualifier, err := b.qualifier(method)
	if err != nil {
		return domain.DependencyRequest{}, err
	}
	if !qualifier.IsZero() {
		return domain.DependencyRequest{}, invalidQualifier(method, qualifier)
	}
	params := method.Parameters()
	if len(params) != 1 {
		err := withElement(zerr.Wrap(domain.ErrInvalidSiteShape, "members-injection methods must have exactly one parameter"), method)
		return domain.DependencyRequest{}, zerr.With(err, "parameters", len(params))
	}
	container, err := declaringType(method)
	if err != nil {
		return domain.DependencyRequest{}, err
	}
	key, err := b.keys.ForMembersInjectedType(params[0].Type())
	if err != nil {
		return domain.DependencyRequest{}, withElement(zerr.Wrap(err, "failed to build members-injection key"), method)
	}
	return domain.NewDependencyRequest(domain.KindMembersInjector, key, method, container, false), nil
}

// ForMembersInjectedType creates the members-injection request of a type itself.
// The type's own declaration is the request element and the type is its own
// enclosing type.
func (b *Builder) ForMembersInjectedType(t domain.Type) (domain.DependencyRequest, error) {
	if t == nil {
		return domain.DependencyRequest{}, precondition("members-injected type is nil")
	}
	elem, err := b.model.AsElement(t)
	if err != nil {
		return domain.DependencyRequest{}, zerr.With(zerr.Wrap(domain.ErrPreconditionViolation, err.Error()), "type", t.String())
	}
	key, err := b.keys.ForMembersInjectedType(t)
	if err != nil {
		return domain.DependencyRequest{}, zerr.With(zerr.Wrap(err, "failed to build members-injection key"), "type", t.String())
	}
	return domain.NewDependencyRequest(domain.KindMembersInjector, key, elem, t, false), nil
}

// ForImplicitMapBinding creates the provider request behind a map request. A request
// for map[K]V is satisfied by depending on map[K]Provider[V]; delegateKey is the key
// of that provider map.
func (b *Builder) ForImplicitMapBinding(
	delegating domain.DependencyRequest,
	delegateKey domain.Key,
) (domain.DependencyRequest, error) {
	elem := delegating.RequestElement()
	if elem == nil {
		return domain.DependencyRequest{}, precondition("delegating request has no request element")
	}
	if delegateKey.IsZero() {
		return domain.DependencyRequest{}, withElement(precondition("delegate key is unset"), elem)
	}
	container, err := declaringType(elem)
	if err != nil {
		return domain.DependencyRequest{}, err
	}
	return domain.NewDependencyRequest(domain.KindProvider, delegateKey, elem, container, false), nil
}

func (b *Builder) build(elem domain.Element, t domain.Type, container domain.Type) (domain.DependencyRequest, error) {
	qualifier, err := b.qualifier(elem)
	if err != nil {
		return domain.DependencyRequest{}, err
	}

	c, err := Classify(b.model, t)
	if err != nil {
		return domain.DependencyRequest{}, withElement(err, elem)
	}
	if c.Kind == domain.KindMembersInjector && !qualifier.IsZero() {
		return domain.DependencyRequest{}, invalidQualifier(elem, qualifier)
	}

	key, err := b.keys.ForQualifiedType(qualifier, c.Payload)
	if err != nil {
		return domain.DependencyRequest{}, withElement(zerr.Wrap(err, "failed to build key"), elem)
	}

	// Only instances can be non-null; every other kind wraps the value.
	allowsNull := c.Kind != domain.KindInstance
	if !allowsNull {
		_, allowsNull = b.nullables.NullableMarker(elem)
	}

	return domain.NewDependencyRequest(c.Kind, key, elem, container, allowsNull), nil
}

func (b *Builder) qualifier(elem domain.Element) (domain.Annotation, error) {
	q, err := b.qualifiers.Qualifier(elem)
	if err != nil {
		return domain.Annotation{}, withElement(err, elem)
	}
	return q, nil
}

func (b *Builder) checkAccessor(method domain.Element, shapeMessage string) error {
	if method == nil {
		return precondition("method is nil")
	}
	if n := len(method.Parameters()); n > 0 {
		err := withElement(zerr.Wrap(domain.ErrInvalidSiteShape, shapeMessage), method)
		return zerr.With(err, "parameters", n)
	}
	if method.ReturnType() == nil {
		return withElement(zerr.Wrap(domain.ErrInvalidSiteShape, "component methods must return a value"), method)
	}
	return nil
}

// declaringType walks up the containment chain of elem to the nearest type declaration.
func declaringType(elem domain.Element) (domain.Type, error) {
	for e := elem.Enclosing(); e != nil; e = e.Enclosing() {
		if e.Kind() != domain.ElementType {
			continue
		}
		if t := e.Type(); t != nil {
			return t, nil
		}
		break
	}
	return nil, withElement(precondition("element is not enclosed by a declared type"), elem)
}

func precondition(msg string) error {
	return zerr.Wrap(domain.ErrPreconditionViolation, msg)
}

func invalidQualifier(elem domain.Element, qualifier domain.Annotation) error {
	err := withElement(zerr.Wrap(domain.ErrInvalidQualifierOnMembersInjector, "invalid request"), elem)
	return zerr.With(err, "qualifier", qualifier.String())
}

func withElement(err error, elem domain.Element) error {
	err = zerr.With(err, "element", elem.Name())
	if pos := elem.Pos(); pos != "" {
		err = zerr.With(err, "position", pos)
	}
	return err
}
