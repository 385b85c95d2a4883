package domain

// Type is an opaque type expression owned by the type model.
type Type interface {
	// String returns the fully package-qualified spelling of the type.
	String() string
	// Identical reports whether both expressions denote the same type.
	Identical(other Type) bool
}

// ElementKind identifies the syntactic role of an Element.
type ElementKind uint8

const (
	// ElementParameter is a function or method parameter.
	ElementParameter ElementKind = iota + 1
	// ElementFunc is a package-level function, such as a constructor.
	ElementFunc
	// ElementMethod is a method, either concrete or declared by an interface.
	ElementMethod
	// ElementType is a type declaration.
	ElementType
)

// String returns the lowercase name of the element kind.
func (k ElementKind) String() string {
	switch k {
	case ElementParameter:
		return "parameter"
	case ElementFunc:
		return "func"
	case ElementMethod:
		return "method"
	case ElementType:
		return "type"
	default:
		return "unknown"
	}
}

// Element is an opaque syntactic element that can issue a dependency request.
type Element interface {
	// Name returns the declared name of the element.
	Name() string
	// Kind returns the syntactic role of the element.
	Kind() ElementKind
	// Enclosing returns the element that contains this one, or nil at the top.
	// A parameter is enclosed by its function, a function or method by the type it belongs to.
	Enclosing() Element
	// Type returns the declared type of the element. For a type declaration this is
	// the declared type itself.
	Type() Type
	// Parameters returns the parameters of a function or method.
	Parameters() []Element
	// ReturnType returns the single result type of a function or method, or nil.
	ReturnType() Type
	// Doc returns the raw directive comment lines attached to the element.
	Doc() []string
	// Pos returns a file:line position for diagnostics.
	Pos() string
}
