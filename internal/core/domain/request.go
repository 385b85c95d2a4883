package domain

import "fmt"

// DependencyRequest represents a request for a key at an injection point.
// Parameters of inject constructors and component accessors are examples of requests.
//
// A DependencyRequest is immutable. Compare requests with Equal, not ==: the request
// element is deliberately not part of a request's identity, since the same logical
// request can be issued by different syntactic elements.
type DependencyRequest struct {
	kind           Kind
	key            Key
	requestElement Element
	enclosingType  Type
	allowsNull     bool
}

// NewDependencyRequest assembles a request from already-validated parts.
func NewDependencyRequest(kind Kind, key Key, requestElement Element, enclosingType Type, allowsNull bool) DependencyRequest {
	return DependencyRequest{
		kind:           kind,
		key:            key,
		requestElement: requestElement,
		enclosingType:  enclosingType,
		allowsNull:     allowsNull,
	}
}

// Kind returns what kind of value is requested.
func (r DependencyRequest) Kind() Kind {
	return r.kind
}

// Key returns the key of the requested binding.
func (r DependencyRequest) Key() Key {
	return r.key
}

// RequestElement returns the element that issued the request.
func (r DependencyRequest) RequestElement() Element {
	return r.requestElement
}

// EnclosingType returns the possibly resolved type that contains the requesting
// element. For members-injection requests this is the injected type itself.
func (r DependencyRequest) EnclosingType() Type {
	return r.enclosingType
}

// AllowsNull reports whether the request tolerates an absent value.
func (r DependencyRequest) AllowsNull() bool {
	return r.allowsNull
}

// Equal reports whether both requests have the same kind, key, enclosing type and
// nullability. The request element is ignored.
func (r DependencyRequest) Equal(other DependencyRequest) bool {
	if r.kind != other.kind || r.key != other.key || r.allowsNull != other.allowsNull {
		return false
	}
	if r.enclosingType == nil || other.enclosingType == nil {
		return r.enclosingType == nil && other.enclosingType == nil
	}
	return r.enclosingType.Identical(other.enclosingType)
}

// String renders the request for diagnostics.
func (r DependencyRequest) String() string {
	nullable := ""
	if r.allowsNull {
		nullable = " nullable"
	}
	enclosing := "<none>"
	if r.enclosingType != nil {
		enclosing = r.enclosingType.String()
	}
	return fmt.Sprintf("%s %s in %s%s", r.kind, r.key, enclosing, nullable)
}
