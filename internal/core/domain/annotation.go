package domain

import "strconv"

// Annotation is a marker attached to an element, such as a qualifier or a nullable marker.
// The zero value means no annotation is present.
type Annotation struct {
	// Name is the annotation name, e.g. "Named".
	Name string
	// Value is the optional argument, e.g. "primary".
	Value string
}

// IsZero reports whether the annotation is absent.
func (a Annotation) IsZero() bool {
	return a == Annotation{}
}

// String renders the annotation as Name or Name("Value").
func (a Annotation) String() string {
	if a.IsZero() {
		return ""
	}
	if a.Value == "" {
		return a.Name
	}
	return a.Name + "(" + strconv.Quote(a.Value) + ")"
}
