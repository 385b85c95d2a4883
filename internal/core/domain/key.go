package domain

import "strings"

// Key identifies a binding by an optional qualifier and a canonical type.
// Keys are comparable with ==.
type Key struct {
	qualifier        Annotation
	typ              InternedString
	membersInjection bool
	fingerprint      uint64
}

// NewKey creates a Key. It is called by key factories, which own the canonical
// spelling of the type and the fingerprint derived from the other fields.
func NewKey(qualifier Annotation, canonicalType string, membersInjection bool, fingerprint uint64) Key {
	return Key{
		qualifier:        qualifier,
		typ:              NewInternedString(canonicalType),
		membersInjection: membersInjection,
		fingerprint:      fingerprint,
	}
}

// Qualifier returns the qualifier of the key; the zero Annotation means unqualified.
func (k Key) Qualifier() Annotation {
	return k.qualifier
}

// Type returns the canonical spelling of the key type.
func (k Key) Type() string {
	return k.typ.String()
}

// MembersInjection reports whether the key identifies a members-injection binding.
func (k Key) MembersInjection() bool {
	return k.membersInjection
}

// Fingerprint returns a stable hash of the key.
func (k Key) Fingerprint() uint64 {
	return k.fingerprint
}

// IsZero reports whether the key is unset.
func (k Key) IsZero() bool {
	return k == Key{}
}

// String renders the key as [@Qualifier ][members-injection ]Type.
func (k Key) String() string {
	var b strings.Builder
	if !k.qualifier.IsZero() {
		b.WriteString("@")
		b.WriteString(k.qualifier.String())
		b.WriteString(" ")
	}
	if k.membersInjection {
		b.WriteString("members-injection ")
	}
	b.WriteString(k.Type())
	return b.String()
}
