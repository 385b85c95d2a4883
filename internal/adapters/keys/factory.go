// Package keys builds canonical binding keys.
package keys

import (
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.KeyFactory = (*Factory)(nil)

// canonicalType is implemented by types whose String spelling is ambiguous as a key,
// such as a type parameter spelled by its bare name.
type canonicalType interface {
	Canonical() string
}

// Factory creates keys from the fully package-qualified spelling of a type, or
// from its canonical spelling when the type provides one.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// ForQualifiedType returns the key of t under qualifier.
func (f *Factory) ForQualifiedType(qualifier domain.Annotation, t domain.Type) (domain.Key, error) {
	return f.key(qualifier, t, false)
}

// ForMembersInjectedType returns the members-injection key of t.
func (f *Factory) ForMembersInjectedType(t domain.Type) (domain.Key, error) {
	return f.key(domain.Annotation{}, t, true)
}

func (f *Factory) key(qualifier domain.Annotation, t domain.Type, membersInjection bool) (domain.Key, error) {
	if t == nil {
		return domain.Key{}, zerr.Wrap(domain.ErrPreconditionViolation, "key type is nil")
	}
	canonical := t.String()
	if c, ok := t.(canonicalType); ok {
		canonical = c.Canonical()
	}
	return domain.NewKey(qualifier, canonical, membersInjection, fingerprint(qualifier, canonical, membersInjection)), nil
}

// fingerprint hashes the key fields, separated by zero bytes.
func fingerprint(qualifier domain.Annotation, canonical string, membersInjection bool) uint64 {
	hasher := xxhash.New()
	_, _ = hasher.WriteString(qualifier.Name)
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(qualifier.Value)
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(canonical)
	_, _ = hasher.Write([]byte{0})
	if membersInjection {
		_, _ = hasher.Write([]byte{1})
	} else {
		_, _ = hasher.Write([]byte{0})
	}
	return hasher.Sum64()
}
