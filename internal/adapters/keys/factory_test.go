package keys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/syringe/internal/adapters/keys"
	"go.trai.ch/syringe/internal/core/domain"
)

type namedType string

func (n namedType) String() string { return string(n) }

func (n namedType) Identical(other domain.Type) bool { return other == n }

func TestFactory_ForQualifiedType(t *testing.T) {
	f := keys.NewFactory()
	primary := domain.Annotation{Name: "Named", Value: "primary"}

	a, err := f.ForQualifiedType(primary, namedType("example.com/app.DB"))
	require.NoError(t, err)
	b, err := f.ForQualifiedType(primary, namedType("example.com/app.DB"))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.True(t, a == b)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Equal(t, primary, a.Qualifier())
	assert.Equal(t, "example.com/app.DB", a.Type())
	assert.False(t, a.MembersInjection())
	assert.Equal(t, `@Named("primary") example.com/app.DB`, a.String())
}

func TestFactory_DistinctKeys(t *testing.T) {
	f := keys.NewFactory()
	db := namedType("example.com/app.DB")

	plain, err := f.ForQualifiedType(domain.Annotation{}, db)
	require.NoError(t, err)
	qualified, err := f.ForQualifiedType(domain.Annotation{Name: "Primary"}, db)
	require.NoError(t, err)
	valued, err := f.ForQualifiedType(domain.Annotation{Name: "Primary", Value: "x"}, db)
	require.NoError(t, err)
	members, err := f.ForMembersInjectedType(db)
	require.NoError(t, err)
	other, err := f.ForQualifiedType(domain.Annotation{}, namedType("example.com/app.Cache"))
	require.NoError(t, err)

	all := []domain.Key{plain, qualified, valued, members, other}
	for i := range all {
		for j := range all {
			if i == j {
				continue
			}
			assert.NotEqual(t, all[i], all[j], "%s vs %s", all[i], all[j])
			assert.NotEqual(t, all[i].Fingerprint(), all[j].Fingerprint(), "%s vs %s", all[i], all[j])
		}
	}
	assert.True(t, members.MembersInjection())
	assert.Equal(t, "members-injection example.com/app.DB", members.String())
}

func TestFactory_NilType(t *testing.T) {
	f := keys.NewFactory()

	_, err := f.ForQualifiedType(domain.Annotation{}, nil)
	require.ErrorIs(t, err, domain.ErrPreconditionViolation)

	_, err = f.ForMembersInjectedType(nil)
	require.ErrorIs(t, err, domain.ErrPreconditionViolation)
}

type paramType struct {
	name  string
	owner string
}

func (p paramType) String() string { return p.name }

func (p paramType) Identical(other domain.Type) bool { return other == p }

func (p paramType) Canonical() string { return p.name + " where " + p.name + " of " + p.owner }

func TestFactory_CanonicalSpelling(t *testing.T) {
	f := keys.NewFactory()

	repo, err := f.ForQualifiedType(domain.Annotation{}, paramType{name: "T", owner: "example.com/app.NewRepo"})
	require.NoError(t, err)
	box, err := f.ForQualifiedType(domain.Annotation{}, paramType{name: "T", owner: "example.com/app.NewBox"})
	require.NoError(t, err)

	assert.NotEqual(t, repo, box)
	assert.NotEqual(t, repo.Fingerprint(), box.Fingerprint())
	assert.Equal(t, "T where T of example.com/app.NewRepo", repo.Type())
}
