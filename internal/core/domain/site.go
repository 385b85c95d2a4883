package domain

// SiteKind identifies the syntactic site a dependency request is issued from.
type SiteKind uint8

const (
	// SiteConstructor is an inject constructor or method; each parameter is a request.
	SiteConstructor SiteKind = iota + 1
	// SiteResolvedConstructor is an inject constructor of a generic type whose parameter
	// types were substituted for a concrete instantiation.
	SiteResolvedConstructor
	// SiteProvisionAccessor is a provision method of a component.
	SiteProvisionAccessor
	// SiteProductionAccessor is a method of a production component.
	SiteProductionAccessor
	// SiteMembersInjectionAccessor is a component method that injects the members of its parameter.
	SiteMembersInjectionAccessor
	// SiteMembersInjectedType is a type whose members are injected directly.
	SiteMembersInjectedType
)

// String returns the snake_case name of the site kind.
func (k SiteKind) String() string {
	switch k {
	case SiteConstructor:
		return "constructor"
	case SiteResolvedConstructor:
		return "resolved_constructor"
	case SiteProvisionAccessor:
		return "provision_accessor"
	case SiteProductionAccessor:
		return "production_accessor"
	case SiteMembersInjectionAccessor:
		return "members_injection_accessor"
	case SiteMembersInjectedType:
		return "members_injected_type"
	default:
		return "unknown"
	}
}

// Site is a discovered request site.
type Site struct {
	Kind SiteKind
	// Element is the function, method or accessor issuing the requests.
	// It is nil for SiteMembersInjectedType.
	Element Element
	// Container is the substitution context of a resolved constructor, or the
	// injected type of a members-injected type site.
	Container Type
	// ResolvedTypes holds the substituted parameter types of a resolved constructor,
	// index-aligned with Element.Parameters().
	ResolvedTypes []Type
}

// Package is a loaded Go package and the request sites found in it.
type Package struct {
	Path  string
	Sites []Site
}
