package app

import (
	"errors"

	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports"
	"go.trai.ch/syringe/internal/engine/request"
	"go.trai.ch/zerr"
)

// analyzer turns the sites of a package into request records.
type analyzer struct {
	builder *request.Builder
	maps    ports.MapTypes
	keys    ports.KeyFactory
}

// analyzePackage builds the records of every site of pkg. Sites the builder rejects
// become diagnostics; a precondition violation aborts the package.
func (an *analyzer) analyzePackage(pkg *domain.Package) (domain.PackageReport, []domain.Diagnostic, error) {
	pr := domain.PackageReport{Path: pkg.Path}
	var diags []domain.Diagnostic

	for _, site := range pkg.Sites {
		source, pos := describe(site)
		records, err := an.site(site, source, pos)
		if errors.Is(err, domain.ErrPreconditionViolation) {
			err = zerr.With(zerr.Wrap(err, "failed to analyse site"), "package", pkg.Path)
			return domain.PackageReport{}, nil, zerr.With(err, "site", source)
		}
		if err != nil {
			diags = append(diags, domain.Diagnostic{Package: pkg.Path, Element: source, Position: pos, Err: err})
			continue
		}
		pr.Records = append(pr.Records, records...)
	}
	return pr, diags, nil
}

func (an *analyzer) site(site domain.Site, source, pos string) ([]domain.RequestRecord, error) {
	var (
		requests  []domain.DependencyRequest
		requested []domain.Type
		err       error
	)

	switch site.Kind {
	case domain.SiteConstructor:
		if site.Element.Enclosing() == nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSiteShape, "inject constructors must return a declared type"), "element", source)
		}
		params := site.Element.Parameters()
		requests, err = an.builder.ForRequiredVariables(params)
		for _, p := range params {
			requested = append(requested, p.Type())
		}
	case domain.SiteResolvedConstructor:
		requests, err = an.builder.ForRequiredResolvedVariables(site.Container, site.Element.Parameters(), site.ResolvedTypes)
		requested = site.ResolvedTypes
	case domain.SiteProvisionAccessor:
		requests, err = one(an.builder.ForComponentProvisionMethod(site.Element))
		requested = []domain.Type{site.Element.ReturnType()}
	case domain.SiteProductionAccessor:
		requests, err = one(an.builder.ForComponentProductionMethod(site.Element))
		requested = []domain.Type{site.Element.ReturnType()}
	case domain.SiteMembersInjectionAccessor:
		requests, err = one(an.builder.ForComponentMembersInjectionMethod(site.Element))
	case domain.SiteMembersInjectedType:
		requests, err = one(an.builder.ForMembersInjectedType(site.Container))
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrPreconditionViolation, "unknown site kind"), "site_kind", int(site.Kind))
	}
	if err != nil {
		return nil, err
	}

	records := make([]domain.RequestRecord, 0, len(requests))
	for i, req := range requests {
		records = append(records, domain.RequestRecord{Site: site.Kind, Source: source, Position: pos, Request: req})
		if i >= len(requested) {
			continue
		}
		implicit, ok, err := an.implicitMapRequest(req, requested[i])
		if err != nil {
			return nil, err
		}
		if ok {
			records = append(records, domain.RequestRecord{Site: site.Kind, Source: source, Position: pos, Request: implicit, Implicit: true})
		}
	}
	return records, nil
}

// implicitMapRequest returns the map[K]Provider[V] request behind an instance
// request for map[K]V.
func (an *analyzer) implicitMapRequest(req domain.DependencyRequest, requested domain.Type) (domain.DependencyRequest, bool, error) {
	if req.Kind() != domain.KindInstance || requested == nil {
		return domain.DependencyRequest{}, false, nil
	}
	providers, ok := an.maps.MapOfProviders(requested)
	if !ok {
		return domain.DependencyRequest{}, false, nil
	}
	key, err := an.keys.ForQualifiedType(req.Key().Qualifier(), providers)
	if err != nil {
		return domain.DependencyRequest{}, false, zerr.Wrap(err, "failed to build provider map key")
	}
	implicit, err := an.builder.ForImplicitMapBinding(req, key)
	if err != nil {
		return domain.DependencyRequest{}, false, err
	}
	return implicit, true, nil
}

func one(req domain.DependencyRequest, err error) ([]domain.DependencyRequest, error) {
	if err != nil {
		return nil, err
	}
	return []domain.DependencyRequest{req}, nil
}

// describe returns the display name and position of the declaration behind site.
func describe(site domain.Site) (string, string) {
	if site.Element == nil {
		if site.Container != nil {
			return site.Container.String(), ""
		}
		return "", ""
	}
	name := site.Element.Name()
	if site.Element.Kind() == domain.ElementMethod {
		if owner := site.Element.Enclosing(); owner != nil {
			name = owner.Name() + "." + name
		}
	}
	return name, site.Element.Pos()
}
