package typemodel

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"sort"
	"strings"

	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/tools/go/packages"
)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedImports |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Directive names understood by site discovery.
const (
	directiveInject              = "inject"
	directiveComponent           = "component"
	directiveProductionComponent = "production_component"
	directiveMembers             = "members"
)

// component is an annotated component interface and the accessors declared on it.
type component struct {
	pkg       *packages.Package
	accessors []*types.Func
}

// Load loads the packages matching patterns in dir and discovers their request
// sites. Packages are returned sorted by import path; sites keep source order.
func (m *Model) Load(ctx context.Context, dir string, patterns []string) ([]*domain.Package, error) {
	cfg := &packages.Config{
		Context: ctx,
		Dir:     dir,
		Fset:    m.fset,
		Mode:    loadMode,
	}
	roots, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrPackageLoadFailed, err.Error()), "patterns", strings.Join(patterns, " "))
	}
	if err := loadErrors(roots); err != nil {
		return nil, err
	}

	seen := make(map[*types.Package]bool)
	for _, p := range roots {
		if p.Types != nil {
			m.indexImports(p.Types, seen)
		}
	}

	result := make([]*domain.Package, 0, len(roots))
	generic := make(map[*types.TypeName]*types.Func)
	var components []component
	byPath := make(map[string]*domain.Package, len(roots))
	for _, p := range roots {
		m.indexDirectives(p)
		out := &domain.Package{Path: p.PkgPath}
		comps := m.discover(p, out, generic)
		components = append(components, comps...)
		result = append(result, out)
		byPath[p.PkgPath] = out
	}

	for _, c := range components {
		m.resolveConstructors(byPath[c.pkg.PkgPath], c.accessors, generic)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Path < result[j].Path })
	return result, nil
}

func loadErrors(roots []*packages.Package) error {
	var msgs []string
	packages.Visit(roots, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			msgs = append(msgs, e.Error())
		}
	})
	if len(msgs) == 0 {
		return nil
	}
	err := zerr.Wrap(domain.ErrPackageLoadFailed, msgs[0])
	return zerr.With(err, "errors", len(msgs))
}

// indexImports indexes the wrapper shapes of pkg and everything it imports.
func (m *Model) indexImports(pkg *types.Package, seen map[*types.Package]bool) {
	if seen[pkg] {
		return
	}
	seen[pkg] = true
	m.indexWrappers(pkg)
	for _, imp := range pkg.Imports() {
		m.indexImports(imp, seen)
	}
}

// indexWrappers records the declarations of the configured wrapper shapes.
func (m *Model) indexWrappers(pkg *types.Package) {
	for w, name := range m.wrappers {
		if name.Path != pkg.Path() {
			continue
		}
		if obj, ok := pkg.Scope().Lookup(name.Name).(*types.TypeName); ok {
			m.wrapperObjs[w] = obj
		}
	}
}

// indexDirectives attaches the directive lines of every commented declaration in
// p to its object.
func (m *Model) indexDirectives(p *packages.Package) {
	for _, f := range p.Syntax {
		for _, decl := range f.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				m.attach(p.TypesInfo.Defs[d.Name], d.Doc)
			case *ast.GenDecl:
				if d.Tok != token.TYPE {
					continue
				}
				for _, spec := range d.Specs {
					ts := spec.(*ast.TypeSpec)
					doc := ts.Doc
					if doc == nil && !d.Lparen.IsValid() {
						doc = d.Doc
					}
					m.attach(p.TypesInfo.Defs[ts.Name], doc)
					it, ok := ts.Type.(*ast.InterfaceType)
					if !ok {
						continue
					}
					for _, field := range it.Methods.List {
						for _, name := range field.Names {
							m.attach(p.TypesInfo.Defs[name], field.Doc)
						}
					}
				}
			}
		}
	}
}

func (m *Model) attach(obj types.Object, doc *ast.CommentGroup) {
	if obj == nil || doc == nil {
		return
	}
	marker := m.prefix + ":"
	var lines []string
	for _, c := range doc.List {
		text := strings.TrimPrefix(c.Text, "//")
		if strings.HasPrefix(text, marker) {
			lines = append(lines, strings.TrimSpace(text))
		}
	}
	if len(lines) > 0 {
		m.docs[obj] = lines
	}
}

// hasDirective reports whether obj carries the bare directive name.
func (m *Model) hasDirective(obj types.Object, name string) bool {
	want := m.prefix + ":" + name
	for _, line := range m.docs[obj] {
		if line == want || strings.HasPrefix(line, want+" ") {
			return true
		}
	}
	return false
}

// discover appends the sites of p to out in source order. Generic inject
// constructors are recorded in generic, keyed by the type they construct.
func (m *Model) discover(p *packages.Package, out *domain.Package, generic map[*types.TypeName]*types.Func) []component {
	var comps []component
	for _, f := range p.Syntax {
		for _, decl := range f.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				fn, ok := p.TypesInfo.Defs[d.Name].(*types.Func)
				if !ok || !m.hasDirective(fn, directiveInject) {
					continue
				}
				out.Sites = append(out.Sites, domain.Site{Kind: domain.SiteConstructor, Element: m.funcElement(fn)})
				sig := fn.Type().(*types.Signature)
				if sig.Recv() == nil && sig.TypeParams().Len() > 0 {
					if owner := declaringTypeName(fn); owner != nil {
						generic[owner] = fn
					}
				}
			case *ast.GenDecl:
				if d.Tok != token.TYPE {
					continue
				}
				for _, spec := range d.Specs {
					tn, ok := p.TypesInfo.Defs[spec.(*ast.TypeSpec).Name].(*types.TypeName)
					if !ok {
						continue
					}
					if c, ok := m.discoverType(p, tn, out); ok {
						comps = append(comps, c)
					}
				}
			}
		}
	}
	return comps
}

func (m *Model) discoverType(p *packages.Package, tn *types.TypeName, out *domain.Package) (component, bool) {
	if m.hasDirective(tn, directiveMembers) {
		out.Sites = append(out.Sites, domain.Site{
			Kind:      domain.SiteMembersInjectedType,
			Container: Wrap(tn.Type()),
		})
	}

	production := m.hasDirective(tn, directiveProductionComponent)
	if !production && !m.hasDirective(tn, directiveComponent) {
		return component{}, false
	}
	iface, ok := tn.Type().Underlying().(*types.Interface)
	if !ok {
		return component{}, false
	}

	c := component{pkg: p}
	for _, fn := range declaredMethods(iface) {
		kind := domain.SiteProvisionAccessor
		switch {
		case isMembersInjection(fn.Type().(*types.Signature)):
			kind = domain.SiteMembersInjectionAccessor
		case production:
			kind = domain.SiteProductionAccessor
		}
		out.Sites = append(out.Sites, domain.Site{Kind: kind, Element: m.funcElement(fn)})
		if kind != domain.SiteMembersInjectionAccessor {
			c.accessors = append(c.accessors, fn)
		}
	}
	return c, true
}

// declaredMethods returns the explicit methods of iface in source order.
func declaredMethods(iface *types.Interface) []*types.Func {
	methods := make([]*types.Func, 0, iface.NumExplicitMethods())
	for i := range iface.NumExplicitMethods() {
		methods = append(methods, iface.ExplicitMethod(i))
	}
	sort.SliceStable(methods, func(i, j int) bool { return methods[i].Pos() < methods[j].Pos() })
	return methods
}

// isMembersInjection reports whether a component method injects the members of
// its only parameter: it returns nothing or the parameter itself.
func isMembersInjection(sig *types.Signature) bool {
	if sig.Params().Len() != 1 {
		return false
	}
	switch sig.Results().Len() {
	case 0:
		return true
	case 1:
		return types.Identical(sig.Results().At(0).Type(), sig.Params().At(0).Type())
	}
	return false
}

// resolveConstructors adds a resolved constructor site for every accessor result
// that instantiates a type with a generic inject constructor. Each instantiation
// is resolved once per package.
func (m *Model) resolveConstructors(out *domain.Package, accessors []*types.Func, generic map[*types.TypeName]*types.Func) {
	for _, acc := range accessors {
		result := resultType(acc.Type().(*types.Signature))
		if result == nil {
			continue
		}
		n, ok := named(result, true)
		if !ok || n.TypeArgs().Len() == 0 {
			continue
		}
		ctor, ok := generic[n.Origin().Obj()]
		if !ok || hasResolved(out, n) {
			continue
		}
		site, ok := m.resolvedSite(ctor, n)
		if !ok {
			continue
		}
		out.Sites = append(out.Sites, site)
	}
}

func (m *Model) resolvedSite(ctor *types.Func, container *types.Named) (domain.Site, bool) {
	sig := ctor.Type().(*types.Signature)
	args, ok := typeArguments(sig, container)
	if !ok {
		return domain.Site{}, false
	}
	inst, err := types.Instantiate(nil, sig, args, true)
	if err != nil {
		return domain.Site{}, false
	}
	params := inst.(*types.Signature).Params()
	resolved := make([]domain.Type, params.Len())
	for i := range params.Len() {
		resolved[i] = Wrap(params.At(i).Type())
	}
	return domain.Site{
		Kind:          domain.SiteResolvedConstructor,
		Element:       m.funcElement(ctor),
		Container:     Wrap(container),
		ResolvedTypes: resolved,
	}, true
}

// typeArguments binds the type parameters of a generic constructor by matching
// its result type against container. The constructor may declare its type
// parameters in any order; a parameter that does not occur in the result cannot be
// bound.
func typeArguments(sig *types.Signature, container *types.Named) ([]types.Type, bool) {
	result, ok := named(resultType(sig), true)
	if !ok || result.TypeArgs().Len() != container.TypeArgs().Len() {
		return nil, false
	}
	bound := make(map[*types.TypeParam]types.Type, sig.TypeParams().Len())
	for i := range result.TypeArgs().Len() {
		want := container.TypeArgs().At(i)
		tp, ok := result.TypeArgs().At(i).(*types.TypeParam)
		if !ok {
			if !types.Identical(result.TypeArgs().At(i), want) {
				return nil, false
			}
			continue
		}
		if prev, seen := bound[tp]; seen && !types.Identical(prev, want) {
			return nil, false
		}
		bound[tp] = want
	}

	args := make([]types.Type, sig.TypeParams().Len())
	for i := range sig.TypeParams().Len() {
		arg, ok := bound[sig.TypeParams().At(i)]
		if !ok {
			return nil, false
		}
		args[i] = arg
	}
	return args, true
}

func hasResolved(out *domain.Package, t types.Type) bool {
	want := Wrap(t)
	for _, s := range out.Sites {
		if s.Kind == domain.SiteResolvedConstructor && want.Identical(s.Container) {
			return true
		}
	}
	return false
}
