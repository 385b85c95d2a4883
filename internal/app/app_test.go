package app_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/syringe/internal/adapters/keys"
	"go.trai.ch/syringe/internal/app"
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fakeType struct {
	name string
}

func (t *fakeType) String() string { return t.name }

func (t *fakeType) Identical(other domain.Type) bool { return other == domain.Type(t) }

type fakeElement struct {
	name      string
	kind      domain.ElementKind
	enclosing domain.Element
	typ       domain.Type
	params    []domain.Element
	ret       domain.Type
}

func (e *fakeElement) Name() string { return e.name }

func (e *fakeElement) Kind() domain.ElementKind { return e.kind }

func (e *fakeElement) Enclosing() domain.Element { return e.enclosing }

func (e *fakeElement) Type() domain.Type { return e.typ }

func (e *fakeElement) Parameters() []domain.Element { return e.params }

func (e *fakeElement) ReturnType() domain.Type { return e.ret }

func (e *fakeElement) Doc() []string { return nil }

func (e *fakeElement) Pos() string { return e.name + ".go:1" }

// fixture is a small package: a Service with an inject constructor taking a DB and
// a map of handlers, and an App component.
type fixture struct {
	db, service, routes, providers, appType *fakeType
	serviceDecl, appDecl                    *fakeElement
	newService                              *fakeElement
	serviceAccessor, badInjector            *fakeElement
}

func newFixture() *fixture {
	f := &fixture{
		db:        &fakeType{name: "example.com/app.DB"},
		service:   &fakeType{name: "example.com/app.Service"},
		routes:    &fakeType{name: "map[string]example.com/app.Handler"},
		providers: &fakeType{name: "map[string]go.trai.ch/syringe/inject.Provider[example.com/app.Handler]"},
		appType:   &fakeType{name: "example.com/app.App"},
	}
	f.serviceDecl = &fakeElement{name: "Service", kind: domain.ElementType, typ: f.service}
	f.appDecl = &fakeElement{name: "App", kind: domain.ElementType, typ: f.appType}

	f.newService = &fakeElement{name: "NewService", kind: domain.ElementFunc, enclosing: f.serviceDecl, ret: f.service}
	f.newService.params = []domain.Element{
		&fakeElement{name: "db", kind: domain.ElementParameter, enclosing: f.newService, typ: f.db},
		&fakeElement{name: "routes", kind: domain.ElementParameter, enclosing: f.newService, typ: f.routes},
	}

	f.serviceAccessor = &fakeElement{name: "Service", kind: domain.ElementMethod, enclosing: f.appDecl, ret: f.service}
	f.badInjector = &fakeElement{name: "Inject", kind: domain.ElementMethod, enclosing: f.appDecl}
	f.badInjector.params = []domain.Element{
		&fakeElement{name: "s", kind: domain.ElementParameter, enclosing: f.badInjector, typ: f.service},
		&fakeElement{name: "d", kind: domain.ElementParameter, enclosing: f.badInjector, typ: f.db},
	}
	return f
}

func (f *fixture) pkg(path string, withInvalid bool) *domain.Package {
	p := &domain.Package{
		Path: path,
		Sites: []domain.Site{
			{Kind: domain.SiteConstructor, Element: f.newService},
			{Kind: domain.SiteProvisionAccessor, Element: f.serviceAccessor},
		},
	}
	if withInvalid {
		p.Sites = append(p.Sites, domain.Site{Kind: domain.SiteMembersInjectionAccessor, Element: f.badInjector})
	}
	return p
}

type harness struct {
	configLoader *mocks.MockConfigLoader
	pkgLoader    *mocks.MockPackageLoader
	types        *mocks.MockTypeModel
	maps         *mocks.MockMapTypes
	qualifiers   *mocks.MockQualifierLookup
	nullables    *mocks.MockNullableLookup
	formats      *mocks.MockFormats
	renderer     *mocks.MockRenderer
	logger       *mocks.MockLogger
	app          *app.App
}

func newHarness(t *testing.T, f *fixture) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		configLoader: mocks.NewMockConfigLoader(ctrl),
		pkgLoader:    mocks.NewMockPackageLoader(ctrl),
		types:        mocks.NewMockTypeModel(ctrl),
		maps:         mocks.NewMockMapTypes(ctrl),
		qualifiers:   mocks.NewMockQualifierLookup(ctrl),
		nullables:    mocks.NewMockNullableLookup(ctrl),
		formats:      mocks.NewMockFormats(ctrl),
		renderer:     mocks.NewMockRenderer(ctrl),
		logger:       mocks.NewMockLogger(ctrl),
	}

	h.types.EXPECT().IsTypeVariable(gomock.Any()).Return(false).AnyTimes()
	h.types.EXPECT().IsWrapper(gomock.Any(), gomock.Any()).Return(false).AnyTimes()
	h.qualifiers.EXPECT().Qualifier(gomock.Any()).Return(domain.Annotation{}, nil).AnyTimes()
	h.nullables.EXPECT().NullableMarker(gomock.Any()).Return(domain.Annotation{}, false).AnyTimes()
	h.maps.EXPECT().MapOfProviders(gomock.Any()).DoAndReturn(func(t domain.Type) (domain.Type, bool) {
		if t == domain.Type(f.routes) {
			return f.providers, true
		}
		return nil, false
	}).AnyTimes()
	h.logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	h.logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	frontends := func(*domain.Config) app.Frontend {
		return app.Frontend{
			Loader:     h.pkgLoader,
			Types:      h.types,
			Maps:       h.maps,
			Qualifiers: h.qualifiers,
			Nullables:  h.nullables,
		}
	}
	h.app = app.New(h.configLoader, frontends, keys.NewFactory(), h.formats, h.logger)
	return h
}

func testConfig() *domain.Config {
	cfg := domain.DefaultConfig()
	cfg.Root = "/src"
	cfg.Module = "example.com/app"
	return cfg
}

func TestApp_Requests(t *testing.T) {
	f := newFixture()
	h := newHarness(t, f)
	var buf bytes.Buffer
	var got *domain.Report

	h.formats.EXPECT().Renderer("text").Return(h.renderer, nil)
	h.configLoader.EXPECT().Load(".").Return(testConfig(), nil)
	h.pkgLoader.EXPECT().Load(gomock.Any(), "/src", []string{"./..."}).
		Return([]*domain.Package{f.pkg("example.com/app", false)}, nil)
	h.renderer.EXPECT().Render(&buf, gomock.Any()).DoAndReturn(func(_ io.Writer, r *domain.Report) error {
		got = r
		return nil
	})

	err := h.app.Requests(context.Background(), &buf, app.RequestsOptions{})
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "example.com/app", got.Module)
	assert.Empty(t, got.Diagnostics)
	require.Len(t, got.Packages, 1)

	records := got.Packages[0].Records
	require.Len(t, records, 4)

	assert.Equal(t, domain.SiteConstructor, records[0].Site)
	assert.Equal(t, "NewService", records[0].Source)
	assert.Equal(t, "NewService.go:1", records[0].Position)
	assert.Equal(t, domain.KindInstance, records[0].Request.Kind())
	assert.Equal(t, f.db.name, records[0].Request.Key().Type())
	assert.Equal(t, domain.Type(f.service), records[0].Request.EnclosingType())

	assert.Equal(t, domain.KindInstance, records[1].Request.Kind())
	assert.Equal(t, f.routes.name, records[1].Request.Key().Type())
	assert.False(t, records[1].Implicit)

	implicit := records[2]
	assert.True(t, implicit.Implicit)
	assert.Equal(t, domain.KindProvider, implicit.Request.Kind())
	assert.Equal(t, f.providers.name, implicit.Request.Key().Type())
	assert.Equal(t, "routes", implicit.Request.RequestElement().Name())
	assert.Equal(t, domain.Type(f.service), implicit.Request.EnclosingType())
	assert.False(t, implicit.Request.AllowsNull())

	assert.Equal(t, domain.SiteProvisionAccessor, records[3].Site)
	assert.Equal(t, "App.Service", records[3].Source)
	assert.Equal(t, f.service.name, records[3].Request.Key().Type())
	assert.Equal(t, domain.Type(f.appType), records[3].Request.EnclosingType())
}

func TestApp_Requests_Diagnostics(t *testing.T) {
	f := newFixture()
	h := newHarness(t, f)
	var got *domain.Report

	h.formats.EXPECT().Renderer("yaml").Return(h.renderer, nil)
	h.configLoader.EXPECT().Load("/work/syringe.yaml").Return(testConfig(), nil)
	h.pkgLoader.EXPECT().Load(gomock.Any(), "/work", []string{"./internal/..."}).
		Return([]*domain.Package{f.pkg("example.com/app", true)}, nil)
	h.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).DoAndReturn(func(_ io.Writer, r *domain.Report) error {
		got = r
		return nil
	})

	err := h.app.Requests(context.Background(), io.Discard, app.RequestsOptions{
		Patterns:   []string{"./internal/..."},
		Dir:        "/work",
		ConfigPath: "/work/syringe.yaml",
		Format:     "yaml",
	})
	require.ErrorIs(t, err, domain.ErrDiagnosticsReported)
	require.ErrorIs(t, err, domain.ErrInvalidSiteShape)

	require.NotNil(t, got)
	require.Len(t, got.Packages[0].Records, 4, "valid sites are still reported")
	require.Len(t, got.Diagnostics, 1)
	d := got.Diagnostics[0]
	assert.Equal(t, "example.com/app", d.Package)
	assert.Equal(t, "App.Inject", d.Element)
	assert.Equal(t, "Inject.go:1", d.Position)
	require.ErrorIs(t, d.Err, domain.ErrInvalidSiteShape)
}

func TestApp_Requests_UnknownFormat(t *testing.T) {
	h := newHarness(t, newFixture())

	h.formats.EXPECT().Renderer("json").Return(nil, zerr.Wrap(domain.ErrUnknownFormat, "unsupported output format"))

	err := h.app.Requests(context.Background(), io.Discard, app.RequestsOptions{Format: "json"})
	require.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestApp_Requests_ConfigLoaderError(t *testing.T) {
	h := newHarness(t, newFixture())

	h.formats.EXPECT().Renderer("text").Return(h.renderer, nil)
	h.configLoader.EXPECT().Load(".").Return(nil, zerr.Wrap(domain.ErrConfigParseFailed, "yaml: line 1"))

	err := h.app.Requests(context.Background(), io.Discard, app.RequestsOptions{})
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestApp_Requests_LoadError(t *testing.T) {
	h := newHarness(t, newFixture())

	h.formats.EXPECT().Renderer("text").Return(h.renderer, nil)
	h.configLoader.EXPECT().Load(".").Return(testConfig(), nil)
	h.pkgLoader.EXPECT().Load(gomock.Any(), "/src", gomock.Any()).
		Return(nil, zerr.Wrap(domain.ErrPackageLoadFailed, "no Go files"))

	err := h.app.Requests(context.Background(), io.Discard, app.RequestsOptions{})
	require.ErrorIs(t, err, domain.ErrPackageLoadFailed)
}

func TestApp_Requests_RenderError(t *testing.T) {
	f := newFixture()
	h := newHarness(t, f)
	renderErr := errors.New("broken pipe")

	h.formats.EXPECT().Renderer("text").Return(h.renderer, nil)
	h.configLoader.EXPECT().Load(".").Return(testConfig(), nil)
	h.pkgLoader.EXPECT().Load(gomock.Any(), "/src", gomock.Any()).
		Return([]*domain.Package{f.pkg("example.com/app", false)}, nil)
	h.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(renderErr)

	err := h.app.Requests(context.Background(), io.Discard, app.RequestsOptions{})
	require.ErrorIs(t, err, renderErr)
}

func TestApp_Analyze_PreconditionAborts(t *testing.T) {
	f := newFixture()
	h := newHarness(t, f)

	broken := &domain.Package{
		Path: "example.com/app",
		Sites: []domain.Site{{
			Kind:          domain.SiteResolvedConstructor,
			Element:       f.newService,
			Container:     f.service,
			ResolvedTypes: []domain.Type{f.db},
		}},
	}
	h.pkgLoader.EXPECT().Load(gomock.Any(), "/src", gomock.Any()).Return([]*domain.Package{broken}, nil)

	_, err := h.app.Analyze(context.Background(), testConfig(), "/src", []string{"./..."})
	require.ErrorIs(t, err, domain.ErrPreconditionViolation)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "example.com/app", zErr.Metadata()["package"])
}

func TestApp_Analyze_ResolvedConstructor(t *testing.T) {
	f := newFixture()
	h := newHarness(t, f)

	repo := &fakeType{name: "example.com/app.Repo[example.com/app.User]"}
	pkg := &domain.Package{
		Path: "example.com/app",
		Sites: []domain.Site{{
			Kind:          domain.SiteResolvedConstructor,
			Element:       f.newService,
			Container:     repo,
			ResolvedTypes: []domain.Type{f.db, f.routes},
		}},
	}
	h.pkgLoader.EXPECT().Load(gomock.Any(), "/src", gomock.Any()).Return([]*domain.Package{pkg}, nil)

	report, err := h.app.Analyze(context.Background(), testConfig(), "/src", []string{"./..."})
	require.NoError(t, err)

	records := report.Packages[0].Records
	require.Len(t, records, 3)
	assert.Equal(t, domain.Type(repo), records[0].Request.EnclosingType())
	assert.Equal(t, domain.Type(repo), records[1].Request.EnclosingType())
	assert.True(t, records[2].Implicit)
	assert.Equal(t, domain.Type(f.service), records[2].Request.EnclosingType())
}

func TestApp_Analyze_ConstructorWithoutDeclaredType(t *testing.T) {
	f := newFixture()
	h := newHarness(t, f)

	loose := &fakeElement{name: "NewThing", kind: domain.ElementFunc}
	pkg := &domain.Package{
		Path:  "example.com/app",
		Sites: []domain.Site{{Kind: domain.SiteConstructor, Element: loose}},
	}
	h.pkgLoader.EXPECT().Load(gomock.Any(), "/src", gomock.Any()).Return([]*domain.Package{pkg}, nil)

	report, err := h.app.Analyze(context.Background(), testConfig(), "/src", []string{"./..."})
	require.NoError(t, err)
	require.Len(t, report.Diagnostics, 1)
	require.ErrorIs(t, report.Diagnostics[0].Err, domain.ErrInvalidSiteShape)
}

func TestApp_Analyze_KeepsPackageOrder(t *testing.T) {
	f := newFixture()
	h := newHarness(t, f)

	pkgs := make([]*domain.Package, 32)
	for i := range pkgs {
		pkgs[i] = f.pkg(fmt.Sprintf("example.com/app/p%02d", i), i%5 == 0)
	}
	h.pkgLoader.EXPECT().Load(gomock.Any(), "/src", gomock.Any()).Return(pkgs, nil)

	report, err := h.app.Analyze(context.Background(), testConfig(), "/src", []string{"./..."})
	require.NoError(t, err)

	require.Len(t, report.Packages, len(pkgs))
	for i, p := range report.Packages {
		assert.Equal(t, pkgs[i].Path, p.Path)
		assert.Len(t, p.Records, 4)
	}
	require.Len(t, report.Diagnostics, 7)
	for i, d := range report.Diagnostics {
		assert.Equal(t, pkgs[i*5].Path, d.Package)
	}
}

func TestApp_Analyze_Cancelled(t *testing.T) {
	f := newFixture()
	h := newHarness(t, f)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h.pkgLoader.EXPECT().Load(gomock.Any(), "/src", gomock.Any()).
		Return([]*domain.Package{f.pkg("example.com/app", false)}, nil)

	_, err := h.app.Analyze(ctx, testConfig(), "/src", []string{"./..."})
	require.ErrorIs(t, err, context.Canceled)
}
