// Package app implements the application layer for syringe.
package app

import (
	"context"
	"io"
	"runtime"
	"strings"

	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports"
	"go.trai.ch/syringe/internal/engine/request"
	"go.trai.ch/zerr"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// Frontend holds the collaborators that depend on the loaded configuration.
type Frontend struct {
	Loader     ports.PackageLoader
	Types      ports.TypeModel
	Maps       ports.MapTypes
	Qualifiers ports.QualifierLookup
	Nullables  ports.NullableLookup
}

// FrontendFactory creates the Frontend for a configuration.
type FrontendFactory func(cfg *domain.Config) Frontend

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	frontends    FrontendFactory
	keys         ports.KeyFactory
	formats      ports.Formats
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	frontends FrontendFactory,
	keys ports.KeyFactory,
	formats ports.Formats,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		frontends:    frontends,
		keys:         keys,
		formats:      formats,
		logger:       log,
	}
}

// RequestsOptions configures the Requests method.
type RequestsOptions struct {
	// Patterns are the package patterns to analyse, relative to Dir. When empty, the
	// configured patterns are used relative to the configured root.
	Patterns []string
	// Dir is the working directory. It defaults to ".".
	Dir string
	// ConfigPath is a config file or a directory to search from. It defaults to Dir.
	ConfigPath string
	// Format is the report format. It defaults to text.
	Format string
}

// Requests analyses the selected packages and writes every dependency request to w.
// It returns an error wrapping domain.ErrDiagnosticsReported when any site was
// reported as invalid; the report is written in full regardless.
func (a *App) Requests(ctx context.Context, w io.Writer, opts RequestsOptions) error {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = dir
	}
	format := opts.Format
	if format == "" {
		format = "text"
	}

	renderer, err := a.formats.Renderer(format)
	if err != nil {
		return err
	}

	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	patterns := opts.Patterns
	if len(patterns) == 0 {
		dir = cfg.Root
		patterns = cfg.Patterns
	}

	report, err := a.Analyze(ctx, cfg, dir, patterns)
	if err != nil {
		return err
	}

	if err := renderer.Render(w, report); err != nil {
		return zerr.Wrap(err, "failed to render report")
	}

	var errs error
	for _, d := range report.Diagnostics {
		errs = multierr.Append(errs, d.Err)
	}
	if errs != nil {
		reported := zerr.With(zerr.Wrap(domain.ErrDiagnosticsReported, "invalid request sites"), "count", len(report.Diagnostics))
		return multierr.Append(reported, errs)
	}
	return nil
}

// Analyze loads the packages matching patterns in dir and builds the requests of
// every site. Packages are analysed concurrently; the report keeps the loader's
// package order and each package's site order.
func (a *App) Analyze(ctx context.Context, cfg *domain.Config, dir string, patterns []string) (*domain.Report, error) {
	fe := a.frontends(cfg)

	pkgs, err := fe.Loader.Load(ctx, dir, patterns)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load packages")
	}
	a.logger.Info("loaded packages", "count", len(pkgs), "patterns", strings.Join(patterns, " "))

	an := &analyzer{
		builder: request.NewBuilder(fe.Types, fe.Qualifiers, fe.Nullables, a.keys),
		maps:    fe.Maps,
		keys:    a.keys,
	}

	report := &domain.Report{
		Module:   cfg.Module,
		Packages: make([]domain.PackageReport, len(pkgs)),
	}
	diagnostics := make([][]domain.Diagnostic, len(pkgs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, pkg := range pkgs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pr, diags, err := an.analyzePackage(pkg)
			if err != nil {
				return err
			}
			report.Packages[i] = pr
			diagnostics[i] = diags
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, pr := range report.Packages {
		a.logger.Info("analysed package", "package", pr.Path, "requests", len(pr.Records))
		for _, d := range diagnostics[i] {
			a.logger.Warn("invalid request site", "package", d.Package, "element", d.Element, "position", d.Position, "error", d.Err.Error())
		}
		report.Diagnostics = append(report.Diagnostics, diagnostics[i]...)
	}
	return report, nil
}
