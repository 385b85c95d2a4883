package report

import (
	"fmt"
	"io"

	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// YAMLRenderer writes the report as a YAML document.
type YAMLRenderer struct{}

// NewYAMLRenderer creates a new YAMLRenderer.
func NewYAMLRenderer() *YAMLRenderer {
	return &YAMLRenderer{}
}

// ReportDTO is the YAML form of a report.
type ReportDTO struct {
	Module      string          `yaml:"module,omitempty"`
	Packages    []PackageDTO    `yaml:"packages"`
	Diagnostics []DiagnosticDTO `yaml:"diagnostics,omitempty"`
}

// PackageDTO is the YAML form of a package report.
type PackageDTO struct {
	Path     string       `yaml:"path"`
	Requests []RequestDTO `yaml:"requests"`
}

// RequestDTO is the YAML form of a dependency request.
type RequestDTO struct {
	Site             string      `yaml:"site"`
	Source           string      `yaml:"source"`
	Position         string      `yaml:"position,omitempty"`
	Element          string      `yaml:"element,omitempty"`
	Kind             domain.Kind `yaml:"kind"`
	Key              string      `yaml:"key"`
	Qualifier        string      `yaml:"qualifier,omitempty"`
	MembersInjection bool        `yaml:"members_injection,omitempty"`
	Fingerprint      string      `yaml:"fingerprint"`
	Enclosing        string      `yaml:"enclosing,omitempty"`
	AllowsNull       bool        `yaml:"allows_null"`
	Implicit         bool        `yaml:"implicit,omitempty"`
}

// DiagnosticDTO is the YAML form of a diagnostic.
type DiagnosticDTO struct {
	Package  string `yaml:"package"`
	Element  string `yaml:"element"`
	Position string `yaml:"position,omitempty"`
	Error    string `yaml:"error"`
}

// Render writes report to w.
func (r *YAMLRenderer) Render(w io.Writer, report *domain.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toDTO(report)); err != nil {
		return zerr.Wrap(err, "failed to encode report")
	}
	return enc.Close()
}

func toDTO(report *domain.Report) ReportDTO {
	dto := ReportDTO{
		Module:   report.Module,
		Packages: make([]PackageDTO, 0, len(report.Packages)),
	}
	for _, pkg := range report.Packages {
		p := PackageDTO{Path: pkg.Path, Requests: make([]RequestDTO, 0, len(pkg.Records))}
		for _, rec := range pkg.Records {
			p.Requests = append(p.Requests, requestDTO(rec))
		}
		dto.Packages = append(dto.Packages, p)
	}
	for _, d := range report.Diagnostics {
		dto.Diagnostics = append(dto.Diagnostics, DiagnosticDTO{
			Package:  d.Package,
			Element:  d.Element,
			Position: d.Position,
			Error:    d.Err.Error(),
		})
	}
	return dto
}

func requestDTO(rec domain.RequestRecord) RequestDTO {
	req := rec.Request
	key := req.Key()
	dto := RequestDTO{
		Site:             rec.Site.String(),
		Source:           rec.Source,
		Position:         rec.Position,
		Kind:             req.Kind(),
		Key:              key.Type(),
		MembersInjection: key.MembersInjection(),
		Fingerprint:      fmt.Sprintf("%016x", key.Fingerprint()),
		AllowsNull:       req.AllowsNull(),
		Implicit:         rec.Implicit,
	}
	if q := key.Qualifier(); !q.IsZero() {
		dto.Qualifier = q.String()
	}
	if elem := req.RequestElement(); elem != nil {
		dto.Element = elem.Name()
	}
	if enclosing := req.EnclosingType(); enclosing != nil {
		dto.Enclosing = enclosing.String()
	}
	return dto
}
