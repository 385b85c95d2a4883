package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/ui/output"
	"go.trai.ch/syringe/internal/ui/style"
)

// TextRenderer writes a human-readable report grouped by package and site.
type TextRenderer struct{}

// NewTextRenderer creates a new TextRenderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render writes report to w.
func (r *TextRenderer) Render(w io.Writer, report *domain.Report) error {
	out := output.New(w)
	var b strings.Builder

	if report.Module != "" {
		b.WriteString(paint(out, "module "+report.Module, style.Iris) + "\n")
	}

	for _, pkg := range report.Packages {
		b.WriteString("\n" + paint(out, pkg.Path, style.Iris) + "\n")
		if len(pkg.Records) == 0 {
			b.WriteString(paint(out, "  no requests", style.Slate) + "\n")
			continue
		}
		var last string
		for _, rec := range pkg.Records {
			header := fmt.Sprintf("  %s %s", rec.Site, rec.Source)
			if rec.Position != "" {
				header += " (" + rec.Position + ")"
			}
			if header != last {
				b.WriteString(paint(out, header, style.Teal) + "\n")
				last = header
			}
			b.WriteString("    " + requestLine(out, rec) + "\n")
		}
	}

	if len(report.Diagnostics) > 0 {
		b.WriteString("\n" + paint(out, "diagnostics", style.Red) + "\n")
		for _, d := range report.Diagnostics {
			line := fmt.Sprintf("  %s %s %s: %v", style.Cross, d.Position, d.Element, d.Err)
			b.WriteString(paint(out, line, style.Red) + "\n")
		}
	}

	b.WriteString("\n" + paint(out, summary(report), style.Slate) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func requestLine(out *termenv.Output, rec domain.RequestRecord) string {
	req := rec.Request
	line := paint(out, req.Kind().String(), kindColor(req.Kind())) + " " + req.Key().String()
	if enclosing := req.EnclosingType(); enclosing != nil {
		line += paint(out, " in "+enclosing.String(), style.Slate)
	}
	if req.AllowsNull() {
		line += paint(out, " nullable", style.Yellow)
	}
	if rec.Implicit {
		line += paint(out, " (implicit)", style.Slate)
	}
	return line
}

func kindColor(k domain.Kind) lipgloss.Color {
	switch k {
	case domain.KindInstance:
		return style.Green
	case domain.KindFuture, domain.KindProducer, domain.KindProduced:
		return style.Iris
	default:
		return style.Teal
	}
}

func summary(report *domain.Report) string {
	return fmt.Sprintf("%s in %s, %s",
		plural(report.RequestCount(), "request"),
		plural(len(report.Packages), "package"),
		plural(len(report.Diagnostics), "diagnostic"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func paint(out *termenv.Output, s string, color lipgloss.Color) string {
	return out.String(s).Foreground(termenv.RGBColor(string(color))).String()
}
