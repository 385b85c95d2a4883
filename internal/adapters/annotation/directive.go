// Package annotation reads qualifier and nullable markers from directive comments.
package annotation

import (
	"regexp"
	"strconv"

	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/zerr"
)

// Directive is a parsed //<prefix>:<name>[(<param>)] [value] comment line.
type Directive struct {
	Name string
	// Param names the function parameter the directive targets; empty targets the
	// declaration itself.
	Param string
	Value string
}

var valueRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)(?:\((.*)\))?$`)

// parser parses directive lines for one prefix.
type parser struct {
	lineRe *regexp.Regexp
}

func newParser(prefix string) *parser {
	return &parser{
		lineRe: regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `:([a-z][a-z0-9_]*)(?:\(([A-Za-z_][A-Za-z0-9_]*)\))?(?:\s+(.+))?$`),
	}
}

// parse parses a single directive line without its leading slashes.
func (p *parser) parse(line string) (Directive, error) {
	m := p.lineRe.FindStringSubmatch(line)
	if m == nil {
		return Directive{}, zerr.With(zerr.Wrap(domain.ErrMalformedDirective, "directive does not match the expected form"), "directive", line)
	}
	return Directive{Name: m[1], Param: m[2], Value: m[3]}, nil
}

// parseQualifier parses a qualifier value such as Primary or Named("db").
func parseQualifier(value string) (domain.Annotation, error) {
	m := valueRe.FindStringSubmatch(value)
	if m == nil {
		return domain.Annotation{}, zerr.With(zerr.Wrap(domain.ErrMalformedDirective, "qualifier must be a name with an optional quoted value"), "value", value)
	}
	a := domain.Annotation{Name: m[1]}
	if m[2] == "" {
		return a, nil
	}
	v, err := strconv.Unquote(m[2])
	if err != nil {
		return domain.Annotation{}, zerr.With(zerr.Wrap(domain.ErrMalformedDirective, "qualifier value is not a quoted string"), "value", value)
	}
	a.Value = v
	return a, nil
}
