package annotation

import (
	"slices"

	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/zerr"
)

// QualifierDirective is the directive name carrying a qualifier.
const QualifierDirective = "qualifier"

// Lookup implements ports.QualifierLookup and ports.NullableLookup over the
// directive lines attached to elements.
type Lookup struct {
	parser   *parser
	nullable []string
}

// NewLookup creates a Lookup for the directive prefix and nullable markers of cfg.
func NewLookup(cfg *domain.Config) *Lookup {
	return &Lookup{
		parser:   newParser(cfg.DirectivePrefix),
		nullable: cfg.NullableMarkers,
	}
}

// Qualifier returns the qualifier of e, or the zero Annotation when it has none.
func (l *Lookup) Qualifier(e domain.Element) (domain.Annotation, error) {
	var found []domain.Annotation
	for _, line := range e.Doc() {
		d, err := l.parser.parse(line)
		if err != nil {
			return domain.Annotation{}, withElement(err, e)
		}
		if d.Name != QualifierDirective || !targets(d, e) {
			continue
		}
		a, err := parseQualifier(d.Value)
		if err != nil {
			return domain.Annotation{}, withElement(err, e)
		}
		found = append(found, a)
	}
	switch len(found) {
	case 0:
		return domain.Annotation{}, nil
	case 1:
		return found[0], nil
	default:
		err := zerr.With(zerr.Wrap(domain.ErrMultipleQualifiers, "only one qualifier may be declared"), "qualifiers", len(found))
		return domain.Annotation{}, withElement(err, e)
	}
}

// NullableMarker returns the first nullable marker targeting e.
func (l *Lookup) NullableMarker(e domain.Element) (domain.Annotation, bool) {
	for _, line := range e.Doc() {
		d, err := l.parser.parse(line)
		if err != nil || !targets(d, e) {
			continue
		}
		if slices.Contains(l.nullable, d.Name) {
			return domain.Annotation{Name: d.Name}, true
		}
	}
	return domain.Annotation{}, false
}

// targets reports whether d applies to e. Parameters share the directive lines of
// their function and are selected by name; unnamed and blank parameters cannot be
// targeted.
func targets(d Directive, e domain.Element) bool {
	if e.Kind() == domain.ElementParameter {
		name := e.Name()
		return name != "" && name != "_" && d.Param == name
	}
	return d.Param == ""
}

func withElement(err error, e domain.Element) error {
	err = zerr.With(err, "element", e.Name())
	if pos := e.Pos(); pos != "" {
		err = zerr.With(err, "position", pos)
	}
	return err
}
