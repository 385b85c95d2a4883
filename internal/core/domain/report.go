package domain

// RequestRecord is a request produced for a site.
type RequestRecord struct {
	Site SiteKind
	// Source names the declaration the site belongs to, such as NewService or
	// App.Service.
	Source string
	// Position is the file:line of the source declaration.
	Position string
	Request  DependencyRequest
	// Implicit is set for requests synthesised by the analyzer rather than written
	// by the user, such as the provider map behind a map request.
	Implicit bool
}

// Diagnostic is a user-facing problem found at a single site.
type Diagnostic struct {
	Package  string
	Element  string
	Position string
	Err      error
}

// PackageReport holds the requests of one package in discovery order.
type PackageReport struct {
	Path    string
	Records []RequestRecord
}

// Report is the result of analysing a set of packages.
type Report struct {
	Module      string
	Packages    []PackageReport
	Diagnostics []Diagnostic
}

// RequestCount returns the number of requests across all packages.
func (r *Report) RequestCount() int {
	n := 0
	for _, p := range r.Packages {
		n += len(p.Records)
	}
	return n
}
