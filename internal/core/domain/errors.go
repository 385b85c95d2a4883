package domain

import "go.trai.ch/zerr"

var (
	// ErrPreconditionViolation is returned when a caller breaks an internal contract,
	// such as passing a nil element or mismatched parameter and type lists.
	ErrPreconditionViolation = zerr.New("precondition violation")

	// ErrInvalidSiteShape is returned when a component accessor declares parameters
	// where none are allowed, or a members-injection accessor does not declare exactly one.
	ErrInvalidSiteShape = zerr.New("invalid request site shape")

	// ErrInvalidQualifierOnMembersInjector is returned when a qualifier is present on a
	// members-injection request.
	ErrInvalidQualifierOnMembersInjector = zerr.New("qualifiers are not allowed on members-injection requests")

	// ErrMultipleQualifiers is returned when an element carries more than one qualifier.
	ErrMultipleQualifiers = zerr.New("element has more than one qualifier")

	// ErrMalformedDirective is returned when a directive comment cannot be parsed.
	ErrMalformedDirective = zerr.New("malformed directive")

	// ErrNotADeclaredType is returned when a type expression does not denote a declared type.
	ErrNotADeclaredType = zerr.New("type is not a declared type")

	// ErrUnknownWrapper is returned when a wrapper shape is not configured in the type model.
	ErrUnknownWrapper = zerr.New("unknown wrapper shape")

	// ErrPackageLoadFailed is returned when Go packages cannot be loaded or type-checked.
	ErrPackageLoadFailed = zerr.New("failed to load packages")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file parses but fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrUnknownFormat is returned when a report format is not supported.
	ErrUnknownFormat = zerr.New("unknown report format")

	// ErrDiagnosticsReported is returned when analysis finished but reported diagnostics.
	ErrDiagnosticsReported = zerr.New("analysis reported diagnostics")
)
