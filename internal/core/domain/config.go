package domain

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "syringe.yaml"

	// InjectPackagePath is the import path of the default wrapper package.
	InjectPackagePath = "go.trai.ch/syringe/inject"

	// DefaultDirectivePrefix is the default prefix of directive comments, as in //syringe:inject.
	DefaultDirectivePrefix = "syringe"

	// DefaultNullableMarker is the default nullable directive name.
	DefaultNullableMarker = "nullable"
)

// QualifiedName names a package-level declaration.
type QualifiedName struct {
	Path string
	Name string
}

// String returns path.Name.
func (q QualifiedName) String() string {
	return q.Path + "." + q.Name
}

// Config is the resolved analyzer configuration.
type Config struct {
	// Root is the directory packages are loaded from.
	Root string
	// Module is the module path of the enclosing go.mod, if any.
	Module string
	// Patterns are the default package patterns.
	Patterns []string
	// Wrappers maps every wrapper shape to the generic type implementing it.
	Wrappers map[Wrapper]QualifiedName
	// DirectivePrefix is the prefix of directive comments.
	DirectivePrefix string
	// NullableMarkers are the directive names recognised as nullable markers.
	NullableMarkers []string
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	wrappers := make(map[Wrapper]QualifiedName, len(Wrappers()))
	names := map[Wrapper]string{
		WrapperProvider:        "Provider",
		WrapperLazy:            "Lazy",
		WrapperMembersInjector: "MembersInjector",
		WrapperProducer:        "Producer",
		WrapperProduced:        "Produced",
		WrapperFuture:          "Future",
	}
	for w, name := range names {
		wrappers[w] = QualifiedName{Path: InjectPackagePath, Name: name}
	}
	return &Config{
		Root:            ".",
		Patterns:        []string{"./..."},
		Wrappers:        wrappers,
		DirectivePrefix: DefaultDirectivePrefix,
		NullableMarkers: []string{DefaultNullableMarker},
	}
}
