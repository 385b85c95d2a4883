package config

// Syringefile represents the structure of the syringe.yaml configuration file.
type Syringefile struct {
	Version    string            `yaml:"version" validate:"required,oneof=1"`
	Root       string            `yaml:"root"`
	Patterns   []string          `yaml:"patterns" validate:"omitempty,dive,required"`
	Wrappers   map[string]string `yaml:"wrappers" validate:"omitempty,dive,keys,oneof=provider lazy members_injector producer produced future,endkeys,required,contains=."`
	Directives DirectivesDTO     `yaml:"directives"`
}

// DirectivesDTO configures the directive comments understood by the analyzer.
type DirectivesDTO struct {
	Prefix   string   `yaml:"prefix" validate:"omitempty,alphanum,lowercase"`
	Nullable []string `yaml:"nullable" validate:"omitempty,dive,required,lowercase"`
}
