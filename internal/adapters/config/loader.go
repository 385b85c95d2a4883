// Package config provides the configuration loader for syringe.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger   ports.Logger
	validate *validator.Validate
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:   logger,
		validate: validator.New(),
	}
}

// Load reads the configuration for path. A directory is searched for syringe.yaml
// up to the filesystem root; a file is read directly.
func (l *Loader) Load(path string) (*domain.Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", abs)
	}

	configPath := abs
	if info.IsDir() {
		configPath = findConfiguration(abs)
	}
	if configPath == "" {
		l.Logger.Info("no config file found, using defaults", "cwd", abs)
		cfg := domain.DefaultConfig()
		cfg.Root = abs
		cfg.Module = findModule(abs)
		return cfg, nil
	}
	return l.loadFile(configPath)
}

// findConfiguration returns the nearest syringe.yaml at or above dir, or "".
func findConfiguration(dir string) string {
	currentDir := dir
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

func (l *Loader) loadFile(configPath string) (*domain.Config, error) {
	var file Syringefile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	if err := l.validate.Struct(&file); err != nil {
		return nil, zerr.With(invalid(err), "path", configPath)
	}

	cfg := domain.DefaultConfig()
	cfg.Root = resolveRoot(configPath, file.Root)
	cfg.Module = findModule(cfg.Root)
	if len(file.Patterns) > 0 {
		cfg.Patterns = file.Patterns
	}
	for name, qualified := range file.Wrappers {
		w, _ := wrapperByName(name)
		cfg.Wrappers[w] = splitQualifiedName(qualified)
	}
	if file.Directives.Prefix != "" {
		cfg.DirectivePrefix = file.Directives.Prefix
	}
	if len(file.Directives.Nullable) > 0 {
		cfg.NullableMarkers = file.Directives.Nullable
	}

	l.Logger.Info("loaded config", "path", configPath, "root", cfg.Root)
	return cfg, nil
}

// invalid converts a validation failure into ErrConfigInvalid, naming the first
// offending field.
func invalid(err error) error {
	wrapped := zerr.Wrap(domain.ErrConfigInvalid, err.Error())
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		wrapped = zerr.With(wrapped, "field", fieldErrs[0].Namespace())
		wrapped = zerr.With(wrapped, "rule", fieldErrs[0].Tag())
	}
	return wrapped
}

func wrapperByName(name string) (domain.Wrapper, bool) {
	for _, w := range domain.Wrappers() {
		if w.String() == name {
			return w, true
		}
	}
	return 0, false
}

// splitQualifiedName splits example.com/pkg.Name at its last dot.
func splitQualifiedName(s string) domain.QualifiedName {
	i := strings.LastIndex(s, ".")
	return domain.QualifiedName{Path: s[:i], Name: s[i+1:]}
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

// findModule returns the module path declared by the nearest go.mod at or above
// dir, or "" when there is none or it cannot be parsed.
func findModule(dir string) string {
	currentDir := dir
	for {
		path := filepath.Join(currentDir, "go.mod")
		// #nosec G304 -- path is derived from the analysed directory
		if data, err := os.ReadFile(path); err == nil {
			f, err := modfile.Parse(path, data, nil)
			if err != nil || f.Module == nil {
				return ""
			}
			return f.Module.Mod.Path
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(domain.ErrConfigReadFailed, err.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(domain.ErrConfigParseFailed, parseErr.Error())
	}

	return nil
}
