package config

import (
	"os"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/agenthands/ncalc/pkg/session"
)

// Config controls how the command line front end presents results.
// The evaluator itself has no settings.
type Config struct {
	// ErrorMessage replaces any evaluation failure in output.
	ErrorMessage string `json:"errorMessage,omitempty"`
	// Prompt is printed before each line in an interactive REPL.
	Prompt string `json:"prompt,omitempty"`
	// Verbosity is the logr V-level enabled on stderr.
	Verbosity int `json:"verbosity,omitempty"`
	// Workers bounds concurrent evaluations in batch mode.
	Workers int `json:"workers,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ErrorMessage: session.DefaultErrorMessage,
		Prompt:       "> ",
		Verbosity:    0,
		Workers:      4,
	}
}

// Load reads a YAML file over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "config: read")
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return errors.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	if c.Verbosity < 0 {
		return errors.Errorf("config: verbosity must not be negative, got %d", c.Verbosity)
	}
	return nil
}
