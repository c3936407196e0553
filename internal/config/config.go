// Package config holds shared constants and the gradual.yaml configuration
// consumed by the evaluator and the embedding API.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level gradual.yaml configuration.
type Config struct {
	// Trace controls the per-transition trace log.
	Trace TraceConfig `yaml:"trace"`

	// Globals are literal bindings placed in the initial environment, so that
	// evaluated terms may refer to them as free variables.
	//
	//   globals:
	//     limit: 3
	//     verbose: true
	Globals map[string]interface{} `yaml:"globals,omitempty"`
}

// TraceConfig configures the transition trace.
type TraceConfig struct {
	Enabled bool `yaml:"enabled"`

	// Color is one of auto, always or never. auto colours only when the trace
	// sink is a terminal.
	Color string `yaml:"color,omitempty"`

	// Prefix is prepended to every trace line. Defaults to "eval".
	Prefix string `yaml:"prefix,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// LoadConfig reads and parses a gradual.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses gradual.yaml content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

// FindConfig searches for gradual.yaml starting from dir and walking up
// to parent directories.
// Returns the path to the config file and nil error if found,
// or empty string and nil error if not found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// GlobalNames returns the configured global names in sorted order.
func (c *Config) GlobalNames() []string {
	names := make([]string, 0, len(c.Globals))
	for name := range c.Globals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) validate(path string) error {
	switch c.Trace.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%s: trace.color must be one of %s, %s, %s (got %q)",
			path, ColorAuto, ColorAlways, ColorNever, c.Trace.Color)
	}

	for _, name := range c.GlobalNames() {
		if name == "" {
			return fmt.Errorf("%s: globals: empty name", path)
		}
		switch c.Globals[name].(type) {
		case int, int64, float64, bool:
		default:
			return fmt.Errorf("%s: globals.%s: only numbers and booleans are supported (got %T)",
				path, name, c.Globals[name])
		}
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Trace.Color == "" {
		c.Trace.Color = ColorAuto
	}
	if c.Trace.Prefix == "" {
		c.Trace.Prefix = DefaultTracePrefix
	}
}
