// Package projectconfig loads the optional .verify.yaml file that lets a
// project override built-in check commands or append its own checks.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the project-level configuration file looked up in the
// project root.
const ConfigFileName = ".verify.yaml"

// Default preview line counts per profile. New() references them and no
// other code should duplicate them.
const (
	DefaultQuickPreview = 3
	DefaultFullPreview  = 5
)

// ExtraCheck defines one user-supplied check appended after the built-in
// sequence.
type ExtraCheck struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category,omitempty"`
	Command  string `yaml:"command"`
	Required *bool  `yaml:"required,omitempty"`
	// IfExists makes the check applicable only when the given path exists
	// relative to the project root. Empty means always applicable.
	IfExists string `yaml:"if_exists,omitempty"`
}

// ChecksConfig holds check customization.
type ChecksConfig struct {
	// Overrides replaces the command of a built-in check, keyed by its name.
	Overrides map[string]string `yaml:"overrides,omitempty"`
	Extra     []ExtraCheck      `yaml:"extra,omitempty"`
}

// PreviewConfig holds the per-profile inline failure preview line counts.
type PreviewConfig struct {
	Quick int `yaml:"quick,omitempty"`
	Full  int `yaml:"full,omitempty"`
}

// Config is the root of .verify.yaml.
type Config struct {
	Checks  ChecksConfig  `yaml:"checks,omitempty"`
	Preview PreviewConfig `yaml:"preview,omitempty"`
	// TimeoutSeconds bounds each check's execution; 0 means no timeout.
	TimeoutSeconds int `yaml:"timeout,omitempty"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Preview: PreviewConfig{
			Quick: DefaultQuickPreview,
			Full:  DefaultFullPreview,
		},
	}
}

// Load reads .verify.yaml from dir. A missing file yields the defaults; a
// present but malformed file is an error.
func Load(dir string) (*Config, error) {
	cfg := New()

	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ConfigFileName, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigFileName, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	seen := make(map[string]bool)
	for i, extra := range c.Checks.Extra {
		if extra.Name == "" {
			return fmt.Errorf("checks.extra[%d]: missing name", i)
		}
		if extra.Command == "" {
			return fmt.Errorf("checks.extra[%d] (%s): missing command", i, extra.Name)
		}
		if seen[extra.Name] {
			return fmt.Errorf("checks.extra: duplicate name %q", extra.Name)
		}
		seen[extra.Name] = true
	}
	if c.Preview.Quick < 0 || c.Preview.Full < 0 {
		return errors.New("preview counts must not be negative")
	}
	if c.TimeoutSeconds < 0 {
		return errors.New("timeout must not be negative")
	}
	return nil
}
