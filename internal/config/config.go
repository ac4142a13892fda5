// Package config loads the humantime YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/jparise/humantime/internal/timeparse"
	"gopkg.in/yaml.v3"
)

const (
	// DirName is the directory under the user config dir holding FileName.
	DirName = "humantime"
	// FileName is the configuration file name.
	FileName = "config.yaml"
)

var (
	colorModes  = []string{"auto", "always", "never"}
	outputModes = []string{"text", "seconds", "go"}
)

// Config holds defaults for command-line flags. Zero values mean "unset".
type Config struct {
	Color     string    `yaml:"color,omitempty"`
	Jobs      int       `yaml:"jobs,omitempty"`
	Output    string    `yaml:"output,omitempty"`
	ShowInput bool      `yaml:"show_input,omitempty"`
	Min       *Duration `yaml:"min,omitempty"`
	Max       *Duration `yaml:"max,omitempty"`
}

// Duration is a timeparse.Duration written in YAML as duration text,
// e.g. "max: 1y 6M".
type Duration struct {
	timeparse.Duration
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a string", node.Line)
	}
	v, err := timeparse.Parse(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q: %w", node.Line, node.Value, err)
	}
	d.Duration = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return timeparse.Format(d.Duration), nil
}

// DefaultPath returns $XDG_CONFIG_HOME/humantime/config.yaml or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, DirName, FileName), nil
}

// Load reads and validates the config file at path. A missing file yields
// an empty Config unless mustExist is set.
func Load(path string, mustExist bool) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !mustExist {
			slog.Debug("no config file", "path", path)
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	slog.Debug("loaded config", "path", path)
	return &cfg, nil
}

// Validate checks enumerated values, the jobs range, and that min does not
// exceed max.
func (c *Config) Validate() error {
	if c.Color != "" && !slices.Contains(colorModes, c.Color) {
		return fmt.Errorf("color must be one of auto, always, or never, got %q", c.Color)
	}
	if c.Output != "" && !slices.Contains(outputModes, c.Output) {
		return fmt.Errorf("output must be one of text, seconds, or go, got %q", c.Output)
	}
	if c.Jobs != 0 && (c.Jobs < 1 || c.Jobs > 100) {
		return fmt.Errorf("jobs must be between 1 and 100, got %d", c.Jobs)
	}
	if c.Min != nil && c.Max != nil && c.Min.Compare(c.Max.Duration) > 0 {
		return fmt.Errorf("min %s is greater than max %s", c.Min, c.Max)
	}
	return nil
}

// Write marshals cfg to YAML.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close() //nolint:errcheck // best-effort close
	enc.SetIndent(2)
	return enc.Encode(cfg)
}
