// Package config provides reading and writing of dur configuration.
// Supports both global (~/.dur/config.yaml) and local (.dur/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jpl-au/dur/duration"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// HomeEnv names the environment variable that relocates the global dur
// directory (config and audit log). When unset, ~/.dur is used.
const HomeEnv = "DUR_HOME"

// Dir is the directory name used for both local and global config.
const Dir = ".dur"

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.dur/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is project-specific config in .dur/config.yaml
	ScopeLocal
)

func (s Scope) String() string {
	if s == ScopeLocal {
		return "local"
	}
	return "global"
}

// Author represents the attribution written to the audit log.
type Author struct {
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty"`
}

// Defaults holds the units used when round and truncate get no --unit.
type Defaults struct {
	Round    *duration.Duration `yaml:"round,omitempty"`
	Truncate *duration.Duration `yaml:"truncate,omitempty"`
}

// Log holds audit log options.
type Log struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Limits holds size limit configuration options.
type Limits struct {
	MaxInput *int `yaml:"max_input,omitempty"`
}

// Default values applied when not configured.
const (
	DefaultRound    = duration.Second
	DefaultTruncate = duration.Second
	DefaultMaxInput = 1024
)

// Validation bounds for configuration values.
const (
	MinMaxInput = 1
	MaxMaxInput = 65536
)

// Config contains configuration for dur.
type Config struct {
	Author   Author   `yaml:"author,omitempty"`
	Defaults Defaults `yaml:"defaults,omitempty"`
	Log      Log      `yaml:"log,omitempty"`
	Limits   Limits   `yaml:"limits,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if d := c.Defaults.Round; d != nil && *d <= 0 {
		return fmt.Errorf("%w: defaults.round must be positive, got %s", ErrInvalidValue, *d)
	}
	if d := c.Defaults.Truncate; d != nil && *d <= 0 {
		return fmt.Errorf("%w: defaults.truncate must be positive, got %s", ErrInvalidValue, *d)
	}
	if c.Limits.MaxInput != nil {
		v := *c.Limits.MaxInput
		if v < MinMaxInput || v > MaxMaxInput {
			return fmt.Errorf("%w: max_input must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxInput, MaxMaxInput, v)
		}
	}
	return nil
}

// RoundUnit returns the default rounding unit (defaults to 1s).
func (c *Config) RoundUnit() duration.Duration {
	if c.Defaults.Round == nil {
		return DefaultRound
	}
	return *c.Defaults.Round
}

// TruncateUnit returns the default truncation unit (defaults to 1s).
func (c *Config) TruncateUnit() duration.Duration {
	if c.Defaults.Truncate == nil {
		return DefaultTruncate
	}
	return *c.Defaults.Truncate
}

// LogEnabled returns whether audit logging is on (defaults to true).
func (c *Config) LogEnabled() bool {
	if c.Log.Enabled == nil {
		return true
	}
	return *c.Log.Enabled
}

// MaxInput returns the maximum input length in bytes (defaults to 1024).
func (c *Config) MaxInput() int {
	if c.Limits.MaxInput == nil {
		return DefaultMaxInput
	}
	return *c.Limits.MaxInput
}

// Home returns the global dur directory: $DUR_HOME if set, otherwise
// ~/.dur. Returns "" when neither can be determined.
func Home() string {
	if h := os.Getenv(HomeEnv); h != "" {
		return h
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, Dir)
}

// LocalPath returns the path to the local (project) config file.
func LocalPath() string {
	return filepath.Join(Dir, "config.yaml")
}

// GlobalPath returns the path to the global (user) config file.
func GlobalPath() string {
	home := Home()
	if home == "" {
		return ""
	}
	return filepath.Join(home, "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Path returns the file this config was loaded from or will be saved to.
func (c *Config) Path() string {
	if c.path != "" {
		return c.path
	}
	return pathForScope(c.scope)
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
