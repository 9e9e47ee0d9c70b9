package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FindConfig holds defaults for tinyfind.
type FindConfig struct {
	// Where is the default search root
	Where string `yaml:"where"`

	// Excludes are always pruned in addition to --exclude flags
	Excludes []string `yaml:"excludes"`
}

// SortConfig holds defaults for qsort.
type SortConfig struct {
	// Container selects the cursor adapter: "slice" or "list"
	Container string `yaml:"container"`

	// Check verifies the output order after sorting
	Check bool `yaml:"check"`
}

// Config represents systools configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Find contains tinyfind defaults
	Find FindConfig `yaml:"find"`

	// Sort contains qsort defaults
	Sort SortConfig `yaml:"sort"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
		Find: FindConfig{
			Where:    ".",
			Excludes: []string{},
		},
		Sort: SortConfig{
			Container: "slice",
			Check:     false,
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.Find.Where != "" {
		cfg.Find.Where = fileCfg.Find.Where
	}
	if len(fileCfg.Find.Excludes) > 0 {
		cfg.Find.Excludes = fileCfg.Find.Excludes
	}
	if fileCfg.Sort.Container != "" {
		cfg.Sort.Container = fileCfg.Sort.Container
	}
	if fileCfg.Sort.Check {
		cfg.Sort.Check = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Load loads configuration from the default location (see Path).
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel *string, container *string, check *bool) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if container != nil {
		c.Sort.Container = *container
	}
	if check != nil {
		c.Sort.Check = *check
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	switch c.Sort.Container {
	case "slice", "list":
	default:
		return fmt.Errorf("invalid sort.container %q, must be one of: slice, list", c.Sort.Container)
	}

	return nil
}
