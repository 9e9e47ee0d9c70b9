package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvConfigPath overrides the configuration file location.
const EnvConfigPath = "SYSTOOLS_CONFIG"

// Path returns the configuration file path
// Priority order:
//  1. SYSTOOLS_CONFIG environment variable (if set)
//  2. ~/.systools/config.yaml
//
// The file is not required to exist.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".systools", "config.yaml"), nil
}
