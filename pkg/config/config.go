package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked for in the working directory when no config
// path is given.
const DefaultConfigFile = ".pnpmcheck.yaml"

// Config represents the optional configuration file. Command line flags
// take precedence over every field in here.
type Config struct {
	// Lockfile is the default pnpm-lock.yaml path.
	Lockfile string `yaml:"lockfile"`

	// Output configuration for the batch report file
	Output struct {
		Format string `yaml:"format"` // tsv, json, sarif
		File   string `yaml:"file"`
	} `yaml:"output"`

	// IgnorePackages lists packages skipped in batch mode
	IgnorePackages []string `yaml:"ignorePackages"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads the configuration from the specified file path.
// If no path is provided, it looks for .pnpmcheck.yaml in the current
// directory; a missing file yields the defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigFile
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return config, nil
		}
		return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", configPath, err)
	}

	return config, nil
}

// IsPackageIgnored checks if a package should be ignored based on the
// configuration
func (c *Config) IsPackageIgnored(packageName string) bool {
	for _, ignoredPackage := range c.IgnorePackages {
		if ignoredPackage == packageName {
			return true
		}
	}
	return false
}
