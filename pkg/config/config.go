// Package config holds the application configuration: where the item
// store lives on disk and where session logs go. Configuration is
// optional; every field has a default under the state directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultStateDirName is the directory under the user's home that
// holds the data file and logs unless configured otherwise.
const DefaultStateDirName = ".lostfound"

// DataFileName is the name of the binary item store inside the state
// directory.
const DataFileName = "items.bin"

// Config is the application configuration, loadable from a YAML file.
type Config struct {
	// StateDir is the base directory for application state. Empty means
	// ~/.lostfound.
	StateDir string `yaml:"state_dir"`

	// DataFile is the path of the binary item store. Empty means
	// <state_dir>/items.bin.
	DataFile string `yaml:"data_file"`

	// LogDir is the directory for session log files. Empty means
	// <state_dir>/logs.
	LogDir string `yaml:"log_dir"`
}

// DefaultConfig returns a configuration with every field left to its
// default; call Resolve to expand the defaults into concrete paths.
func DefaultConfig() *Config {
	return &Config{}
}

// Load reads a YAML configuration file over the defaults. A missing
// optional file is not an error here; callers decide whether the path
// was explicitly requested.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve fills empty fields from their defaults, expanding the state
// directory against the user's home when unset.
func (c *Config) Resolve() error {
	if c.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("config: resolve home directory: %w", err)
		}
		c.StateDir = filepath.Join(home, DefaultStateDirName)
	}
	if c.DataFile == "" {
		c.DataFile = filepath.Join(c.StateDir, DataFileName)
	}
	if c.LogDir == "" {
		c.LogDir = filepath.Join(c.StateDir, "logs")
	}
	return nil
}

// Validate checks that the resolved configuration is usable.
func (c *Config) Validate() error {
	if c.StateDir == "" {
		return fmt.Errorf("state directory is required")
	}
	if c.DataFile == "" {
		return fmt.Errorf("data file path is required")
	}
	if c.LogDir == "" {
		return fmt.Errorf("log directory is required")
	}

	if info, err := os.Stat(c.DataFile); err == nil && info.IsDir() {
		return fmt.Errorf("data file path %q is a directory", c.DataFile)
	}

	return nil
}
