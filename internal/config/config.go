package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory and the
// user config directory.
const FileName = ".membench.yaml"

// Constants for default values.
const (
	DefaultIterations = 1000
	DefaultFormat     = "auto"
	DefaultTheme      = "default"
	DefaultMetric     = "memory"
)

// FileConfig is the on-disk shape of .membench.yaml. Pointer fields
// distinguish "unset" from the zero value.
type FileConfig struct {
	Iterations *int     `yaml:"iterations,omitempty"`
	Format     string   `yaml:"format,omitempty"`
	Theme      string   `yaml:"theme,omitempty"`
	Metric     string   `yaml:"metric,omitempty"`
	NoColor    *bool    `yaml:"no_color,omitempty"`
	Debug      *bool    `yaml:"debug,omitempty"`
	Variants   []string `yaml:"variants,omitempty"`
}

// LoadFile reads the config file. An explicit path must exist; otherwise the
// local file is tried first, then the user config directory. It returns the
// path actually read, or "" when no file was found.
func LoadFile(explicit string) (*FileConfig, string, error) {
	path := explicit
	if path == "" {
		path = findConfigPath()
	}
	if path == "" {
		return &FileConfig{}, "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit == "" && errors.Is(err, os.ErrNotExist) {
			return &FileConfig{}, "", nil
		}
		return nil, path, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, path, nil
}

// findConfigPath checks the working directory first, then the XDG user
// config directory.
func findConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "membench", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
