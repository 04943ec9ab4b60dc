// Package yaml loads pagecrawl configuration files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/pagecrawl"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name searched for when no
// path is given.
const DefaultConfigFile = ".pagecrawl.yaml"

// LoadConfig reads the YAML file at path over pagecrawl.DefaultConfig.
// Keys absent from the file keep their defaults. Durations use Go syntax
// ("10s", "500ms"). A missing file returns ENOTFOUND and unknown keys or
// invalid values return EINVALID.
func LoadConfig(path string) (pagecrawl.Config, error) {
	cfg := pagecrawl.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, pagecrawl.Errorf(pagecrawl.ENOTFOUND, "config file not found: %s", path)
		}
		return cfg, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, pagecrawl.Errorf(pagecrawl.EINVALID, "invalid config file %s: %v", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FindConfig returns path if it is non-empty. Otherwise it looks for
// DefaultConfigFile in the current directory and then the home directory,
// returning "" if neither exists.
func FindConfig(path string) string {
	if path != "" {
		return path
	}

	var dirs []string
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	for _, dir := range dirs {
		candidate := filepath.Join(dir, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
