package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the content of a configuration file.
//
//	occurs_check: true
//	unknown: warning
//	consult:
//	  - family.pl
type Config struct {
	Verbose     bool   `yaml:"verbose"`
	OccursCheck bool   `yaml:"occurs_check"`
	Unknown     string `yaml:"unknown"`

	// Consult is the files to consult before anything else. Relative paths are relative to the configuration file.
	Consult []string `yaml:"consult"`
}

// LoadConfig reads the configuration file at path.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for i, c := range cfg.Consult {
		if !filepath.IsAbs(c) {
			cfg.Consult[i] = filepath.Join(filepath.Dir(path), c)
		}
	}
	return &cfg, nil
}
