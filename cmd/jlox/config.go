package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".jlox.yaml"

type config struct {
	LogLevel     string `yaml:"log_level"`
	Color        *bool  `yaml:"color"`
	MaxCallDepth int    `yaml:"max_call_depth"`
	HistoryFile  string `yaml:"history_file"`
	Requires     string `yaml:"requires"`
}

func defaultConfig() *config {
	return &config{LogLevel: "warn"}
}

// loadConfig reads a YAML config file. A missing default file is not an
// error, a missing explicit one is.
func loadConfig(path string, explicit bool) (*config, error) {
	cfg := defaultConfig()

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *config) colorEnabled() bool {
	return c.Color == nil || *c.Color
}

// checkVersion validates the requires constraint against the running version
func (c *config) checkVersion(current string) error {
	if c.Requires == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(c.Requires)
	if err != nil {
		return fmt.Errorf("invalid requires constraint %q: %w", c.Requires, err)
	}
	v, err := semver.NewVersion(current)
	if err != nil {
		return fmt.Errorf("invalid interpreter version %q: %w", current, err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("config requires jlox %s, running %s", c.Requires, current)
	}
	return nil
}
