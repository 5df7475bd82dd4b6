package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

const (
	envVarPrefix = "MSA"
	manifestName = "msa.yaml"
)

// Config is the package manifest. Values load from a `msa.yaml` manifest
// in the source directory (or the file named by `-m`), then from `MSA_*`
// environment variables, then from command-line flags; later sources
// win.
type Config struct {
	Name        string   `envconfig:"MSA_NAME"        yaml:"name"`
	Version     string   `envconfig:"MSA_VERSION"     yaml:"version"`
	Author      string   `envconfig:"MSA_AUTHOR"      yaml:"author"`
	Description string   `envconfig:"MSA_DESCRIPTION" yaml:"description"`
	Prefix      string   `envconfig:"MSA_PREFIX"      yaml:"prefix"`
	Deps        []string `envconfig:"MSA_DEPS"        yaml:"deps"`
}

const (
	defaultVersion = "1.0.0"
	defaultAuthor  = "Unknown"
)

func LoadConfig(manifestFile, sourceDir string) (*Config, error) {
	if manifestFile == "" {
		manifestFile = filepath.Join(sourceDir, manifestName)
	}

	var c Config
	data, err := os.ReadFile(manifestFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading manifest file: %w", err)
		}
	} else if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshaling manifest file: %w", err)
	}

	if err := envconfig.Process(envVarPrefix, &c); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}

	// fallbacks apply only after every source has had its say, so a
	// manifest-supplied value is never clobbered by a default
	if c.Version == "" {
		c.Version = defaultVersion
	}
	if c.Author == "" {
		c.Author = defaultAuthor
	}

	return &c, nil
}

func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("package name is required (flag `-n`, manifest " +
			"`name`, or env `MSA_NAME`)")
	}
	return nil
}
