// Package config holds the tool settings: which manifest to edit, which
// registry and repository images are published under, and which remote
// receives tags. Settings come from an optional TOML file with the
// repository also overridable from the environment.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/apex/log"
	"github.com/pkg/errors"
)

// Defaults applied for any setting the config file leaves unset.
const (
	DefaultManifest   = "pyproject.toml"
	DefaultRegistry   = "ghcr.io"
	DefaultRemote     = "origin"
	DefaultRepository = "sip-ai-agent"

	// DefaultFile is consulted when no config file is named explicitly.
	DefaultFile = ".relver.toml"

	// EnvRepository overrides the configured image repository. CI sets it
	// to "owner/name".
	EnvRepository = "GITHUB_REPOSITORY"
)

// Config is the resolved tool configuration. Getenv is injectable so tests
// can pin the environment.
type Config struct {
	Manifest   string `toml:"manifest"`
	Registry   string `toml:"registry"`
	Remote     string `toml:"remote"`
	Repository string `toml:"repository"`

	Getenv func(string) string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Manifest:   DefaultManifest,
		Registry:   DefaultRegistry,
		Remote:     DefaultRemote,
		Repository: DefaultRepository,
		Getenv:     os.Getenv,
	}
}

// Load reads the config file at path, or DefaultFile when path is empty.
// Fields absent from the file keep their defaults. A missing DefaultFile is
// fine; a missing explicit path is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return Config{}, errors.Wrapf(err, "load config %s", path)
	}
	log.WithField("path", path).Debug("loaded config")
	return cfg, nil
}

// ImageRepository resolves the repository images are published under. The
// EnvRepository variable wins over the configured value.
func (c Config) ImageRepository() string {
	getenv := c.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if repo := getenv(EnvRepository); repo != "" {
		return repo
	}
	return c.Repository
}
