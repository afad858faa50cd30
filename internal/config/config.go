// Package config loads shipit configuration from .shipit.toml and SHIPIT_*
// environment variables, with viper handling precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the project-level config file name (without extension)
const FileName = ".shipit"

// Config holds the effective shipit configuration
type Config struct {
	Remote  RemoteConfig  `mapstructure:"remote"`
	Branch  string        `mapstructure:"branch"`
	Project ProjectConfig `mapstructure:"project"`
	Ignore  IgnoreConfig  `mapstructure:"ignore"`
	Browser BrowserConfig `mapstructure:"browser"`
}

// RemoteConfig names the remote and its URL
type RemoteConfig struct {
	Name string `mapstructure:"name"`
	URL  string `mapstructure:"url"`
}

// ProjectConfig controls the directory sanity check
type ProjectConfig struct {
	Markers []string `mapstructure:"markers"`
}

// IgnoreConfig controls .gitignore materialization
type IgnoreConfig struct {
	Write    bool     `mapstructure:"write"`
	Patterns []string `mapstructure:"patterns"`
}

// BrowserConfig controls the post-push browser open
type BrowserConfig struct {
	Open bool `mapstructure:"open"`
}

// DefaultMarkers are the files whose presence marks a directory as a project root
var DefaultMarkers = []string{
	"README.md",
	"go.mod",
	"package.json",
	"pyproject.toml",
	"requirements.txt",
	"Makefile",
	".git",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("remote.name", "origin")
	v.SetDefault("remote.url", "")
	v.SetDefault("branch", "main")
	v.SetDefault("project.markers", DefaultMarkers)
	v.SetDefault("ignore.write", true)
	v.SetDefault("ignore.patterns", DefaultIgnorePatterns)
	v.SetDefault("browser.open", true)
}

// Load reads configuration for the project in dir.
// Precedence: SHIPIT_* environment > .shipit.toml > defaults.
// A missing config file is not an error.
func Load(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("SHIPIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read %s.toml: %w", FileName, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Remote.Name == "" {
		return fmt.Errorf("remote.name must not be empty")
	}
	if c.Branch == "" {
		return fmt.Errorf("branch must not be empty")
	}
	return nil
}
