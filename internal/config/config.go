package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bspy-dev/bspy/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized keys.
const (
	KeyAuthorName  = "author.name"
	KeyAuthorEmail = "author.email"
	KeyLicense     = "license"
	KeyHooksFile   = "hooks_file"
)

// DefaultLicense is used when no license is configured.
const DefaultLicense = "MIT"

var v = newViper()

func newViper() *viper.Viper {
	nv := viper.New()
	nv.SetDefault(KeyLicense, DefaultLicense)
	return nv
}

// Dir returns the path to the config directory (~/.bspy/). The BSPY_HOME
// environment variable overrides the location.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.bspy/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load (re)initializes settings from the config file and environment.
// A missing config file is not an error.
func Load() error {
	v = newViper()
	v.SetConfigFile(FilePath())
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return v.GetString(key)
}

// AuthorName returns the configured author name, if any.
func AuthorName() string { return Get(KeyAuthorName) }

// AuthorEmail returns the configured author email, if any.
func AuthorEmail() string { return Get(KeyAuthorEmail) }

// License returns the configured default license type.
func License() string { return Get(KeyLicense) }

// HooksFile returns the path of an alternate pre-commit hook config, if set.
func HooksFile() string { return Get(KeyHooksFile) }

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	v.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
