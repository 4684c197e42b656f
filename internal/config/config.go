// Package config manages the user-level CLI settings file (~/.stackui/config.yaml)
// via Viper, with environment variable overlay (STACKUI_*). Per-project install
// state lives elsewhere, in the project package.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/stackui-dev/stackui/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// KeyRegistryPath names the registry directory used when no --registry flag
// or environment override is given.
const KeyRegistryPath = "registry.path"

// Dir returns the path to the StackUI config directory (~/.stackui/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.stackui/config.yaml).
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

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// RegistryPath returns the configured default registry directory, or ""
// when none is set.
func RegistryPath() string {
	return Get(KeyRegistryPath)
}

// Set writes a config key-value pair and saves the config file. Known keys
// are validated before anything is written.
func Set(key, value string) error {
	if key == KeyRegistryPath {
		if info, err := os.Stat(value); err != nil || !info.IsDir() {
			return fmt.Errorf("%s %q is not a directory", KeyRegistryPath, value)
		}
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
