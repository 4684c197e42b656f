package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/stackui-dev/stackui/internal/branding"
)

// ErrNotInitialized is returned by Require when the project has no config
// file. Callers must treat it as a fatal precondition, not create a default.
var ErrNotInitialized = errors.New("project is not initialized")

// InstalledInfo is the version bookkeeping for one installed item.
type InstalledInfo struct {
	Version     string `json:"version"`
	InstalledAt string `json:"installedAt"`
	Source      string `json:"source"`
}

// Aliases holds the project-local import alias roots that registry-internal
// imports are rewritten to.
type Aliases struct {
	Components string `json:"components"`
	Lib        string `json:"lib"`
}

// Config is the persisted per-project install state. InstalledComponents
// and InstalledLib are insertion-ordered and duplicate-free.
type Config struct {
	RegistryVersion     string                   `json:"registryVersion,omitempty"`
	SrcDir              bool                     `json:"srcDir"`
	TypeScript          bool                     `json:"typescript"`
	Aliases             Aliases                  `json:"aliases"`
	InstalledComponents []string                 `json:"installedComponents"`
	InstalledLib        []string                 `json:"installedLib"`
	Installed           map[string]InstalledInfo `json:"installed,omitempty"`
}

// Default returns a fresh config for init, probing the project tree for a
// src/ layout and a TypeScript setup.
func Default(root string) *Config {
	srcDir := false
	if info, err := os.Stat(filepath.Join(root, "src")); err == nil && info.IsDir() {
		srcDir = true
	}
	typescript := false
	if _, err := os.Stat(filepath.Join(root, "tsconfig.json")); err == nil {
		typescript = true
	}

	return &Config{
		SrcDir:     srcDir,
		TypeScript: typescript,
		Aliases: Aliases{
			Components: "@/" + branding.ComponentsDir(),
			Lib:        "@/" + branding.LibDir(),
		},
	}
}

// FilePath returns the config file path for a project root.
func FilePath(root string) string {
	return filepath.Join(root, branding.ConfigFile())
}

// Load reads the project config. A missing file returns (nil, nil): the
// project is not initialized, which callers must handle explicitly.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(FilePath(root))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", FilePath(root), err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FilePath(root), err)
	}
	return &cfg, nil
}

// Require loads the project config and fails with ErrNotInitialized when
// the project has no config file.
func Require(root string) (*Config, error) {
	cfg, err := Load(root)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: no %s found in %s (run `%s init` first)",
			ErrNotInitialized, branding.ConfigFile(), root, branding.CLIName())
	}
	return cfg, nil
}

// Save persists the full config. It is called exactly once per batch, after
// all installs complete.
func Save(root string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(FilePath(root), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", FilePath(root), err)
	}
	return nil
}

// HasComponent reports whether a component is recorded as installed.
func (c *Config) HasComponent(name string) bool { return contains(c.InstalledComponents, name) }

// HasLib reports whether a lib module is recorded as installed.
func (c *Config) HasLib(name string) bool { return contains(c.InstalledLib, name) }

// UpsertComponent records a component install, preserving insertion order
// and refreshing the bookkeeping entry.
func (c *Config) UpsertComponent(name, version, source string) {
	if !contains(c.InstalledComponents, name) {
		c.InstalledComponents = append(c.InstalledComponents, name)
	}
	c.recordInstall(name, version, source)
}

// UpsertLib records a lib module install.
func (c *Config) UpsertLib(name, version, source string) {
	if !contains(c.InstalledLib, name) {
		c.InstalledLib = append(c.InstalledLib, name)
	}
	c.recordInstall(name, version, source)
}

func (c *Config) recordInstall(name, version, source string) {
	if c.Installed == nil {
		c.Installed = make(map[string]InstalledInfo)
	}
	c.Installed[name] = InstalledInfo{
		Version:     version,
		InstalledAt: time.Now().UTC().Format(time.RFC3339),
		Source:      source,
	}
}

// ComponentsDir returns the absolute component install directory for the
// project, honoring the src/ layout flag.
func (c *Config) ComponentsDir(root string) string {
	if c.SrcDir {
		return filepath.Join(root, "src", filepath.FromSlash(branding.ComponentsDir()))
	}
	return filepath.Join(root, filepath.FromSlash(branding.ComponentsDir()))
}

// LibDir returns the absolute lib module install directory for the project.
func (c *Config) LibDir(root string) string {
	if c.SrcDir {
		return filepath.Join(root, "src", filepath.FromSlash(branding.LibDir()))
	}
	return filepath.Join(root, filepath.FromSlash(branding.LibDir()))
}

func contains(slice []string, val string) bool {
	for _, s := range slice {
		if s == val {
			return true
		}
	}
	return false
}
