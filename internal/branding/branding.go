// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package and rebuild; Go's //go:embed
// bakes the values into the binary.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	GoModule      string `yaml:"go_module"`
	Namespace     string `yaml:"namespace"`
	ConfigFile    string `yaml:"config_file"`
	ComponentsDir string `yaml:"components_dir"`
	LibDir        string `yaml:"lib_dir"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:       "stackui",
			DisplayName:   "StackUI",
			Description:   "Copy-and-own installer for StackUI components",
			HomeDir:       ".stackui",
			EnvPrefix:     "STACKUI",
			GoModule:      "github.com/stackui-dev/stackui",
			Namespace:     "@stackui/registry",
			ConfigFile:    "stackui.json",
			ComponentsDir: "components/stackui",
			LibDir:        "lib/stackui",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "stackui").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "StackUI").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".stackui").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "STACKUI").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by scripts/rebrand.sh — not
// consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// Namespace returns the registry-internal import namespace that source
// transforms rewrite away (e.g., "@stackui/registry").
func Namespace() string { load(); return defaults.Namespace }

// ConfigFile returns the per-project config file name (e.g., "stackui.json").
func ConfigFile() string { load(); return defaults.ConfigFile }

// ComponentsDir returns the project-relative component install directory.
func ComponentsDir() string { load(); return defaults.ComponentsDir }

// LibDir returns the project-relative lib module install directory.
func LibDir() string { load(); return defaults.LibDir }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("REGISTRY") →
// "STACKUI_REGISTRY".
func EnvVar(suffix string) string { load(); return defaults.EnvPrefix + "_" + suffix }
