package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/stackui-dev/stackui/internal/branding"
	"github.com/stackui-dev/stackui/internal/config"
)

// resolveRegistryDir locates the registry tree.
//
// Resolution order:
//  1. --registry flag
//  2. STACKUI_REGISTRY environment variable
//  3. registry.path from ~/.stackui/config.yaml
//  4. ./registry in the working directory
//  5. ../registry relative to the executable (bundled releases)
func resolveRegistryDir(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	if env := os.Getenv(branding.EnvVar("REGISTRY")); env != "" {
		return env, nil
	}

	if p := config.RegistryPath(); p != "" {
		return p, nil
	}

	if info, err := os.Stat("registry"); err == nil && info.IsDir() {
		return "registry", nil
	}

	if exe, err := os.Executable(); err == nil {
		p := filepath.Join(filepath.Dir(exe), "..", "registry")
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			return p, nil
		}
	}

	return "", fmt.Errorf("no registry found. Pass --registry, set %s, or set registry.path with `%s config set registry.path <dir>`",
		branding.EnvVar("REGISTRY"), branding.CLIName())
}
