package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// documentNames is the fallback order for finding the registry document.
var documentNames = []string{"registry.yaml", "registry.json"}

// Load reads the registry document under dir, validates it eagerly against
// the embedded schema, and performs structural checks. Malformed registries
// are rejected here, before any resolution begins.
func Load(dir string) (*Registry, error) {
	docPath, err := findDocument(dir)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(docPath)
	if err != nil {
		return nil, fmt.Errorf("reading registry document %s: %w", docPath, err)
	}

	result, err := ValidateDocument(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		var lines []string
		for _, issue := range result.Issues {
			lines = append(lines, "  "+issue.String())
		}
		return nil, fmt.Errorf("registry document %s is invalid:\n%s", docPath, strings.Join(lines, "\n"))
	}

	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parsing registry document %s: %w", docPath, err)
	}
	reg.Dir = dir

	if err := checkStructure(&reg); err != nil {
		return nil, fmt.Errorf("registry document %s: %w", docPath, err)
	}

	return &reg, nil
}

// findDocument locates the registry document in dir, trying documentNames
// in order.
func findDocument(dir string) (string, error) {
	for _, name := range documentNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no registry document found in %s (expected %s)", dir, strings.Join(documentNames, " or "))
}

// checkStructure verifies invariants the schema cannot express: unique
// component names and resolvable registry dependencies. Lib module
// references are deliberately not checked here — a missing lib module is a
// recoverable per-item warning at install time, not a structural violation.
func checkStructure(reg *Registry) error {
	names := make(map[string]bool, len(reg.Components))
	for _, c := range reg.Components {
		if names[c.Name] {
			return fmt.Errorf("duplicate component name %q", c.Name)
		}
		names[c.Name] = true
	}

	for _, c := range reg.Components {
		for _, dep := range c.RegistryDependencies {
			if !names[dep] {
				return fmt.Errorf("component %q depends on unknown component %q", c.Name, dep)
			}
		}
	}

	return nil
}
