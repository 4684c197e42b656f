package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeRegistry(t *testing.T, doc string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "registry.yaml"), []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

const validDoc = `name: "@stackui/registry"
version: 1.2.0
lib:
  utils:
    path: lib/utils.ts
  auth:
    description: Session helpers
    files:
      - source: lib/auth/session.ts
        target: auth/session.ts
      - source: lib/auth/client.ts
        target: auth/client.ts
    internalDependencies: [utils]
components:
  - name: button
    title: Button
    category: primitives
    files:
      - source: components/button/button.tsx
        target: button.tsx
    internalDependencies: [utils]
    dependencies: [clsx]
  - name: card
    category: primitives
    files:
      - source: components/card/card.tsx
        target: card.tsx
    registryDependencies: [button]
categories:
  - name: primitives
    title: Primitives
`

func TestLoad(t *testing.T) {
	dir := writeRegistry(t, validDoc)

	reg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if reg.Name != "@stackui/registry" || reg.Version != "1.2.0" {
		t.Errorf("header = %q %q", reg.Name, reg.Version)
	}
	if reg.Dir != dir {
		t.Errorf("Dir = %q, want %q", reg.Dir, dir)
	}
	if len(reg.Components) != 2 {
		t.Fatalf("expected 2 components, got %d", len(reg.Components))
	}

	button, ok := reg.Component("button")
	if !ok {
		t.Fatal("button not found")
	}
	if button.Category != "primitives" || len(button.Files) != 1 {
		t.Errorf("button = %+v", button)
	}

	auth, ok := reg.LibModule("auth")
	if !ok {
		t.Fatal("auth lib module not found")
	}
	if auth.Name != "auth" {
		t.Errorf("lib module name not filled from key: %q", auth.Name)
	}
	if len(auth.Mappings()) != 2 {
		t.Errorf("auth mappings = %v", auth.Mappings())
	}

	utils, _ := reg.LibModule("utils")
	mappings := utils.Mappings()
	if len(mappings) != 1 || mappings[0].Target != "utils.ts" {
		t.Errorf("path-form mapping should default target to base name, got %v", mappings)
	}
}

func TestLoadMissingDocument(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for empty directory")
	}
	if !strings.Contains(err.Error(), "no registry document") {
		t.Errorf("error = %v", err)
	}
}

func TestLoadSchemaViolation(t *testing.T) {
	dir := writeRegistry(t, `name: "@stackui/registry"
version: not-a-version
components: []
`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected schema error for bad version")
	}
	if !strings.Contains(err.Error(), "invalid") {
		t.Errorf("error = %v", err)
	}
}

func TestLoadDuplicateComponent(t *testing.T) {
	dir := writeRegistry(t, `name: "@stackui/registry"
version: 1.0.0
components:
  - name: button
    files:
      - source: components/button/button.tsx
        target: button.tsx
  - name: button
    files:
      - source: components/button/button.tsx
        target: button.tsx
`)

	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), "duplicate component name") {
		t.Errorf("expected duplicate name error, got %v", err)
	}
}

func TestLoadUnknownRegistryDependency(t *testing.T) {
	dir := writeRegistry(t, `name: "@stackui/registry"
version: 1.0.0
components:
  - name: card
    files:
      - source: components/card/card.tsx
        target: card.tsx
    registryDependencies: [ghost]
`)

	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), "unknown component") {
		t.Errorf("expected unknown dependency error, got %v", err)
	}
}

func TestLoadMissingLibReferenceAllowed(t *testing.T) {
	// Lib references are resolved at install time; Load must not reject them.
	dir := writeRegistry(t, `name: "@stackui/registry"
version: 1.0.0
components:
  - name: button
    files:
      - source: components/button/button.tsx
        target: button.tsx
    internalDependencies: [ghost-lib]
`)

	if _, err := Load(dir); err != nil {
		t.Errorf("Load should tolerate unknown lib references: %v", err)
	}
}

func TestIsComposite(t *testing.T) {
	tests := []struct {
		name    string
		files   []FileMapping
		wantDir string
		wantOK  bool
	}{
		{
			name:  "single file is flat",
			files: []FileMapping{{Source: "a", Target: "button.tsx"}},
		},
		{
			name: "shared subfolder",
			files: []FileMapping{
				{Source: "a", Target: "chat-window/chat-window.tsx"},
				{Source: "b", Target: "chat-window/message.tsx"},
			},
			wantDir: "chat-window",
			wantOK:  true,
		},
		{
			name: "mixed folders are flat",
			files: []FileMapping{
				{Source: "a", Target: "chat-window/chat-window.tsx"},
				{Source: "b", Target: "message.tsx"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ComponentEntry{Name: tt.name, Files: tt.files}
			dir, ok := c.IsComposite()
			if dir != tt.wantDir || ok != tt.wantOK {
				t.Errorf("IsComposite() = %q, %v; want %q, %v", dir, ok, tt.wantDir, tt.wantOK)
			}
		})
	}
}
