package installer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stackui-dev/stackui/internal/project"
	"github.com/stackui-dev/stackui/internal/registry"
)

func indexRegistry() *registry.Registry {
	return &registry.Registry{
		Name: "@stackui/registry", Version: "1.0.0",
		Components: []registry.ComponentEntry{
			{Name: "button", Files: []registry.FileMapping{{Source: "s", Target: "button.tsx"}}},
			{Name: "card", Files: []registry.FileMapping{{Source: "s", Target: "card.tsx"}}},
			{Name: "chat-window", Files: []registry.FileMapping{
				{Source: "s", Target: "chat-window/chat-window.tsx"},
				{Source: "s", Target: "chat-window/message.tsx"},
			}},
			{Name: "code-block", SSRUnsafe: true, Files: []registry.FileMapping{{Source: "s", Target: "code-block.tsx"}}},
		},
	}
}

func readIndexFile(t *testing.T, cfg *project.Config, root string) string {
	t.Helper()
	name := "index.ts"
	if !cfg.TypeScript {
		name = "index.js"
	}
	data, err := os.ReadFile(filepath.Join(cfg.ComponentsDir(root), name))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestGenerateIndexSortedAndStable(t *testing.T) {
	reg := indexRegistry()
	cfg, root := fixtureProject(t)

	// Deliberately reversed install order; output must not depend on it.
	cfg.UpsertComponent("card", "1.0.0", reg.Name)
	cfg.UpsertComponent("button", "1.0.0", reg.Name)

	warnings, err := GenerateIndex(reg, cfg, root)
	if err != nil {
		t.Fatalf("GenerateIndex: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v", warnings)
	}

	want := "// Generated by stackui. Do not edit: regenerated on every install.\n" +
		"export * from './button';\n" +
		"export * from './card';\n"
	if got := readIndexFile(t, cfg, root); got != want {
		t.Errorf("index = %q, want %q", got, want)
	}
}

func TestGenerateIndexCompositeExportsSubfolder(t *testing.T) {
	reg := indexRegistry()
	cfg, root := fixtureProject(t)
	cfg.UpsertComponent("chat-window", "1.0.0", reg.Name)

	if _, err := GenerateIndex(reg, cfg, root); err != nil {
		t.Fatalf("GenerateIndex: %v", err)
	}

	if got := readIndexFile(t, cfg, root); !strings.Contains(got, "export * from './chat-window';\n") {
		t.Errorf("index = %q", got)
	}
}

func TestGenerateIndexSSRWrapper(t *testing.T) {
	reg := indexRegistry()
	cfg, root := fixtureProject(t)
	cfg.UpsertComponent("code-block", "1.0.0", reg.Name)

	// Without a wrapper on disk, the plain variant is exported.
	if _, err := GenerateIndex(reg, cfg, root); err != nil {
		t.Fatalf("GenerateIndex: %v", err)
	}
	if got := readIndexFile(t, cfg, root); !strings.Contains(got, "export * from './code-block';\n") {
		t.Errorf("index = %q", got)
	}

	// Once the server-safe wrapper exists, it takes over.
	wrapper := filepath.Join(cfg.ComponentsDir(root), "code-block-ssr.tsx")
	if err := os.WriteFile(wrapper, []byte("export const CodeBlock = () => null;\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := GenerateIndex(reg, cfg, root); err != nil {
		t.Fatalf("GenerateIndex: %v", err)
	}
	if got := readIndexFile(t, cfg, root); !strings.Contains(got, "export * from './code-block-ssr';\n") {
		t.Errorf("index = %q", got)
	}
}

func TestGenerateIndexUnknownComponentWarns(t *testing.T) {
	reg := indexRegistry()
	cfg, root := fixtureProject(t)
	cfg.UpsertComponent("vanished", "1.0.0", reg.Name)
	cfg.UpsertComponent("button", "1.0.0", reg.Name)

	warnings, err := GenerateIndex(reg, cfg, root)
	if err != nil {
		t.Fatalf("GenerateIndex: %v", err)
	}

	if len(warnings) != 1 || !strings.Contains(warnings[0], `"vanished"`) {
		t.Errorf("warnings = %v", warnings)
	}
	if got := readIndexFile(t, cfg, root); strings.Contains(got, "vanished") {
		t.Errorf("unknown component must not be exported: %q", got)
	}
}

func TestGenerateIndexExportCollisionWarns(t *testing.T) {
	reg := indexRegistry()
	cfg, root := fixtureProject(t)
	cfg.UpsertComponent("button", "1.0.0", reg.Name)
	cfg.UpsertComponent("card", "1.0.0", reg.Name)

	dir := cfg.ComponentsDir(root)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	// Both files declare Spinner.
	os.WriteFile(filepath.Join(dir, "button.tsx"), []byte("export const Spinner = 1;\n"), 0644)
	os.WriteFile(filepath.Join(dir, "card.tsx"), []byte("export const Spinner = 2;\n"), 0644)

	warnings, err := GenerateIndex(reg, cfg, root)
	if err != nil {
		t.Fatalf("GenerateIndex: %v", err)
	}

	found := false
	for _, w := range warnings {
		if strings.Contains(w, `"Spinner"`) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a collision warning for Spinner, got %v", warnings)
	}
}
