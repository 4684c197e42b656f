package validate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stackui-dev/stackui/internal/installer"
	"github.com/stackui-dev/stackui/internal/project"
	"github.com/stackui-dev/stackui/internal/registry"
)

func validateFixture(t *testing.T) (*registry.Registry, *project.Config, string) {
	t.Helper()
	root := t.TempDir()

	reg := &registry.Registry{
		Name: "@stackui/registry", Version: "1.0.0",
		Lib: map[string]registry.LibModule{
			"utils": {Path: "lib/utils.ts"},
		},
		Components: []registry.ComponentEntry{
			{Name: "button", Files: []registry.FileMapping{{Source: "s", Target: "button.tsx"}}},
		},
	}
	cfg := &project.Config{
		TypeScript: true,
		Aliases: project.Aliases{
			Components: "@/components/stackui",
			Lib:        "@/lib/stackui",
		},
	}
	return reg, cfg, root
}

func writeProjectFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRunCleanProject(t *testing.T) {
	reg, cfg, root := validateFixture(t)
	cfg.UpsertComponent("button", "1.0.0", reg.Name)
	cfg.UpsertLib("utils", "1.0.0", reg.Name)

	writeProjectFile(t, root, "components/stackui/button.tsx",
		"import { cn } from '@/lib/stackui/utils';\nexport const Button = () => null;\n")
	writeProjectFile(t, root, "components/stackui/index.ts", "export * from './button';\n")
	writeProjectFile(t, root, "lib/stackui/utils.ts", "export const cn = () => '';\n")

	result, err := Run(reg, cfg, root, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !result.Valid {
		t.Errorf("expected valid, errors = %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("warnings = %v", result.Warnings)
	}
}

func TestInstallThenValidateClean(t *testing.T) {
	// Full round trip: a fresh install followed by index generation must
	// validate with zero errors and zero warnings, origin headers included.
	regDir := t.TempDir()
	writeProjectFile(t, regDir, "lib/utils.ts", "export const cn = (...s: string[]) => s.join(' ');\n")
	writeProjectFile(t, regDir, "components/button/button.tsx",
		"import { cn } from '@stackui/registry/lib/utils';\nexport const Button = () => null;\n")
	writeProjectFile(t, regDir, "components/card/card.tsx",
		"import { Button } from '@stackui/registry/components/button';\nexport const Card = () => null;\n")

	reg := &registry.Registry{
		Name: "@stackui/registry", Version: "1.2.0", Dir: regDir,
		Lib: map[string]registry.LibModule{
			"utils": {Path: "lib/utils.ts"},
		},
		Components: []registry.ComponentEntry{
			{
				Name:                 "button",
				Files:                []registry.FileMapping{{Source: "components/button/button.tsx", Target: "button.tsx"}},
				InternalDependencies: []string{"utils"},
			},
			{
				Name:                 "card",
				Files:                []registry.FileMapping{{Source: "components/card/card.tsx", Target: "card.tsx"}},
				RegistryDependencies: []string{"button"},
			},
		},
	}

	root := t.TempDir()
	cfg := &project.Config{
		TypeScript: true,
		Aliases: project.Aliases{
			Components: "@/components/stackui",
			Lib:        "@/lib/stackui",
		},
	}

	ins := installer.New(reg, cfg, root, installer.Options{NonInteractive: true}, nil)
	if _, err := ins.Add([]string{"card"}, nil); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if warnings, err := installer.GenerateIndex(reg, cfg, root); err != nil || len(warnings) != 0 {
		t.Fatalf("GenerateIndex: %v, warnings %v", err, warnings)
	}

	result, err := Run(reg, cfg, root, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Valid {
		t.Errorf("fresh install did not validate: %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("warnings = %v", result.Warnings)
	}
}

func TestRunUntransformedImportIsError(t *testing.T) {
	reg, cfg, root := validateFixture(t)
	cfg.UpsertComponent("button", "1.0.0", reg.Name)

	writeProjectFile(t, root, "components/stackui/button.tsx",
		"import { cn } from '@stackui/registry/lib/utils';\nexport const Button = () => null;\n")

	result, err := Run(reg, cfg, root, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Valid {
		t.Fatal("expected invalid result")
	}
	found := false
	for _, f := range result.Errors {
		if f.Code == CodeUntransformedImport && f.File == "components/stackui/button.tsx" && f.Line == 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("errors = %v", result.Errors)
	}
}

func TestRunMissingLibFile(t *testing.T) {
	reg, cfg, root := validateFixture(t)
	cfg.UpsertLib("utils", "1.0.0", reg.Name)
	// lib/stackui/utils.ts deliberately absent.

	result, err := Run(reg, cfg, root, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Valid {
		t.Fatal("expected invalid result")
	}
	found := false
	for _, f := range result.Errors {
		if f.Code == CodeMissingLibFile && f.File == "lib/stackui/utils.ts" {
			found = true
		}
	}
	if !found {
		t.Errorf("errors = %v", result.Errors)
	}
}

func TestRunMissingAPIRouteIsWarning(t *testing.T) {
	reg, cfg, root := validateFixture(t)
	reg.Lib["auth"] = registry.LibModule{Path: "lib/auth/session.ts"}
	cfg.UpsertLib("auth", "1.0.0", reg.Name)
	writeProjectFile(t, root, "lib/stackui/auth/session.ts", "export const session = 1;\n")

	result, err := Run(reg, cfg, root, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !result.Valid {
		t.Errorf("a missing route is advisory, errors = %v", result.Errors)
	}
	found := false
	for _, f := range result.Warnings {
		if f.Code == CodeMissingAPIRoute && f.File == "app/api/stackui/auth/route.ts" {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v", result.Warnings)
	}
}

func TestSuggestCountsPerCode(t *testing.T) {
	findings := []Finding{
		{Code: CodeUntransformedImport, File: "a.tsx", Line: 1},
		{Code: CodeUntransformedImport, File: "b.tsx", Line: 4},
	}

	suggestions := Suggest(findings)
	if len(suggestions) != 1 {
		t.Fatalf("suggestions = %v", suggestions)
	}
	if !strings.HasPrefix(suggestions[0], "2 "+CodeUntransformedImport) {
		t.Errorf("suggestion should lead with the count: %q", suggestions[0])
	}
	if !strings.Contains(suggestions[0], "stackui add --overwrite") {
		t.Errorf("suggestion should name the reinstall command: %q", suggestions[0])
	}
}

func TestSuggestUnknownCodeDropped(t *testing.T) {
	suggestions := Suggest([]Finding{{Code: CodeTypeCheckerUnavailable}})
	if len(suggestions) != 0 {
		t.Errorf("suggestions = %v", suggestions)
	}
}

func TestParseDiagnostics(t *testing.T) {
	output := strings.Join([]string{
		"components/stackui/button.tsx(12,5): error TS2304: Cannot find name 'cn'.",
		"components/stackui/card.tsx(3,1): warning TS6133: 'x' is declared but never read.",
		"pages/home.tsx(8,2): error TS2322: Type 'number' is not assignable to type 'string'.",
		"npm warn config ignoring workspace config",
	}, "\n")

	keep := func(file string) bool { return strings.HasPrefix(file, "components/stackui/") }
	findings := ParseDiagnostics(output, keep)

	if len(findings) != 1 {
		t.Fatalf("findings = %v", findings)
	}
	f := findings[0]
	if f.Code != CodeTypeError || f.File != "components/stackui/button.tsx" || f.Line != 12 {
		t.Errorf("finding = %+v", f)
	}
	if !strings.Contains(f.Message, "TS2304") {
		t.Errorf("message should carry the checker code: %q", f.Message)
	}
}
