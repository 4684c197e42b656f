package installer

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/stackui-dev/stackui/internal/project"
	"github.com/stackui-dev/stackui/internal/registry"
	"github.com/stackui-dev/stackui/internal/transform"
)

// GenerateIndex regenerates the barrel re-export file strictly from the
// config's installed-component list — never by scanning the filesystem.
// Components are iterated in sorted order so the output is deterministic
// regardless of install order. The returned strings are non-fatal warnings
// (unknown components, named-export collisions); generation succeeds and
// the index is written even when collisions exist.
func GenerateIndex(reg *registry.Registry, cfg *project.Config, projectRoot string) ([]string, error) {
	componentsDir := cfg.ComponentsDir(projectRoot)

	names := append([]string(nil), cfg.InstalledComponents...)
	sort.Strings(names)

	var warnings []string
	var exports []string
	seen := make(map[string]bool)

	for _, name := range names {
		entry, ok := reg.Component(name)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("component %q is recorded as installed but missing from the registry — not exported", name))
			continue
		}

		exportPath := exportPathFor(entry, cfg, componentsDir)
		if seen[exportPath] {
			// Duplicate target paths are suppressed, not erroneous.
			continue
		}
		seen[exportPath] = true
		exports = append(exports, exportPath)
	}

	var b strings.Builder
	b.WriteString("// Generated by stackui. Do not edit: regenerated on every install.\n")
	for _, e := range exports {
		fmt.Fprintf(&b, "export * from '%s';\n", e)
	}

	indexName := "index.ts"
	if !cfg.TypeScript {
		indexName = "index.js"
	}
	if err := os.MkdirAll(componentsDir, 0755); err != nil {
		return warnings, fmt.Errorf("creating %s: %w", componentsDir, err)
	}
	indexPath := filepath.Join(componentsDir, indexName)
	if err := os.WriteFile(indexPath, []byte(b.String()), 0644); err != nil {
		return warnings, fmt.Errorf("writing %s: %w", indexPath, err)
	}

	warnings = append(warnings, scanExportCollisions(componentsDir, exports)...)
	return warnings, nil
}

// exportPathFor determines a component's barrel export path: the subfolder
// index for composites, otherwise the flat per-component file — substituting
// the server-safe wrapper when the plain variant is SSR-unsafe and the
// wrapper exists on disk.
func exportPathFor(entry *registry.ComponentEntry, cfg *project.Config, componentsDir string) string {
	if dir, composite := entry.IsComposite(); composite {
		return "./" + dir
	}

	target := trimSourceExt(entry.Files[0].Target)
	if entry.SSRUnsafe {
		wrapper := target + "-ssr"
		if resolveSource(componentsDir, wrapper) != "" {
			return "./" + wrapper
		}
	}
	return "./" + target
}

// scanExportCollisions statically scans each emitted export's backing files
// for top-level named exports and warns when a name is produced by more
// than one file.
func scanExportCollisions(componentsDir string, exports []string) []string {
	origin := make(map[string]string)
	var warnings []string

	for _, exportPath := range exports {
		rel := strings.TrimPrefix(exportPath, "./")
		for _, file := range backingFiles(componentsDir, rel) {
			data, err := os.ReadFile(file)
			if err != nil {
				continue
			}
			display := filepath.ToSlash(file[len(componentsDir)+1:])
			for _, name := range transform.ScanNamedExports(string(data)) {
				if prev, ok := origin[name]; ok && prev != display {
					warnings = append(warnings, fmt.Sprintf("export %q is declared by both %s and %s", name, prev, display))
					continue
				}
				origin[name] = display
			}
		}
	}

	return warnings
}

// backingFiles resolves an export path to the source files it re-exports:
// the file itself for flat exports, the subfolder's index (or every source
// file in it) for composites.
func backingFiles(componentsDir, rel string) []string {
	abs := filepath.Join(componentsDir, filepath.FromSlash(rel))

	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		if idx := resolveSource(componentsDir, path.Join(rel, "index")); idx != "" {
			return []string{idx}
		}
		entries, err := os.ReadDir(abs)
		if err != nil {
			return nil
		}
		var files []string
		for _, e := range entries {
			if e.IsDir() || !isSourceFile(e.Name()) {
				continue
			}
			files = append(files, filepath.Join(abs, e.Name()))
		}
		return files
	}

	if f := resolveSource(componentsDir, rel); f != "" {
		return []string{f}
	}
	return nil
}

// resolveSource probes the candidate-extension list for an extensionless
// path and returns the first file that exists, or "".
func resolveSource(baseDir, rel string) string {
	for _, ext := range transform.CandidateExtensions {
		p := filepath.Join(baseDir, filepath.FromSlash(rel+ext))
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

func isSourceFile(name string) bool {
	switch path.Ext(name) {
	case ".ts", ".tsx", ".js", ".jsx":
		return true
	}
	return false
}

// trimSourceExt strips a recognized source extension from a target path.
func trimSourceExt(target string) string {
	for _, ext := range []string{".tsx", ".ts", ".jsx", ".js"} {
		if strings.HasSuffix(target, ext) {
			return strings.TrimSuffix(target, ext)
		}
	}
	return target
}
