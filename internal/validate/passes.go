package validate

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/stackui-dev/stackui/internal/branding"
	"github.com/stackui-dev/stackui/internal/project"
	"github.com/stackui-dev/stackui/internal/registry"
	"github.com/stackui-dev/stackui/internal/transform"
)

// relativeSpecRe matches a relative module specifier in import/export
// position, capturing the specifier.
var relativeSpecRe = regexp.MustCompile(`(?:from\s*|import\s*\(\s*|require\(\s*)['"](\.\.?/[^'"]+)['"]`)

// exportLineRe matches a barrel re-export line and captures its path.
var exportLineRe = regexp.MustCompile(`(?m)^export\s+\*\s+from\s+['"]([^'"]+)['"]`)

// namespaceSpecRe matches a quoted module specifier under the registry's
// internal namespace. Quoting matters: the origin header stamped by the
// installer names the namespace in a comment and must never be flagged.
var namespaceSpecRe = regexp.MustCompile(`['"]` + regexp.QuoteMeta(branding.Namespace()) + `(?:/[^'"]*)?['"]`)

// ScanUntransformedImports flags any line whose module specifier still
// references the registry's internal package namespace. Pure text scan;
// file is used only for the finding location.
func ScanUntransformedImports(file, content string) []Finding {
	var findings []Finding
	namespace := branding.Namespace()

	for i, line := range strings.Split(content, "\n") {
		if namespaceSpecRe.MatchString(line) {
			findings = append(findings, Finding{
				Code:    CodeUntransformedImport,
				File:    file,
				Line:    i + 1,
				Message: fmt.Sprintf("import still references %s — the source transform did not run", namespace),
			})
		}
	}
	return findings
}

// ScanRelativeImports flags relative imports that fail to resolve against
// the fixed candidate-extension list. exists abstracts the filesystem so
// the scan itself stays testable with literal fixtures.
func ScanRelativeImports(file, content, fileDir string, exists func(path string) bool) []Finding {
	var findings []Finding

	for i, line := range strings.Split(content, "\n") {
		for _, m := range relativeSpecRe.FindAllStringSubmatch(line, -1) {
			spec := m[1]
			if hasAssetExt(spec) {
				continue
			}
			if !resolvesRelative(fileDir, spec, exists) {
				findings = append(findings, Finding{
					Code:    CodeBrokenRelativeImport,
					File:    file,
					Line:    i + 1,
					Message: fmt.Sprintf("relative import %q does not resolve", spec),
				})
			}
		}
	}
	return findings
}

func resolvesRelative(fileDir, spec string, exists func(path string) bool) bool {
	base := path.Clean(path.Join(fileDir, spec))
	if path.Ext(spec) != "" && exists(base) {
		return true
	}
	for _, ext := range transform.CandidateExtensions {
		if exists(base + ext) {
			return true
		}
	}
	return false
}

func hasAssetExt(spec string) bool {
	switch path.Ext(spec) {
	case ".css", ".svg", ".png", ".jpg", ".json":
		return true
	}
	return false
}

// checkLibFiles verifies that every declared file of every installed lib
// module is present on disk.
func checkLibFiles(reg *registry.Registry, cfg *project.Config, projectRoot string) []Finding {
	var findings []Finding
	libDir := cfg.LibDir(projectRoot)

	for _, name := range cfg.InstalledLib {
		mod, ok := reg.LibModule(name)
		if !ok {
			findings = append(findings, Finding{
				Code:    CodeMissingLibFile,
				Message: fmt.Sprintf("lib module %q is recorded as installed but missing from the registry", name),
			})
			continue
		}
		for _, m := range mod.Mappings() {
			p := filepath.Join(libDir, filepath.FromSlash(m.Target))
			if _, err := os.Stat(p); err != nil {
				findings = append(findings, Finding{
					Code:    CodeMissingLibFile,
					File:    relDisplay(projectRoot, p),
					Message: fmt.Sprintf("lib module %q requires %s, which is missing", name, m.Target),
				})
			}
		}
	}
	return findings
}

// checkSSRExports warns when a browser-only component is re-exported
// directly from the barrel instead of via its server-safe wrapper.
func checkSSRExports(reg *registry.Registry, cfg *project.Config, indexContent string) []Finding {
	var findings []Finding

	for _, name := range cfg.InstalledComponents {
		entry, ok := reg.Component(name)
		if !ok || !entry.SSRUnsafe || len(entry.Files) == 0 {
			continue
		}
		if _, composite := entry.IsComposite(); composite {
			continue
		}

		plain := "./" + trimSourceExt(entry.Files[0].Target)
		for _, m := range exportLineRe.FindAllStringSubmatch(indexContent, -1) {
			if m[1] == plain {
				findings = append(findings, Finding{
					Code:    CodeSSRUnsafeExport,
					Message: fmt.Sprintf("component %q is browser-only but exported directly — export %s-ssr instead", name, plain),
				})
			}
		}
	}
	return findings
}

// requiredRoutes maps an installed-item condition to the server route file
// the component assumes exists at runtime.
var requiredRoutes = []struct {
	category string // component category that triggers the requirement
	lib      string // or lib module that triggers it
	route    string
}{
	{category: "chat", route: "app/api/stackui/chat/route.ts"},
	{lib: "auth", route: "app/api/stackui/auth/route.ts"},
}

// checkAPIRoutes warns about missing server route files required by the
// installed set.
func checkAPIRoutes(reg *registry.Registry, cfg *project.Config, projectRoot string) []Finding {
	var findings []Finding

	for _, req := range requiredRoutes {
		needed := false
		switch {
		case req.lib != "":
			needed = cfg.HasLib(req.lib)
		case req.category != "":
			for _, name := range cfg.InstalledComponents {
				if entry, ok := reg.Component(name); ok && entry.Category == req.category {
					needed = true
					break
				}
			}
		}
		if !needed {
			continue
		}

		p := filepath.Join(projectRoot, filepath.FromSlash(req.route))
		if _, err := os.Stat(p); err != nil {
			findings = append(findings, Finding{
				Code:    CodeMissingAPIRoute,
				File:    req.route,
				Message: fmt.Sprintf("installed components expect %s at runtime", req.route),
			})
		}
	}
	return findings
}

// checkDuplicateExports re-derives the index generator's collision check
// against the actually-written barrel file, catching drift from manual
// edits.
func checkDuplicateExports(componentsDir, indexContent string) []Finding {
	var findings []Finding
	origin := make(map[string]string)

	for _, m := range exportLineRe.FindAllStringSubmatch(indexContent, -1) {
		rel := strings.TrimPrefix(m[1], "./")
		for _, file := range exportBackingFiles(componentsDir, rel) {
			data, err := os.ReadFile(file)
			if err != nil {
				continue
			}
			display := filepath.ToSlash(strings.TrimPrefix(file, componentsDir+string(filepath.Separator)))
			for _, name := range transform.ScanNamedExports(string(data)) {
				if prev, ok := origin[name]; ok && prev != display {
					findings = append(findings, Finding{
						Code:    CodeDuplicateExport,
						File:    display,
						Message: fmt.Sprintf("export %q is also declared by %s", name, prev),
					})
					continue
				}
				origin[name] = display
			}
		}
	}
	return findings
}

// exportBackingFiles resolves a barrel export path to its source files,
// mirroring the index generator's resolution exactly: a composite subfolder
// is backed by its own index when one exists, and only falls back to every
// source file in the folder otherwise.
func exportBackingFiles(componentsDir, rel string) []string {
	abs := filepath.Join(componentsDir, filepath.FromSlash(rel))

	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		if idx := resolveExportSource(componentsDir, path.Join(rel, "index")); idx != "" {
			return []string{idx}
		}
		entries, err := os.ReadDir(abs)
		if err != nil {
			return nil
		}
		var files []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			switch path.Ext(e.Name()) {
			case ".ts", ".tsx", ".js", ".jsx":
				files = append(files, filepath.Join(abs, e.Name()))
			}
		}
		return files
	}

	if f := resolveExportSource(componentsDir, rel); f != "" {
		return []string{f}
	}
	return nil
}

// resolveExportSource probes the candidate-extension list for an
// extensionless path and returns the first file that exists, or "".
func resolveExportSource(componentsDir, rel string) string {
	for _, ext := range transform.CandidateExtensions {
		p := filepath.Join(componentsDir, filepath.FromSlash(rel+ext))
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

func trimSourceExt(target string) string {
	for _, ext := range []string{".tsx", ".ts", ".jsx", ".js"} {
		if strings.HasSuffix(target, ext) {
			return strings.TrimSuffix(target, ext)
		}
	}
	return target
}

func relDisplay(root, abs string) string {
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return abs
	}
	return filepath.ToSlash(rel)
}
