package transform

import (
	"path"
	"regexp"
	"strings"

	"github.com/stackui-dev/stackui/internal/branding"
	"github.com/stackui-dev/stackui/internal/project"
)

// namespaceImportRe matches a quoted module specifier under the registry's
// internal namespace, e.g. '@stackui/registry/lib/utils'.
var namespaceImportRe = regexp.MustCompile(`(['"])` + regexp.QuoteMeta(branding.Namespace()) + `/(lib|components)/([^'"]+)(['"])`)

// relativeImportRe matches a relative module specifier in import, export,
// dynamic import, or require position.
var relativeImportRe = regexp.MustCompile(`(from\s*['"]|import\s*\(\s*['"]|require\(\s*['"])(\.\.?/[^'"]+)(['"])`)

// RewriteImports maps registry-internal package references to project-local
// alias paths. targetPath is the file's install path relative to the
// component directory; a reference that lands in the file's own directory
// collapses to a sibling import instead of an alias.
func RewriteImports(content string, cfg *project.Config, targetPath string) string {
	targetDir := path.Dir(targetPath)

	return namespaceImportRe.ReplaceAllStringFunc(content, func(match string) string {
		groups := namespaceImportRe.FindStringSubmatch(match)
		open, kind, rest, close := groups[1], groups[2], groups[3], groups[4]

		if kind == "lib" {
			return open + cfg.Aliases.Lib + "/" + rest + close
		}

		if path.Dir(rest) == targetDir {
			return open + "./" + path.Base(rest) + close
		}
		return open + cfg.Aliases.Components + "/" + rest + close
	})
}

// RewriteRelativeImports re-derives relative imports for a file that moved
// from its nested registry location (sourcePath, relative to the registry
// root) to its flattened install location (targetPath, relative to the
// component directory). Imports that resolve into the registry's lib tree
// are rewritten onto aliasRoot; imports that resolve to other component
// sources are re-pointed at their flattened targets. Anything else (local
// assets, CSS) is left alone.
func RewriteRelativeImports(content, sourcePath, targetPath, aliasRoot string) string {
	sourceDir := path.Dir(sourcePath)
	targetDir := path.Dir(targetPath)

	return relativeImportRe.ReplaceAllStringFunc(content, func(match string) string {
		groups := relativeImportRe.FindStringSubmatch(match)
		prefix, spec, close := groups[1], groups[2], groups[3]

		resolved := path.Clean(path.Join(sourceDir, spec))
		switch {
		case path.Dir(resolved) == sourceDir:
			// A sibling stays a sibling: files that share a source
			// directory also share a target directory.
			return match
		case resolved == "lib" || strings.HasPrefix(resolved, "lib/"):
			rest := strings.TrimPrefix(strings.TrimPrefix(resolved, "lib"), "/")
			if rest == "" {
				return prefix + aliasRoot + close
			}
			return prefix + aliasRoot + "/" + rest + close
		case strings.HasPrefix(resolved, "components/"):
			base := path.Base(resolved)
			return prefix + relativeTo(targetDir, base) + close
		default:
			return match
		}
	})
}

// RewriteFamilyImports rewrites a composite component's cross-file
// references into plain sibling imports. The family's files keep living
// together in one subfolder after install, so any remaining reference into
// the family subtree — namespace form or already aliased — collapses to a
// ./ path. Runs after the generic passes, only for designated families.
func RewriteFamilyImports(content, componentsAlias, family string) string {
	for _, prefix := range []string{
		branding.Namespace() + "/components/" + family + "/",
		componentsAlias + "/" + family + "/",
	} {
		re := regexp.MustCompile(`(['"])` + regexp.QuoteMeta(prefix) + `([^'"]+)(['"])`)
		content = re.ReplaceAllString(content, `$1./$2$3`)
	}
	return content
}

// relativeTo builds a relative specifier from a directory (relative to the
// component dir, "." for the flat root) to a sibling file at the flat root.
func relativeTo(fromDir, base string) string {
	if fromDir == "." || fromDir == "" {
		return "./" + base
	}
	depth := strings.Count(fromDir, "/") + 1
	return strings.Repeat("../", depth) + base
}

// NormalizeExtension maps a component file name to the project's configured
// source variant: TypeScript projects keep .ts/.tsx, untyped projects get
// .js/.jsx.
func NormalizeExtension(name string, typescript bool) string {
	if typescript {
		return name
	}
	switch {
	case strings.HasSuffix(name, ".tsx"):
		return strings.TrimSuffix(name, ".tsx") + ".jsx"
	case strings.HasSuffix(name, ".ts"):
		return strings.TrimSuffix(name, ".ts") + ".js"
	default:
		return name
	}
}
