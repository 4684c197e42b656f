package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stackui-dev/stackui/internal/branding"
)

// remediations is the fixed code→remediation table suggestions are derived
// from. Suggestions are never computed ad hoc. "{cli}" expands to the CLI
// name at render time.
var remediations = map[string]string{
	CodeUntransformedImport:  "reinstall the affected components with `{cli} add --overwrite` to re-run the transforms",
	CodeBrokenRelativeImport: "reinstall the affected components with `{cli} add --overwrite` to re-derive relative imports",
	CodeMissingLibFile:       "run `{cli} add --overwrite` to restore missing lib module files",
	CodeSSRUnsafeExport:      "create the -ssr wrapper file and rerun `{cli} add` to regenerate the index",
	CodeMissingAPIRoute:      "create the listed route files under app/api/",
	CodeDuplicateExport:      "rename one of the colliding exports, then regenerate the index with `{cli} add`",
	CodeTypeError:            "fix the reported type errors, or reinstall with `{cli} add --overwrite` if local edits caused them",
}

// Suggest derives remediation strings from findings: one suggestion per
// distinct code, prefixed with the finding count.
func Suggest(findings []Finding) []string {
	counts := make(map[string]int)
	for _, f := range findings {
		counts[f.Code]++
	}

	codes := make([]string, 0, len(counts))
	for code := range counts {
		if _, ok := remediations[code]; ok {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)

	var suggestions []string
	for _, code := range codes {
		text := strings.ReplaceAll(remediations[code], "{cli}", branding.CLIName())
		suggestions = append(suggestions, fmt.Sprintf("%d %s: %s", counts[code], code, text))
	}
	return suggestions
}
