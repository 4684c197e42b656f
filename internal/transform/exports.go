package transform

import (
	"regexp"
	"strings"
)

// CandidateExtensions is the fixed resolution order for extensionless
// module specifiers, mirroring the consumer project's bundler behavior.
var CandidateExtensions = []string{".ts", ".tsx", ".js", ".jsx", "/index.ts", "/index.tsx"}

var (
	namedExportRe = regexp.MustCompile(`(?m)^export\s+(?:async\s+)?(?:const|let|var|function\*?|class|type|interface|enum)\s+([A-Za-z_$][A-Za-z0-9_$]*)`)
	exportListRe  = regexp.MustCompile(`(?m)^export\s*\{([^}]*)\}`)
)

// ScanNamedExports returns the top-level named exports declared in source
// text, in order of appearance. Both declaration exports and export lists
// (including "X as Y" renames) are recognized. This is a text-level scan,
// deliberately not a full parser.
func ScanNamedExports(content string) []string {
	var names []string

	for _, m := range namedExportRe.FindAllStringSubmatch(content, -1) {
		names = append(names, m[1])
	}

	for _, m := range exportListRe.FindAllStringSubmatch(content, -1) {
		for _, item := range strings.Split(m[1], ",") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			// "X as Y" exports Y.
			if idx := strings.LastIndex(item, " as "); idx >= 0 {
				item = strings.TrimSpace(item[idx+4:])
			}
			if item != "" && item != "default" {
				names = append(names, item)
			}
		}
	}

	return names
}
