package transform

import (
	"fmt"
	"regexp"
	"strings"
)

// originRe matches a stamped origin header line.
var originRe = regexp.MustCompile(`(?m)^// stackui-origin: ([^@\s]+)/([^@\s]+)@(\S+)$`)

// StampOrigin prepends an origin header recording the originating package,
// item name, and registry version. Re-stamping an already stamped file
// replaces the existing header instead of stacking a second one.
func StampOrigin(content, name, pkg, version string) string {
	header := fmt.Sprintf("// stackui-origin: %s/%s@%s", pkg, name, version)

	if originRe.MatchString(content) {
		return originRe.ReplaceAllString(content, header)
	}
	return header + "\n" + content
}

// Origin is a parsed origin header.
type Origin struct {
	Package string
	Name    string
	Version string
}

// ParseOrigin extracts the origin header from file content, if present.
// Used for staleness detection against the current registry version.
func ParseOrigin(content string) (Origin, bool) {
	m := originRe.FindStringSubmatch(content)
	if m == nil {
		return Origin{}, false
	}
	return Origin{Package: m[1], Name: m[2], Version: m[3]}, true
}

// HasOrigin reports whether content carries any origin header.
func HasOrigin(content string) bool {
	return strings.Contains(content, "// stackui-origin: ") && originRe.MatchString(content)
}
