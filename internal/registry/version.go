package registry

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions compares two registry version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b. A leading "v" is tolerated.
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// IsStale reports whether components installed under installedVersion
// predate the current registry version. Unparseable versions are treated
// as not stale — staleness is advisory only.
func IsStale(installedVersion, registryVersion string) bool {
	if installedVersion == "" {
		return false
	}
	cmp, err := CompareVersions(installedVersion, registryVersion)
	if err != nil {
		return false
	}
	return cmp == -1
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
