// Package validate performs read-only, multi-pass static analysis of an
// installed component tree plus its project config. The text scans are
// independent of the installer and of each other: passes run concurrently
// and their findings are merged into a single result. Findings are always
// collected, never thrown — only a non-empty error list makes the result
// invalid.
package validate
