package installer

import (
	"fmt"

	"github.com/stackui-dev/stackui/internal/project"
	"github.com/stackui-dev/stackui/internal/transform"
)

// Status is the terminal state of one resolved item.
type Status int

const (
	// StatusInstalled means files were written and config was updated.
	StatusInstalled Status = iota
	// StatusSkipped means the item was deliberately not installed (already
	// present, or the user declined overwrite). Never an error.
	StatusSkipped
	// StatusFailed means the item could not be installed; the batch
	// continues with the remaining items.
	StatusFailed
	// StatusPlanned means a dry run recorded the item without writing.
	StatusPlanned
)

// ConfirmFunc is called in interactive mode to decide whether an already
// installed component should be overwritten. Returns true to proceed.
type ConfirmFunc func(name string) (bool, error)

// ProgressFunc is called once per resolved item with its outcome.
type ProgressFunc func(kind, name string, status Status, err error)

// Options controls one add batch.
type Options struct {
	// Overwrite forces reinstallation of already installed items in every
	// mode.
	Overwrite bool
	// DryRun resolves and plans without touching the filesystem or config.
	DryRun bool
	// NonInteractive suppresses prompts: already installed items are
	// skipped silently.
	NonInteractive bool
	// Confirm supplies the interactive overwrite answer. Ignored when
	// NonInteractive or Overwrite is set. A nil Confirm behaves like
	// NonInteractive.
	Confirm ConfirmFunc
	// Progress receives per-item outcomes. Optional.
	Progress ProgressFunc
}

// Transformer is the file-transform collaborator contract. The installer
// depends only on these input/output signatures.
type Transformer interface {
	RewriteImports(content string, cfg *project.Config, targetPath string) string
	RewriteRelativeImports(content, sourcePath, targetPath, aliasRoot string) string
	RewriteFamilyImports(content, componentsAlias, family string) string
	StampOrigin(content, name, pkg, version string) string
}

// textTransformer delegates to the transform package's pure functions.
type textTransformer struct{}

func (textTransformer) RewriteImports(content string, cfg *project.Config, targetPath string) string {
	return transform.RewriteImports(content, cfg, targetPath)
}

func (textTransformer) RewriteRelativeImports(content, sourcePath, targetPath, aliasRoot string) string {
	return transform.RewriteRelativeImports(content, sourcePath, targetPath, aliasRoot)
}

func (textTransformer) RewriteFamilyImports(content, componentsAlias, family string) string {
	return transform.RewriteFamilyImports(content, componentsAlias, family)
}

func (textTransformer) StampOrigin(content, name, pkg, version string) string {
	return transform.StampOrigin(content, name, pkg, version)
}

// DefaultTransformer returns the standard text-based transformer.
func DefaultTransformer() Transformer { return textTransformer{} }

// PlanItem is one dry-run manifest record.
type PlanItem struct {
	Name     string   `json:"name"`
	Kind     string   `json:"kind"` // "component" or "lib"
	Files    []string `json:"files"`
	External []string `json:"external,omitempty"`
	Libs     []string `json:"libs,omitempty"`
}

// Result summarizes an add batch. A partially successful batch is an
// accepted terminal state; Warnings carries everything non-fatal.
type Result struct {
	Installed []string
	Skipped   []string
	Failed    []string
	Warnings  []string
	Plan      []PlanItem
	// External is the union of external package dependencies across
	// installed items, in first-seen order.
	External []string
}

func (r *Result) warnf(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Result) addExternal(pkgs []string) {
	for _, p := range pkgs {
		if !containsStr(r.External, p) {
			r.External = append(r.External, p)
		}
	}
}

func containsStr(slice []string, val string) bool {
	for _, s := range slice {
		if s == val {
			return true
		}
	}
	return false
}
