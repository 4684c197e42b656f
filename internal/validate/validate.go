package validate

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/stackui-dev/stackui/internal/project"
	"github.com/stackui-dev/stackui/internal/registry"
)

// Options controls one validation run.
type Options struct {
	// TypeCheck enables the external type-checker pass. It dominates
	// wall-clock time, so it runs separately after the static passes.
	TypeCheck bool
}

// errorCodes lists the codes that invalidate a result; everything else is
// a warning.
var errorCodes = map[string]bool{
	CodeUntransformedImport:  true,
	CodeBrokenRelativeImport: true,
	CodeMissingLibFile:       true,
	CodeTypeError:            true,
}

// treeFile is one source file of the installed tree, read once and shared
// by the concurrent scans.
type treeFile struct {
	rel     string // project-relative display path
	dir     string // slash-form absolute directory, for import resolution
	content string
}

// Run executes the validation passes against the project tree and config.
// The static passes are read-only and mutually independent, so they run
// concurrently; their findings merge in fixed pass order for deterministic
// output.
func Run(reg *registry.Registry, cfg *project.Config, projectRoot string, opts Options) (*Result, error) {
	componentsDir := cfg.ComponentsDir(projectRoot)
	libDir := cfg.LibDir(projectRoot)

	files, err := loadTree(projectRoot, componentsDir, libDir)
	if err != nil {
		return nil, err
	}
	indexContent := readIndex(componentsDir, cfg.TypeScript)

	slots := make([][]Finding, 6)
	var g errgroup.Group

	g.Go(func() error {
		for _, f := range files {
			slots[0] = append(slots[0], ScanUntransformedImports(f.rel, f.content)...)
		}
		return nil
	})
	g.Go(func() error {
		exists := func(p string) bool {
			info, err := os.Stat(filepath.FromSlash(p))
			return err == nil && !info.IsDir()
		}
		for _, f := range files {
			slots[1] = append(slots[1], ScanRelativeImports(f.rel, f.content, f.dir, exists)...)
		}
		return nil
	})
	g.Go(func() error {
		slots[2] = checkLibFiles(reg, cfg, projectRoot)
		return nil
	})
	g.Go(func() error {
		slots[3] = checkSSRExports(reg, cfg, indexContent)
		return nil
	})
	g.Go(func() error {
		slots[4] = checkAPIRoutes(reg, cfg, projectRoot)
		return nil
	})
	g.Go(func() error {
		slots[5] = checkDuplicateExports(componentsDir, indexContent)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{}
	for _, findings := range slots {
		for _, f := range findings {
			if errorCodes[f.Code] {
				result.Errors = append(result.Errors, f)
			} else {
				result.Warnings = append(result.Warnings, f)
			}
		}
	}

	if opts.TypeCheck {
		keep := func(file string) bool {
			abs := file
			if !filepath.IsAbs(abs) {
				abs = filepath.Join(projectRoot, filepath.FromSlash(file))
			}
			return underDir(abs, componentsDir) || underDir(abs, libDir)
		}
		tcErrors, tcWarnings := RunTypeCheck(projectRoot, keep)
		result.Errors = append(result.Errors, tcErrors...)
		result.Warnings = append(result.Warnings, tcWarnings...)
	}

	result.Valid = len(result.Errors) == 0
	result.Suggestions = Suggest(append(append([]Finding(nil), result.Errors...), result.Warnings...))
	return result, nil
}

// loadTree reads every source file under the installed directories once.
// Missing directories simply contribute nothing.
func loadTree(projectRoot string, dirs ...string) ([]treeFile, error) {
	var files []treeFile

	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}
		err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !isSourceExt(p) {
				return nil
			}
			data, err := os.ReadFile(p)
			if err != nil {
				return fmt.Errorf("reading %s: %w", p, err)
			}
			files = append(files, treeFile{
				rel:     relDisplay(projectRoot, p),
				dir:     filepath.ToSlash(filepath.Dir(p)),
				content: string(data),
			})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// readIndex returns the barrel file's content, or "" when it has not been
// generated yet.
func readIndex(componentsDir string, typescript bool) string {
	name := "index.ts"
	if !typescript {
		name = "index.js"
	}
	data, err := os.ReadFile(filepath.Join(componentsDir, name))
	if err != nil {
		return ""
	}
	return string(data)
}

func isSourceExt(p string) bool {
	switch filepath.Ext(p) {
	case ".ts", ".tsx", ".js", ".jsx":
		return true
	}
	return false
}

func underDir(p, dir string) bool {
	rel, err := filepath.Rel(dir, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
