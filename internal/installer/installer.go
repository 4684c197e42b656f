package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/stackui-dev/stackui/internal/registry"
	"github.com/stackui-dev/stackui/internal/transform"
)

// installComponent copies a component's files, applying transforms and
// extension normalization, then upserts the config state. In a dry run it
// records a plan item instead.
func (ins *Installer) installComponent(c *registry.ComponentEntry) {
	baseDir := ins.cfg.ComponentsDir(ins.root)

	if ins.opts.DryRun {
		item := PlanItem{
			Name:     c.Name,
			Kind:     "component",
			External: c.Dependencies,
			Libs:     c.InternalDependencies,
		}
		for _, m := range c.Files {
			item.Files = append(item.Files, ins.projectRel(filepath.Join(baseDir, ins.componentTarget(m))))
		}
		ins.result.Plan = append(ins.result.Plan, item)
		ins.result.addExternal(c.Dependencies)
		ins.progress("component", c.Name, StatusPlanned, nil)
		return
	}

	family, composite := c.IsComposite()

	written := 0
	for _, m := range c.Files {
		target := ins.componentTarget(m)
		fam := ""
		if composite {
			fam = family
		}
		if err := ins.installFile(c.Name, m, baseDir, target, fam); err != nil {
			ins.result.warnf("component %s: %v", c.Name, err)
			continue
		}
		written++
	}

	if written == 0 && len(c.Files) > 0 {
		ins.result.Failed = append(ins.result.Failed, c.Name)
		ins.progress("component", c.Name, StatusFailed, fmt.Errorf("no files written"))
		return
	}

	ins.cfg.UpsertComponent(c.Name, ins.reg.Version, ins.reg.Name)
	ins.result.Installed = append(ins.result.Installed, c.Name)
	ins.result.addExternal(c.Dependencies)
	ins.progress("component", c.Name, StatusInstalled, nil)
}

// installLib copies a lib module's files. Lib targets keep their declared
// layout and extension — only component files are normalized to the
// project's typed/untyped variant.
func (ins *Installer) installLib(mod *registry.LibModule) {
	baseDir := ins.cfg.LibDir(ins.root)
	mappings := mod.Mappings()

	if ins.opts.DryRun {
		item := PlanItem{Name: mod.Name, Kind: "lib", Libs: mod.InternalDependencies}
		for _, m := range mappings {
			item.Files = append(item.Files, ins.projectRel(filepath.Join(baseDir, filepath.FromSlash(m.Target))))
		}
		ins.result.Plan = append(ins.result.Plan, item)
		ins.progress("lib", mod.Name, StatusPlanned, nil)
		return
	}

	written := 0
	for _, m := range mappings {
		if err := ins.installFile(mod.Name, m, baseDir, m.Target, ""); err != nil {
			ins.result.warnf("lib %s: %v", mod.Name, err)
			continue
		}
		written++
	}

	if written == 0 && len(mappings) > 0 {
		ins.progress("lib", mod.Name, StatusFailed, fmt.Errorf("no files written"))
		return
	}

	ins.cfg.UpsertLib(mod.Name, ins.reg.Version, ins.reg.Name)
	ins.result.Installed = append(ins.result.Installed, mod.Name)
	ins.progress("lib", mod.Name, StatusInstalled, nil)
}

// installFile copies one declared file. A missing source is a per-file
// failure — the rest of the item still installs. Transforms run in order:
// generic alias rewrite, relative-import flattening, then the family pass
// for composite subtrees; the origin header is stamped last.
func (ins *Installer) installFile(itemName string, m registry.FileMapping, baseDir, target, family string) error {
	src := filepath.Join(ins.reg.Dir, filepath.FromSlash(m.Source))
	data, err := os.ReadFile(src)
	if os.IsNotExist(err) {
		return fmt.Errorf("source file %s missing from registry — skipping", m.Source)
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	content := string(data)
	content = ins.tr.RewriteImports(content, ins.cfg, m.Target)
	content = ins.tr.RewriteRelativeImports(content, m.Source, m.Target, ins.cfg.Aliases.Lib)
	if family != "" {
		content = ins.tr.RewriteFamilyImports(content, ins.cfg.Aliases.Components, family)
	}
	content = ins.tr.StampOrigin(content, itemName, ins.reg.Name, ins.reg.Version)

	dst := filepath.Join(baseDir, filepath.FromSlash(target))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
	}
	if err := os.WriteFile(dst, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

// componentTarget maps a component file target to the project's source
// variant.
func (ins *Installer) componentTarget(m registry.FileMapping) string {
	return transform.NormalizeExtension(filepath.FromSlash(m.Target), ins.cfg.TypeScript)
}

// projectRel renders an absolute path relative to the project root for
// display and plan records.
func (ins *Installer) projectRel(abs string) string {
	rel, err := filepath.Rel(ins.root, abs)
	if err != nil {
		return abs
	}
	return filepath.ToSlash(rel)
}
