package installer

import (
	"github.com/stackui-dev/stackui/internal/project"
	"github.com/stackui-dev/stackui/internal/registry"
)

// Installer resolves and installs a batch of components into one project.
// It mutates the project config in memory only; the caller persists the
// config once the batch completes.
type Installer struct {
	reg  *registry.Registry
	cfg  *project.Config
	root string
	opts Options
	tr   Transformer

	session *Session
	result  *Result
}

// New builds an installer for one batch. A nil transformer selects the
// default text transformer.
func New(reg *registry.Registry, cfg *project.Config, projectRoot string, opts Options, tr Transformer) *Installer {
	if tr == nil {
		tr = DefaultTransformer()
	}
	return &Installer{
		reg:  reg,
		cfg:  cfg,
		root: projectRoot,
		opts: opts,
		tr:   tr,
	}
}

// Add resolves and installs the requested component names, prerequisites
// first. An unresolvable requested name is fatal to the whole invocation
// and surfaces as a *registry.NotFoundError; everything recoverable lands
// in the result's warnings. The session lives exactly as long as this call.
// extraLibs are lib modules requested directly (the --with-api path); they
// install before the components.
func (ins *Installer) Add(names []string, extraLibs []string) (*Result, error) {
	ins.session = NewSession()
	ins.result = &Result{}
	defer func() { ins.session = nil }()

	for _, libName := range extraLibs {
		ins.resolveLib(libName)
	}

	for _, name := range names {
		entry, err := registry.FindComponent(ins.reg, name)
		if err != nil {
			return nil, err
		}
		if err := ins.resolveComponent(entry); err != nil {
			return nil, err
		}
	}

	return ins.result, nil
}

// resolveComponent is the depth-first walk for one component: cycle check,
// overwrite policy, lib prerequisites, component prerequisites, then the
// component itself.
func (ins *Installer) resolveComponent(c *registry.ComponentEntry) error {
	if ins.session.Visiting(componentKey(c.Name)) {
		// Already being satisfied further up the stack.
		return nil
	}

	if ins.cfg.HasComponent(c.Name) && !ins.opts.Overwrite {
		proceed, err := ins.overwriteDecision(c.Name)
		if err != nil {
			return err
		}
		if !proceed {
			ins.skip("component", c.Name)
			return nil
		}
	}

	ins.session.Mark(componentKey(c.Name))

	// Lib modules land first: component source assumes they exist.
	for _, libName := range c.InternalDependencies {
		ins.resolveLib(libName)
	}

	for _, depName := range c.RegistryDependencies {
		dep, ok := ins.reg.Component(depName)
		if !ok {
			// Load-time structure checks make this unreachable for a
			// well-formed registry; tolerate it anyway.
			ins.result.warnf("component %q requires unknown component %q — skipping dependency", c.Name, depName)
			continue
		}
		if err := ins.resolveComponent(dep); err != nil {
			return err
		}
	}

	ins.installComponent(c)
	return nil
}

// resolveLib mirrors the component walk for lib modules, with the same
// visiting discipline. A lib module missing from the registry is a per-item
// warning, never fatal: the dependent component still installs best-effort.
func (ins *Installer) resolveLib(name string) {
	if ins.session.Visiting(libKey(name)) {
		return
	}

	mod, ok := ins.reg.LibModule(name)
	if !ok {
		ins.result.warnf("lib module %q not found in registry — dependent components may not compile", name)
		return
	}

	// Lib modules install at most once per project; only a forced
	// overwrite reinstalls them. No prompting on this path.
	if ins.cfg.HasLib(name) && !ins.opts.Overwrite {
		return
	}

	ins.session.Mark(libKey(name))

	for _, depName := range mod.InternalDependencies {
		ins.resolveLib(depName)
	}

	ins.installLib(mod)
}

// overwriteDecision applies the three-way overwrite policy for an already
// installed component: batch mode skips silently, interactive mode asks the
// confirm collaborator, and a declined answer is a skip, not a failure.
// (Overwrite=true never reaches here.)
func (ins *Installer) overwriteDecision(name string) (bool, error) {
	if ins.opts.NonInteractive || ins.opts.Confirm == nil {
		return false, nil
	}
	return ins.opts.Confirm(name)
}

func (ins *Installer) skip(kind, name string) {
	ins.result.Skipped = append(ins.result.Skipped, name)
	ins.progress(kind, name, StatusSkipped, nil)
}

func (ins *Installer) progress(kind, name string, status Status, err error) {
	if ins.opts.Progress != nil {
		ins.opts.Progress(kind, name, status, err)
	}
}
