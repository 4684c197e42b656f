package registry

import "path"

// FileMapping maps a source file under the registry tree to a target path
// relative to the consumer project's component (or lib) directory.
type FileMapping struct {
	Source string `yaml:"source" json:"source"`
	Target string `yaml:"target" json:"target"`
}

// ComponentEntry describes one installable UI component.
type ComponentEntry struct {
	Name                 string        `yaml:"name" json:"name"`
	Title                string        `yaml:"title,omitempty" json:"title,omitempty"`
	Description          string        `yaml:"description,omitempty" json:"description,omitempty"`
	Category             string        `yaml:"category,omitempty" json:"category,omitempty"`
	Files                []FileMapping `yaml:"files" json:"files"`
	Dependencies         []string      `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
	InternalDependencies []string      `yaml:"internalDependencies,omitempty" json:"internalDependencies,omitempty"`
	RegistryDependencies []string      `yaml:"registryDependencies,omitempty" json:"registryDependencies,omitempty"`
	SSRUnsafe            bool          `yaml:"ssrUnsafe,omitempty" json:"ssrUnsafe,omitempty"`
}

// LibModule describes a shared non-component source unit (types, services,
// hooks, utilities). It declares either a single path/target pair or a list
// of file mappings.
type LibModule struct {
	Name                 string        `yaml:"name,omitempty" json:"name,omitempty"`
	Description          string        `yaml:"description,omitempty" json:"description,omitempty"`
	Path                 string        `yaml:"path,omitempty" json:"path,omitempty"`
	Target               string        `yaml:"target,omitempty" json:"target,omitempty"`
	Files                []FileMapping `yaml:"files,omitempty" json:"files,omitempty"`
	InternalDependencies []string      `yaml:"internalDependencies,omitempty" json:"internalDependencies,omitempty"`
}

// Category groups components for display and filtered installation.
type Category struct {
	Name        string `yaml:"name" json:"name"`
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Registry is the full catalog document. Dir is the registry root on disk,
// set by Load; file mapping sources are resolved relative to it.
type Registry struct {
	Name       string               `yaml:"name" json:"name"`
	Version    string               `yaml:"version" json:"version"`
	Lib        map[string]LibModule `yaml:"lib,omitempty" json:"lib,omitempty"`
	Components []ComponentEntry     `yaml:"components" json:"components"`
	Categories []Category           `yaml:"categories,omitempty" json:"categories,omitempty"`

	Dir string `yaml:"-" json:"-"`
}

// Mappings normalizes the two declaration forms of a lib module into a
// single list of file mappings.
func (m *LibModule) Mappings() []FileMapping {
	if len(m.Files) > 0 {
		return m.Files
	}
	if m.Path != "" {
		target := m.Target
		if target == "" {
			target = path.Base(m.Path)
		}
		return []FileMapping{{Source: m.Path, Target: target}}
	}
	return nil
}

// Component returns the component with the given exact name.
func (r *Registry) Component(name string) (*ComponentEntry, bool) {
	for i := range r.Components {
		if r.Components[i].Name == name {
			return &r.Components[i], true
		}
	}
	return nil, false
}

// LibModule returns the named lib module. The module's Name field is filled
// from the map key when the document omits it.
func (r *Registry) LibModule(name string) (*LibModule, bool) {
	m, ok := r.Lib[name]
	if !ok {
		return nil, false
	}
	if m.Name == "" {
		m.Name = name
	}
	return &m, true
}

// ComponentsInCategory returns components in registry declaration order
// whose category matches.
func (r *Registry) ComponentsInCategory(category string) []ComponentEntry {
	var out []ComponentEntry
	for _, c := range r.Components {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

// HasCategory reports whether the registry declares the named category.
func (r *Registry) HasCategory(name string) bool {
	for _, c := range r.Categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// IsComposite reports whether a component's files install into a dedicated
// subfolder (a multi-file composite), and returns that subfolder name.
func (c *ComponentEntry) IsComposite() (string, bool) {
	if len(c.Files) < 2 {
		return "", false
	}
	dir := ""
	for _, f := range c.Files {
		d := path.Dir(f.Target)
		if d == "." || d == "/" {
			return "", false
		}
		if dir == "" {
			dir = d
		} else if d != dir {
			return "", false
		}
	}
	return dir, true
}
