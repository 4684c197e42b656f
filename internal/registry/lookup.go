package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// aliases maps common shorthand names to canonical component names.
var aliases = map[string]string{
	"nav":      "navbar",
	"msg":      "message",
	"msgs":     "message-list",
	"chat":     "chat-window",
	"darkmode": "theme-toggle",
}

// maxSuggestions caps the number of ranked suggestions surfaced on a failed
// lookup.
const maxSuggestions = 3

// suggestionCutoff is the largest edit distance still worth suggesting.
const suggestionCutoff = 5

// Suggestion is one ranked alternative for a name that failed to resolve.
type Suggestion struct {
	Name     string
	Category string
	Distance int
}

// NotFoundError reports a component name that matched nothing, with ranked
// suggestions for the caller to print.
type NotFoundError struct {
	Name        string
	Suggestions []Suggestion
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("component %q not found in registry", e.Name)
}

// FindComponent resolves a requested name to a component entry. Matching is
// attempted in order: exact name, title (case-insensitive), normalized
// fuzzy form, then the alias table. When everything fails it returns a
// *NotFoundError carrying ranked suggestions.
func FindComponent(reg *Registry, name string) (*ComponentEntry, error) {
	if c, ok := reg.Component(name); ok {
		return c, nil
	}

	lower := strings.ToLower(name)
	for i := range reg.Components {
		if strings.ToLower(reg.Components[i].Title) == lower {
			return &reg.Components[i], nil
		}
	}

	norm := normalizeName(name)
	for i := range reg.Components {
		if normalizeName(reg.Components[i].Name) == norm {
			return &reg.Components[i], nil
		}
	}

	if canonical, ok := aliases[lower]; ok {
		if c, ok := reg.Component(canonical); ok {
			return c, nil
		}
	}

	return nil, &NotFoundError{
		Name:        name,
		Suggestions: suggest(reg, name),
	}
}

// suggest ranks registry components by edit distance from the requested
// name, closest first. Ties break on registry declaration order.
func suggest(reg *Registry, name string) []Suggestion {
	norm := normalizeName(name)

	var ranked []Suggestion
	for _, c := range reg.Components {
		d := levenshtein.ComputeDistance(norm, normalizeName(c.Name))
		if c.Title != "" {
			if td := levenshtein.ComputeDistance(norm, normalizeName(c.Title)); td < d {
				d = td
			}
		}
		if d > suggestionCutoff {
			continue
		}
		ranked = append(ranked, Suggestion{Name: c.Name, Category: c.Category, Distance: d})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Distance < ranked[j].Distance })
	if len(ranked) > maxSuggestions {
		ranked = ranked[:maxSuggestions]
	}
	return ranked
}

// normalizeName lowercases and strips everything but letters and digits, so
// "ChatWindow", "chat_window", and "chat-window" all compare equal.
func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
