package registry

import (
	"errors"
	"testing"
)

func lookupRegistry() *Registry {
	return &Registry{
		Name:    "@stackui/registry",
		Version: "1.0.0",
		Components: []ComponentEntry{
			{Name: "button", Title: "Button", Category: "primitives"},
			{Name: "chat-window", Title: "Chat Window", Category: "chat"},
			{Name: "navbar", Title: "Navigation Bar", Category: "layout"},
			{Name: "theme-toggle", Title: "Theme Toggle", Category: "layout"},
		},
	}
}

func TestFindComponent(t *testing.T) {
	reg := lookupRegistry()

	tests := []struct {
		query string
		want  string
	}{
		{"button", "button"},              // exact
		{"Button", "button"},              // title, case-insensitive
		{"chat window", "chat-window"},    // title match
		{"ChatWindow", "chat-window"},     // normalized fuzzy
		{"chat_window", "chat-window"},    // normalized fuzzy
		{"nav", "navbar"},                 // alias
		{"darkmode", "theme-toggle"},      // alias
		{"navigation bar", "navbar"},      // title
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, err := FindComponent(reg, tt.query)
			if err != nil {
				t.Fatalf("FindComponent(%q): %v", tt.query, err)
			}
			if c.Name != tt.want {
				t.Errorf("FindComponent(%q) = %q, want %q", tt.query, c.Name, tt.want)
			}
		})
	}
}

func TestFindComponentNotFound(t *testing.T) {
	reg := lookupRegistry()

	_, err := FindComponent(reg, "buton")
	if err == nil {
		t.Fatal("expected error")
	}

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *NotFoundError, got %T", err)
	}
	if notFound.Name != "buton" {
		t.Errorf("Name = %q", notFound.Name)
	}
	if len(notFound.Suggestions) == 0 {
		t.Fatal("expected suggestions for a near miss")
	}
	if notFound.Suggestions[0].Name != "button" {
		t.Errorf("closest suggestion = %q, want button", notFound.Suggestions[0].Name)
	}
}

func TestSuggestCutoff(t *testing.T) {
	reg := lookupRegistry()

	_, err := FindComponent(reg, "zzzzzzzzzzzzzzzzzz")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
	if len(notFound.Suggestions) != 0 {
		t.Errorf("distant names should yield no suggestions, got %v", notFound.Suggestions)
	}
}

func TestSuggestCap(t *testing.T) {
	reg := &Registry{Components: []ComponentEntry{
		{Name: "item-a"}, {Name: "item-b"}, {Name: "item-c"},
		{Name: "item-d"}, {Name: "item-e"},
	}}

	_, err := FindComponent(reg, "item-x")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
	if len(notFound.Suggestions) != maxSuggestions {
		t.Errorf("suggestions = %d, want %d", len(notFound.Suggestions), maxSuggestions)
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ChatWindow", "chatwindow"},
		{"chat-window", "chatwindow"},
		{"chat_window", "chatwindow"},
		{"Button 2", "button2"},
	}
	for _, tt := range tests {
		if got := normalizeName(tt.in); got != tt.want {
			t.Errorf("normalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
