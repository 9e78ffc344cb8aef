package template

import (
	"errors"
	"strings"
)

// ErrTemplateNotFound is returned when a template id is not in the catalog.
var ErrTemplateNotFound = errors.New("template not found")

// Registry is the enumerable catalog of built-in templates.
type Registry struct {
	templates []Template
	byID      map[string]*Template
}

// NewRegistry returns the built-in catalog. Order is stable across calls.
func NewRegistry() *Registry {
	r := &Registry{templates: builtins()}
	r.byID = make(map[string]*Template, len(r.templates))
	for i := range r.templates {
		r.byID[r.templates[i].ID] = &r.templates[i]
	}
	return r
}

// List returns the catalog in stable order. The returned slice is shared;
// callers must not modify it.
func (r *Registry) List() []Template {
	return r.templates
}

// Get returns the template with the given id.
func (r *Registry) Get(id string) (*Template, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, ErrTemplateNotFound
	}
	return t, nil
}

// SeedText extracts the template's placeholder prose: every placement's text,
// in placement order, newline-separated. It reproduces only the literal text
// fragments, not layout or styling.
func (r *Registry) SeedText(id string) (string, error) {
	t, err := r.Get(id)
	if err != nil {
		return "", err
	}
	var parts []string
	for _, page := range t.Pages {
		for _, p := range page {
			parts = append(parts, p.Text)
		}
	}
	return strings.Join(parts, "\n"), nil
}
