// Package render implements the view renderer over html/template.
package render

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/haguru/torii/internal/interfaces"
)

// TemplateRenderer renders named views parsed from a templates directory.
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses every .html file in templatesDir. Each file's
// base name (without extension) is its view name.
func NewTemplateRenderer(templatesDir string) (interfaces.Renderer, error) {
	pattern := filepath.Join(templatesDir, "*.html")
	templates, err := template.ParseGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates from %s: %w", templatesDir, err)
	}

	return &TemplateRenderer{templates: templates}, nil
}

// Render writes the named view to w with the given data context.
func (t *TemplateRenderer) Render(w http.ResponseWriter, view string, data map[string]interface{}) error {
	tmpl := t.templates.Lookup(view + ".html")
	if tmpl == nil {
		return fmt.Errorf("unknown view: %s", view)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render view %s: %w", view, err)
	}

	return nil
}
