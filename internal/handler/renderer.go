package handler

import (
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
)

// Renderer manages template parsing and rendering.
//
// Templates are organized as:
//   - layouts/app.html - the single page layout
//   - components/*.html - reusable fragments (pagination, cost tables, tabs)
//   - pages/*.html - one template per page, rendered inside the app layout
type Renderer struct {
	templates map[string]*template.Template
	funcs     template.FuncMap
	logger    *slog.Logger
	isDev     bool
	mu        sync.RWMutex

	// For dev mode hot-reload
	templatesDir string
}

// RendererConfig holds configuration for the renderer.
type RendererConfig struct {
	TemplatesDir string
	Funcs        template.FuncMap
	Logger       *slog.Logger
	IsDev        bool
}

// NewRenderer creates a new template renderer.
func NewRenderer(cfg RendererConfig) (*Renderer, error) {
	r := &Renderer{
		templates:    make(map[string]*template.Template),
		funcs:        cfg.Funcs,
		logger:       cfg.Logger,
		isDev:        cfg.IsDev,
		templatesDir: cfg.TemplatesDir,
	}

	if err := r.loadTemplates(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Renderer) loadTemplates() error {
	componentFiles, err := filepath.Glob(filepath.Join(r.templatesDir, "components", "*.html"))
	if err != nil {
		return fmt.Errorf("failed to glob components: %w", err)
	}

	layoutPath := filepath.Join(r.templatesDir, "layouts", "app.html")
	base, err := template.New("app").Funcs(r.funcs).ParseFiles(layoutPath)
	if err != nil {
		return fmt.Errorf("failed to parse app layout: %w", err)
	}
	if len(componentFiles) > 0 {
		base, err = base.ParseFiles(componentFiles...)
		if err != nil {
			return fmt.Errorf("failed to parse components: %w", err)
		}
	}

	pages, err := filepath.Glob(filepath.Join(r.templatesDir, "pages", "*.html"))
	if err != nil {
		return fmt.Errorf("failed to glob pages: %w", err)
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		pageTmpl, err := base.Clone()
		if err != nil {
			return fmt.Errorf("failed to clone layout for %s: %w", page, err)
		}
		pageTmpl, err = pageTmpl.ParseFiles(page)
		if err != nil {
			return fmt.Errorf("failed to parse page %s: %w", page, err)
		}

		name := strings.TrimSuffix(filepath.Base(page), filepath.Ext(page))
		templates[name] = pageTmpl
	}

	r.mu.Lock()
	r.templates = templates
	r.mu.Unlock()
	return nil
}

// Reload re-parses all templates from disk.
func (r *Renderer) Reload() error {
	return r.loadTemplates()
}

// Render writes the named page template to w.
func (r *Renderer) Render(w io.Writer, name string, data interface{}) error {
	if r.isDev {
		if err := r.loadTemplates(); err != nil {
			return fmt.Errorf("template reload failed: %w", err)
		}
	}

	r.mu.RLock()
	tmpl, ok := r.templates[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	return tmpl.ExecuteTemplate(w, "app", data)
}

// RenderHTTP renders a page to an HTTP response, reporting a 500 if the
// template fails.
func (r *Renderer) RenderHTTP(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := r.Render(w, name, data); err != nil {
		r.logger.Error("template render failed", "template", name, "error", err)
		http.Error(w, "Sorry, there is a problem with the service.", http.StatusInternalServerError)
	}
}

// ListTemplates returns the names of all loaded page templates.
func (r *Renderer) ListTemplates() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	return names
}
