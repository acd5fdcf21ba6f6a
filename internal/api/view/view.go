// Package view renders the console's HTML pages. Each page is parsed into
// its own template set together with the shared layout.
package view

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pdam/billing-console/internal/core/domain"
	"github.com/pdam/billing-console/internal/core/ports"
	"github.com/pdam/billing-console/pkg/format"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const layoutFile = "templates/layout.tmpl"

// Static returns the embedded CSS and JS, rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Renderer implements echo.Renderer over the per-page template sets.
type Renderer struct {
	pages map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

// New parses every page template against the layout.
func New() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("view: glob templates: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, f := range files {
		if f == layoutFile {
			continue
		}
		t, err := template.New("layout").Funcs(funcs).ParseFS(templateFS, layoutFile, f)
		if err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", f, err)
		}
		pages[strings.TrimSuffix(path.Base(f), ".tmpl")] = t
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("view: no page templates found")
	}
	return &Renderer{pages: pages}, nil
}

// MustNew is New that panics on error.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Render executes the layout of page name.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// Has reports whether a page named name exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

var funcs = template.FuncMap{
	"currency": format.Currency,
	"number":   format.Number,
	"phone":    format.Phone,
	"date":     format.Date,
	"initial":  format.Initial,
	"inc":      func(i int) int { return i + 1 },
	"json": func(v any) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	},
	"customerForm": CustomerForm,
	"serviceForm":  ServiceForm,
}

// CustomerForm is the edit dialog's initial values for c.
func CustomerForm(c domain.Customer) ports.CustomerUpdate {
	return ports.CustomerUpdate{
		Name:           c.Name,
		CustomerNumber: c.CustomerNumber,
		Phone:          c.Phone,
		Address:        c.Address,
		ServiceID:      c.ServiceID,
	}
}

// ServiceForm is the edit dialog's initial values for s.
func ServiceForm(s domain.Service) ports.ServiceInput {
	return ports.ServiceInput{
		Name:     s.Name,
		MinUsage: s.MinUsage,
		MaxUsage: s.MaxUsage,
		Price:    s.Price,
	}
}
