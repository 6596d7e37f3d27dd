package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"housing-empire-ai/internal/dto"
	"housing-empire-ai/internal/entity"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Renderer holds one parsed template set per page, each built from the
// shared layout plus that page's content block.
type Renderer struct {
	pages map[entity.Page]*template.Template
}

var funcs = template.FuncMap{
	"num": formatNumber,
}

func NewRenderer() (*Renderer, error) {
	base, err := template.New("layout.tmpl").Funcs(funcs).ParseFS(templatesFS, "templates/layout.tmpl")
	if err != nil {
		return nil, err
	}

	pages := make(map[entity.Page]*template.Template, len(entity.AllPages))
	for _, page := range entity.AllPages {
		tmpl, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := tmpl.ParseFS(templatesFS, "templates/"+page.Slug()+".tmpl"); err != nil {
			return nil, fmt.Errorf("parse %s template: %w", page.Slug(), err)
		}
		pages[page] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

// Render executes view's page into w. Output is buffered so a template
// failure never leaves a half-written page.
func (r *Renderer) Render(w io.Writer, view *dto.PageView) error {
	tmpl, ok := r.pages[view.Page]
	if !ok {
		return fmt.Errorf("no template for page %d", int(view.Page))
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", view); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

func formatNumber(v interface{}) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(n, 10)
	case int:
		return strconv.Itoa(n)
	default:
		return fmt.Sprint(v)
	}
}
