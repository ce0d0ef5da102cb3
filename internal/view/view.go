// Package view renders the server-side HTML pages.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	"mazee-site/internal/carousel"
	"mazee-site/internal/catalog"
	"mazee-site/internal/content"
	"mazee-site/internal/model"

	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// Page names.
const (
	PageHome     = "home"
	PageProducts = "products"
	PageProjects = "projects"
	PageProduct  = "product"
	PageProject  = "project"
	PageWelcome  = "welcome"
	PageNotFound = "notfound"
)

var pages = []string{PageHome, PageProducts, PageProjects, PageProduct, PageProject, PageWelcome, PageNotFound}

// Stagger steps for card entrance animations.
const (
	CatalogStagger     = 150
	ProductGridStagger = 50
	ProjectGridStagger = 100
	ProjectGridDelay   = 400
)

// Renderer executes page templates.
type Renderer struct {
	templates map[string]*template.Template
	logger    zerolog.Logger
}

// NewRenderer parses every page against the shared layout.
func NewRenderer(logger zerolog.Logger) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template, len(pages)),
		logger:    logger.With().Str("component", "view").Logger(),
	}

	for _, page := range pages {
		tmpl, err := template.New("layout.html").
			Funcs(r.funcs()).
			ParseFS(templateFiles, "templates/layout.html", "templates/partials.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", page, err)
		}
		r.templates[page] = tmpl
	}

	return r, nil
}

// Render writes page with status. Output is buffered so a failing
// template produces an error instead of a truncated page.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data *PageData) error {
	tmpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// StaticFS returns the embedded assets rooted at the static directory.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Static serves the embedded assets; mount it under /static/.
func Static() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.FS(StaticFS())))
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"productImage": r.productImage,
		"stagger":      Stagger,
		"add":          func(a, b int) int { return a + b },
		"formatStat":   content.FormatStat,
		"contains": func(values []string, v string) bool {
			for _, s := range values {
				if s == v {
					return true
				}
			}
			return false
		},
		"join":           strings.Join,
		"itoa":           strconv.Itoa,
		"autoPlayMillis": func() int64 { return carousel.AutoPlayInterval.Milliseconds() },
		"productItem": func(page *PageData, p model.Product, index, step, offset int) Card {
			return Card{Page: page, Delay: Stagger(index, step, offset), Product: p}
		},
		"projectItem": func(page *PageData, p model.Project, index, step, offset int) Card {
			return Card{Page: page, Delay: Stagger(index, step, offset), Project: p}
		},
		"carouselNav": func(page *PageData, pager carousel.Pager, prev, next string) CarouselNav {
			return CarouselNav{Page: page, Pager: pager, Prev: prev, Next: next}
		},
	}
}

func (r *Renderer) productImage(key string) string {
	path, ok := catalog.ProductImage(key)
	if !ok {
		r.logger.Warn().Str("image", key).Msg("unknown product image, using default")
	}
	return path
}

// Stagger returns the CSS animation delay for the card at index.
func Stagger(index, step, offset int) string {
	return strconv.Itoa(index*step+offset) + "ms"
}
