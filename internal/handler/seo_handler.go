package handler

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mazee-site/internal/model"
	"mazee-site/internal/service"

	"github.com/rs/zerolog"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// SEOHandler serves the sitemap and robots.txt.
type SEOHandler struct {
	products     service.ProductService
	projects     service.ProjectService
	baseURL      string
	lastModified func() time.Time
	logger       zerolog.Logger
}

// NewSEOHandler creates a new SEO handler. lastModified reports when the
// catalogue was last loaded.
func NewSEOHandler(
	products service.ProductService,
	projects service.ProjectService,
	baseURL string,
	lastModified func() time.Time,
	logger zerolog.Logger,
) *SEOHandler {
	return &SEOHandler{
		products:     products,
		projects:     projects,
		baseURL:      baseURL,
		lastModified: lastModified,
		logger:       logger.With().Str("handler", "seo").Logger(),
	}
}

// Sitemap handles GET /sitemap.xml requests.
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.products.List(ctx, model.DefaultLocale, service.ProductQuery{Sort: service.SortOldest})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	projects, err := h.projects.List(ctx, model.DefaultLocale, service.CategoryAll)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	lastMod := ""
	if t := h.lastModified(); !t.IsZero() {
		lastMod = t.UTC().Format(time.DateOnly)
	}
	entry := func(path, freq, priority string) sitemapURL {
		return sitemapURL{Loc: h.baseURL + path, LastMod: lastMod, ChangeFreq: freq, Priority: priority}
	}

	set := urlSet{Xmlns: sitemapNamespace}
	set.URLs = append(set.URLs,
		entry("/", "monthly", "1.0"),
		entry("/all-product", "weekly", "0.9"),
		entry("/all-projects", "weekly", "0.9"),
		entry("/welcome", "monthly", "0.8"),
	)
	for _, p := range products {
		set.URLs = append(set.URLs, entry(fmt.Sprintf("/catalog/%d", p.ID), "monthly", "0.7"))
	}
	for _, p := range projects {
		set.URLs = append(set.URLs, entry(fmt.Sprintf("/project-detail/%d", p.ID), "monthly", "0.7"))
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(out)
}

// Robots handles GET /robots.txt requests.
func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /admin/\n")
	b.WriteString("Disallow: /contact/\n")
	b.WriteString("\n")
	b.WriteString("Sitemap: " + h.baseURL + "/sitemap.xml\n")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(b.String()))
}

func (h *SEOHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("failed to build sitemap")
	http.Error(w, http.StatusText(status), status)
}
