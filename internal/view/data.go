package view

import (
	"net/url"

	"mazee-site/internal/carousel"
	"mazee-site/internal/content"
	"mazee-site/internal/i18n"
	"mazee-site/internal/model"
	"mazee-site/internal/service"
	"mazee-site/internal/whatsapp"
)

// PageData is the root value handed to every template.
type PageData struct {
	Locale       model.Locale
	Lang         string
	Title        string
	Description  string
	Path         string
	CanonicalURL string
	Alternates   []Alternate
	Languages    []i18n.LanguageOption
	Nav          []content.NavItem
	WhatsApp     WhatsAppWidget
	FirstVisit   bool
	Year         int
	Content      any

	tr  i18n.Translator
	def model.Locale
}

// NewPageData binds translations for the page's locale. def is the site's
// default locale, served without a path prefix.
func NewPageData(tr i18n.Translator, def model.Locale) *PageData {
	return &PageData{
		Locale: tr.Locale(),
		Lang:   i18n.Tag(tr.Locale()).String(),
		tr:     tr,
		def:    def,
	}
}

// Link returns the local URL target in the page's locale.
func (p *PageData) Link(target string) string {
	return i18n.LocalizedURL(p.def, p.Locale, target)
}

// LinkQuery is Link for path with a single escaped query parameter.
func (p *PageData) LinkQuery(path, key, value string) string {
	return p.Link(path + "?" + url.Values{key: {value}}.Encode())
}

// QuoteURL is the WhatsApp deep link asking about a product.
func (p *PageData) QuoteURL(product string) string {
	return whatsapp.URL(p.WhatsApp.Number, whatsapp.ProductMessage(p.tr, product))
}

// ChatURL is the WhatsApp deep link carrying the widget's message.
func (p *PageData) ChatURL() string {
	return whatsapp.URL(p.WhatsApp.Number, p.WhatsApp.Message)
}

// T translates key for the page's locale.
func (p *PageData) T(key string, args ...any) string {
	return p.tr.T(key, args...)
}

// List returns a translated list.
func (p *PageData) List(key string) []string {
	return p.tr.List(key)
}

// Alternate is a hreflang link to the same page in another locale.
type Alternate struct {
	Lang string
	URL  string
}

// WhatsAppWidget is the state of the floating contact form. A static
// widget submits straight to wa.me with the default Number; otherwise the
// form posts to Action.
type WhatsAppWidget struct {
	Action       string
	Static       bool
	Number       string
	Phones       []whatsapp.Phone
	Selected     string
	Message      string
	QuickReplies []string
	ProductID    int
	Open         bool
}

// HomeContent feeds the home page sections.
type HomeContent struct {
	Stats        []content.Stat
	Reasons      []content.Reason
	Services     []content.Service
	Figures      []content.Figure
	Contacts     []content.ContactCard
	CompanyRows  [][]content.Company
	Projects     []model.Project
	ProjectPager carousel.Pager
	Products     []model.Product
	CatalogPager carousel.Pager
	Categories   []string
	Category     string
	Search       string
	PagerLinks   PagerLinks
}

// PagerLinks are the no-script previous/next URLs of the home carousels.
type PagerLinks struct {
	ProjectsPrev string
	ProjectsNext string
	CatalogPrev  string
	CatalogNext  string
}

// ProductsContent feeds the all-products page.
type ProductsContent struct {
	Products     []model.Product
	Categories   []string
	Applications []string
	Search       string
	Category     string
	Sort         service.SortOption
	SortOptions  []service.SortOption
	Selected     []string
	View         string
}

// ViewURL returns the unprefixed listing URL with the current filters and
// view.
func (c ProductsContent) ViewURL(view string) string {
	q := url.Values{}
	if c.Search != "" {
		q.Set("q", c.Search)
	}
	if c.Category != "" && c.Category != service.CategoryAll {
		q.Set("category", c.Category)
	}
	if c.Sort != "" && c.Sort != service.SortName {
		q.Set("sort", string(c.Sort))
	}
	for _, app := range c.Selected {
		q.Add("app", app)
	}
	q.Set("view", view)
	return "/all-product?" + q.Encode()
}

// ProjectsContent feeds the all-projects page.
type ProjectsContent struct {
	Projects   []model.Project
	Categories []string
	Category   string
}

// ProductContent feeds the product detail page.
type ProductContent struct {
	Product *model.Product
	Image   string
	Slides  carousel.Slides
	Images  []string
	Prev    string
	Next    string
}

// ProjectContent feeds the project detail page.
type ProjectContent struct {
	Project  *model.Project
	Slides   carousel.Slides
	Image    string
	Prev     string
	Next     string
	AutoPlay bool
}

// NotFoundContent feeds the not-found page.
type NotFoundContent struct {
	Title   string
	Message string
}

// WelcomeContent feeds the onboarding page.
type WelcomeContent struct {
	Steps []string
}

// Card wraps a product or project with its page for partial templates.
type Card struct {
	Page    *PageData
	Delay   string
	Product model.Product
	Project model.Project
}

// CarouselNav wraps a pager with its no-script links.
type CarouselNav struct {
	Page  *PageData
	Pager carousel.Pager
	Prev  string
	Next  string
}
