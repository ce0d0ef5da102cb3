package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"mazee-site/internal/carousel"
	"mazee-site/internal/catalog"
	"mazee-site/internal/content"
	"mazee-site/internal/i18n"
	"mazee-site/internal/model"
	"mazee-site/internal/service"
	"mazee-site/internal/view"
	"mazee-site/internal/whatsapp"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const (
	// FirstVisitCookie is set once the visitor has seen the welcome page.
	FirstVisitCookie = "maze_group_first_visit"

	// ContactPath is where the WhatsApp widget posts.
	ContactPath = "/contact/whatsapp"

	siteName = "Maze Group"
)

type staticExportKey struct{}

// WithStaticExport marks ctx as rendering pages for a static host. Such
// pages avoid server-only endpoints.
func WithStaticExport(ctx context.Context) context.Context {
	return context.WithValue(ctx, staticExportKey{}, true)
}

func isStaticExport(ctx context.Context) bool {
	static, _ := ctx.Value(staticExportKey{}).(bool)
	return static
}

var sortOptions = []service.SortOption{
	service.SortName,
	service.SortCategory,
	service.SortNewest,
	service.SortOldest,
}

// PageHandler renders the HTML pages of the site.
type PageHandler struct {
	products service.ProductService
	projects service.ProjectService
	renderer *view.Renderer
	bundle   *i18n.Bundle
	book     *whatsapp.Book
	baseURL  string
	locale   model.Locale
	logger   zerolog.Logger
}

// NewPageHandler creates a new page handler. baseURL is the public origin
// used for canonical and alternate links; defaultLocale is served without a
// path prefix.
func NewPageHandler(
	products service.ProductService,
	projects service.ProjectService,
	renderer *view.Renderer,
	bundle *i18n.Bundle,
	book *whatsapp.Book,
	baseURL string,
	defaultLocale model.Locale,
	logger zerolog.Logger,
) *PageHandler {
	return &PageHandler{
		products: products,
		projects: projects,
		renderer: renderer,
		bundle:   bundle,
		book:     book,
		baseURL:  baseURL,
		locale:   defaultLocale,
		logger:   logger.With().Str("handler", "page").Logger(),
	}
}

// Home handles GET / requests.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	locale, tr := h.translator(r)
	q := r.URL.Query()

	category := q.Get("category")
	if category == "" {
		category = service.CategoryAll
	}
	search := q.Get("q")

	projects, err := h.projects.Featured(ctx, locale, service.HomeFeaturedProjects)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	products, err := h.products.Catalog(ctx, locale, category, search)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	categories, err := h.products.Categories(ctx, locale)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	perPage := carousel.ItemsPerPage(carousel.DefaultViewport)
	projectPager := carousel.NewPager(len(projects), perPage, true).At(queryInt(q, "projects"))
	catalogPager := carousel.NewPager(len(products), perPage, true).At(queryInt(q, "catalog"))

	page := h.newPage(r, tr, tr.T("meta.title"))
	page.Content = view.HomeContent{
		Stats:        content.Stats(tr),
		Reasons:      content.WhyUs(tr),
		Services:     content.Services(tr),
		Figures:      content.AboutFigures(tr),
		Contacts:     content.ContactCards(tr),
		CompanyRows:  content.CompanyRows(content.Companies),
		Projects:     projects,
		ProjectPager: projectPager,
		Products:     products,
		CatalogPager: catalogPager,
		Categories:   categories,
		Category:     category,
		Search:       search,
		PagerLinks: view.PagerLinks{
			ProjectsPrev: h.pagerURL(r, locale, "projects", projectPager.Prev().Page),
			ProjectsNext: h.pagerURL(r, locale, "projects", projectPager.Next().Page),
			CatalogPrev:  h.pagerURL(r, locale, "catalog", catalogPager.Prev().Page),
			CatalogNext:  h.pagerURL(r, locale, "catalog", catalogPager.Next().Page),
		},
	}

	h.render(w, r, http.StatusOK, view.PageHome, page)
}

// Products handles GET /all-product requests.
func (h *PageHandler) Products(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	locale, tr := h.translator(r)
	q := r.URL.Query()

	query := service.ProductQuery{
		Search:       q.Get("q"),
		Category:     q.Get("category"),
		Applications: q["app"],
		Sort:         service.ParseSort(q.Get("sort")),
	}
	if query.Category == "" {
		query.Category = service.CategoryAll
	}

	products, err := h.products.List(ctx, locale, query)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	categories, err := h.products.Categories(ctx, locale)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	applications, err := h.products.Applications(ctx, locale)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	layout := q.Get("view")
	if layout != "list" {
		layout = "grid"
	}

	page := h.newPage(r, tr, tr.T("allProducts.title")+" | "+siteName)
	page.Content = view.ProductsContent{
		Products:     products,
		Categories:   categories,
		Applications: applications,
		Search:       query.Search,
		Category:     query.Category,
		Sort:         query.Sort,
		SortOptions:  sortOptions,
		Selected:     query.Applications,
		View:         layout,
	}

	h.render(w, r, http.StatusOK, view.PageProducts, page)
}

// Projects handles GET /all-projects requests.
func (h *PageHandler) Projects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	locale, tr := h.translator(r)

	category := r.URL.Query().Get("category")
	if category == "" {
		category = service.CategoryAll
	}

	projects, err := h.projects.List(ctx, locale, category)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	categories, err := h.projects.Categories(ctx, locale)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	page := h.newPage(r, tr, tr.T("allProjects.title")+" | "+siteName)
	page.Content = view.ProjectsContent{
		Projects:   projects,
		Categories: categories,
		Category:   category,
	}

	h.render(w, r, http.StatusOK, view.PageProjects, page)
}

// Product handles GET /catalog/{id} requests. ?img= selects the gallery
// slide.
func (h *PageHandler) Product(w http.ResponseWriter, r *http.Request) {
	locale, tr := h.translator(r)

	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, r, tr, "notFound.productTitle", "notFound.productMessage")
		return
	}

	product, err := h.products.GetByID(r.Context(), locale, id)
	if errors.Is(err, model.ErrProductNotFound) {
		h.notFound(w, r, tr, "notFound.productTitle", "notFound.productMessage")
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	images := product.Images
	if len(images) == 0 {
		path, _ := catalog.ProductImage(product.Image)
		images = []string{path}
	}
	slides := carousel.NewSlides(len(images), queryInt(r.URL.Query(), "img"))

	page := h.newPage(r, tr, product.Name+" | "+siteName)
	page.Description = product.Description
	page.WhatsApp.Message = whatsapp.ProductMessage(tr, product.Name)
	page.WhatsApp.ProductID = product.ID
	page.Content = view.ProductContent{
		Product: product,
		Image:   images[slides.Index],
		Slides:  slides,
		Images:  images,
		Prev:    slideURL(slides.Prev()),
		Next:    slideURL(slides.Next()),
	}

	h.render(w, r, http.StatusOK, view.PageProduct, page)
}

// Project handles GET /project-detail/{id} requests. ?img= selects the
// gallery slide; the slideshow starts paused unless ?autoplay=on.
func (h *PageHandler) Project(w http.ResponseWriter, r *http.Request) {
	locale, tr := h.translator(r)

	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, r, tr, "notFound.projectTitle", "notFound.projectMessage")
		return
	}

	project, err := h.projects.GetByID(r.Context(), locale, id)
	if errors.Is(err, model.ErrProjectNotFound) {
		h.notFound(w, r, tr, "notFound.projectTitle", "notFound.projectMessage")
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	images := project.Images
	if len(images) == 0 {
		images = []string{project.Image}
	}
	q := r.URL.Query()
	slides := carousel.NewSlides(len(images), queryInt(q, "img"))

	page := h.newPage(r, tr, project.Name+" | "+siteName)
	page.Description = project.Description
	page.Content = view.ProjectContent{
		Project:  project,
		Slides:   slides,
		Image:    images[slides.Index],
		Prev:     slideURL(slides.Prev()),
		Next:     slideURL(slides.Next()),
		AutoPlay: slides.AutoPlay(true, q.Get("autoplay") == "on"),
	}

	h.render(w, r, http.StatusOK, view.PageProject, page)
}

// Welcome handles GET /welcome requests and marks the visitor as returning.
func (h *PageHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	_, tr := h.translator(r)

	http.SetCookie(w, &http.Cookie{
		Name:     FirstVisitCookie,
		Value:    "true",
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})

	page := h.newPage(r, tr, tr.T("welcome.title")+" | "+siteName)
	page.FirstVisit = false
	page.Content = view.WelcomeContent{Steps: tr.List("welcome.steps")}

	h.render(w, r, http.StatusOK, view.PageWelcome, page)
}

// NotFound renders the generic not-found page.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	_, tr := h.translator(r)
	h.notFound(w, r, tr, "notFound.title", "notFound.message")
}

// SwitchLocale handles GET /lang/{locale} requests: it stores the locale
// cookie and redirects to the local path in ?next=.
func (h *PageHandler) SwitchLocale(w http.ResponseWriter, r *http.Request) {
	next := i18n.SafeNext(r.URL.Query().Get("next"))

	if locale, ok := i18n.Normalize(chi.URLParam(r, "locale")); ok {
		i18n.SetCookie(w, locale)
	} else {
		h.logger.Debug().Str("locale", chi.URLParam(r, "locale")).Msg("ignoring unsupported locale switch")
	}

	http.Redirect(w, r, next, http.StatusSeeOther)
}

func (h *PageHandler) translator(r *http.Request) (model.Locale, i18n.Translator) {
	locale := i18n.FromContext(r.Context())
	return locale, h.bundle.Translator(locale)
}

// newPage fills the layout fields shared by every page.
func (h *PageHandler) newPage(r *http.Request, tr i18n.Translator, title string) *view.PageData {
	locale := tr.Locale()
	path := r.URL.Path

	page := view.NewPageData(tr, h.locale)
	page.Title = title
	page.Description = tr.T("meta.description")
	page.Path = path
	page.CanonicalURL = h.baseURL + i18n.LocalizedPath(h.locale, locale, path)
	for _, l := range model.Locales {
		page.Alternates = append(page.Alternates, view.Alternate{
			Lang: i18n.Tag(l).String(),
			URL:  h.baseURL + i18n.LocalizedPath(h.locale, l, path),
		})
	}
	page.Languages = i18n.Options(h.locale, locale, currentURL(r))
	page.Nav = content.Navigation(tr, path == "/")
	page.WhatsApp = view.WhatsAppWidget{
		Action:       ContactPath,
		Static:       isStaticExport(r.Context()),
		Number:       h.book.Default().Value,
		Phones:       h.book.Phones(),
		Selected:     h.book.Default().Display,
		Message:      whatsapp.DefaultMessage(tr),
		QuickReplies: whatsapp.QuickReplies(tr),
		Open:         r.URL.Query().Get("chat") == "open",
	}
	page.FirstVisit = !returningVisitor(r)
	page.Year = time.Now().Year()
	return page
}

func (h *PageHandler) notFound(w http.ResponseWriter, r *http.Request, tr i18n.Translator, titleKey, messageKey string) {
	page := h.newPage(r, tr, tr.T(titleKey)+" | "+siteName)
	page.Content = view.NotFoundContent{
		Title:   tr.T(titleKey),
		Message: tr.T(messageKey),
	}
	h.render(w, r, http.StatusNotFound, view.PageNotFound, page)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, page *view.PageData) {
	if err := h.renderer.Render(w, status, name, page); err != nil {
		h.serverError(w, r, err)
	}
}

func (h *PageHandler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	h.logger.Error().Err(err).Str("path", r.URL.Path).Int("status", status).Msg("failed to render page")
	http.Error(w, http.StatusText(status), status)
}

func returningVisitor(r *http.Request) bool {
	_, err := r.Cookie(FirstVisitCookie)
	return err == nil
}

// currentURL is the request path and query without the lang parameter.
func currentURL(r *http.Request) string {
	q := r.URL.Query()
	q.Del(i18n.LangParam)
	if len(q) == 0 {
		return r.URL.Path
	}
	return r.URL.Path + "?" + q.Encode()
}

// pagerURL links to the current page with one carousel moved to page.
func (h *PageHandler) pagerURL(r *http.Request, locale model.Locale, key string, page int) string {
	q := r.URL.Query()
	q.Del(i18n.LangParam)
	q.Set(key, strconv.Itoa(page))
	path := i18n.LocalizedPath(h.locale, locale, r.URL.Path)
	return (&url.URL{Path: path, RawQuery: q.Encode(), Fragment: key}).String()
}

func slideURL(s carousel.Slides) string {
	return "?img=" + strconv.Itoa(s.Index)
}

func queryInt(q url.Values, key string) int {
	n, err := strconv.Atoi(q.Get(key))
	if err != nil {
		return 0
	}
	return n
}
