// Package export renders the site into a directory of static files.
package export

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"mazee-site/internal/handler"
	"mazee-site/internal/i18n"
	"mazee-site/internal/model"
	"mazee-site/internal/repository"
	"mazee-site/internal/view"

	"github.com/rs/zerolog"
)

// NotFoundPage is the file CDNs serve for unknown paths.
const NotFoundPage = "404.html"

var staticPages = []string{"/", "/all-product", "/all-projects", "/welcome"}

// Exporter drives the site handler in-process and writes the responses.
type Exporter struct {
	handler http.Handler
	source  repository.DatasetSource
	locale  model.Locale
	logger  zerolog.Logger
}

// New creates an exporter over the site handler h. source enumerates the
// detail pages; defaultLocale is written to the unprefixed paths.
func New(h http.Handler, source repository.DatasetSource, defaultLocale model.Locale, logger zerolog.Logger) *Exporter {
	return &Exporter{
		handler: h,
		source:  source,
		locale:  defaultLocale,
		logger:  logger.With().Str("component", "export").Logger(),
	}
}

// Export writes every page of every locale below dir, plus the sitemap,
// robots.txt, a 404 page and the static assets. It returns the number of
// files written.
func (e *Exporter) Export(ctx context.Context, dir string) (int, error) {
	written := 0

	for _, locale := range model.Locales {
		paths, err := e.paths(locale)
		if err != nil {
			return written, err
		}
		for _, p := range paths {
			public := i18n.LocalizedPath(e.locale, locale, p)
			if err := e.fetch(ctx, public, http.StatusOK, filepath.Join(dir, pageFile(public))); err != nil {
				return written, err
			}
			written++
		}
		e.logger.Info().Str("locale", locale.String()).Int("pages", len(paths)).Msg("exported locale")
	}

	extras := []struct {
		path   string
		status int
		file   string
	}{
		{path: "/sitemap.xml", status: http.StatusOK, file: "sitemap.xml"},
		{path: "/robots.txt", status: http.StatusOK, file: "robots.txt"},
		{path: "/" + strings.TrimSuffix(NotFoundPage, ".html"), status: http.StatusNotFound, file: NotFoundPage},
	}
	for _, x := range extras {
		if err := e.fetch(ctx, x.path, x.status, filepath.Join(dir, x.file)); err != nil {
			return written, err
		}
		written++
	}

	n, err := copyStatic(filepath.Join(dir, "static"))
	written += n
	if err != nil {
		return written, err
	}

	e.logger.Info().Str("dir", dir).Int("files", written).Msg("export completed")
	return written, nil
}

// paths lists the unprefixed page paths of locale.
func (e *Exporter) paths(locale model.Locale) ([]string, error) {
	ds, err := e.source.Dataset(locale)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s catalog: %w", locale, err)
	}

	paths := append([]string(nil), staticPages...)
	for _, p := range ds.Products {
		paths = append(paths, "/catalog/"+strconv.Itoa(p.ID))
	}
	for _, p := range ds.Projects {
		paths = append(paths, "/project-detail/"+strconv.Itoa(p.ID))
	}
	return paths, nil
}

// fetch renders target as a returning visitor and writes the body to file.
// Forms that need the server are rendered in their static variant.
func (e *Exporter) fetch(ctx context.Context, target string, status int, file string) error {
	req, err := http.NewRequestWithContext(handler.WithStaticExport(ctx), http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", target, err)
	}
	req.AddCookie(&http.Cookie{Name: handler.FirstVisitCookie, Value: "true"})

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	if rec.Code != status {
		return fmt.Errorf("failed to export %s: status %d", target, rec.Code)
	}

	if err := writeFile(file, rec.Body.Bytes()); err != nil {
		return err
	}
	e.logger.Debug().Str("path", target).Str("file", file).Msg("exported page")
	return nil
}

// pageFile maps a public path onto the file serving it.
func pageFile(public string) string {
	trimmed := strings.Trim(public, "/")
	if trimmed == "" {
		return "index.html"
	}
	return filepath.Join(filepath.FromSlash(trimmed), "index.html")
}

func copyStatic(dir string) (int, error) {
	static := view.StaticFS()
	copied := 0
	err := fs.WalkDir(static, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(static, name)
		if err != nil {
			return err
		}
		if err := writeFile(filepath.Join(dir, filepath.FromSlash(path.Clean(name))), data); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("failed to copy static assets: %w", err)
	}
	return copied, nil
}

func writeFile(file string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(file), err)
	}
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	return nil
}
