package export

import (
	"context"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"mazee-site/internal/app"
	"mazee-site/internal/catalog"
	"mazee-site/internal/config"
	"mazee-site/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	ds *catalog.Dataset
}

func (s staticSource) Dataset(model.Locale) (*catalog.Dataset, error) {
	return s.ds, nil
}

var localRef = regexp.MustCompile(`(?:href|action)="(/[^"]*)"`)

// Image and document binaries ship with the deployment, not the export.
var deploymentAssets = []string{"/static/images/", "/static/docs/"}

// exportWith renders the embedded catalogue with def as the default locale.
func exportWith(t *testing.T, def model.Locale) (string, int) {
	t.Helper()

	logger := zerolog.Nop()
	cfg := &config.Config{Site: config.SiteConfig{BaseURL: "https://mazeegroup.net", DefaultLocale: def}}
	site, err := app.New(context.Background(), cfg, catalog.NewFSLoader(catalog.EmbeddedFS(), "embedded", logger), logger)
	require.NoError(t, err)

	dir := t.TempDir()
	written, err := New(site.Handler, site.Store, def, logger).Export(context.Background(), dir)
	require.NoError(t, err)
	return dir, written
}

func readFile(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	return string(data)
}

func TestExporter_Export(t *testing.T) {
	dir, written := exportWith(t, model.LocaleEN)

	// 3 locales x (4 pages + 8 products + 6 projects), sitemap, robots, 404, assets
	assert.GreaterOrEqual(t, written, 3*18+3+2)

	for _, file := range []string{
		"index.html",
		"all-product/index.html",
		"catalog/3/index.html",
		"ge/index.html",
		"ru/all-projects/index.html",
		"ru/project-detail/6/index.html",
		"sitemap.xml",
		"robots.txt",
		NotFoundPage,
		"static/css/site.css",
		"static/js/site.js",
	} {
		assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(file)))
	}

	home := readFile(t, filepath.Join(dir, "ge", "index.html"))
	assert.Contains(t, home, `<html lang="ka">`)
	assert.NotContains(t, home, "welcome-banner")

	assert.Contains(t, readFile(t, filepath.Join(dir, NotFoundPage)), "Page Not Found")
}

func TestExporter_LocalLinksResolve(t *testing.T) {
	tests := []struct {
		name string
		def  model.Locale
	}{
		{name: "english default", def: model.LocaleEN},
		{name: "georgian default", def: model.LocaleGE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, _ := exportWith(t, tt.def)

			pages := 0
			err := filepath.WalkDir(dir, func(name string, d fs.DirEntry, err error) error {
				if err != nil || d.IsDir() || filepath.Ext(name) != ".html" {
					return err
				}
				pages++
				body := readFile(t, name)
				rel, _ := filepath.Rel(dir, name)

				assert.NotContains(t, body, "/contact/whatsapp", rel)
				assert.NotContains(t, body, `"/lang/`, rel)

				for _, m := range localRef.FindAllStringSubmatch(body, -1) {
					target := m[1]
					if i := strings.IndexAny(target, "?#"); i >= 0 {
						target = target[:i]
					}
					if strings.HasPrefix(target, "//") || deploymentAsset(target) {
						continue
					}
					assert.True(t, exported(dir, target), "%s links to %s which was not exported", rel, m[1])
				}
				return nil
			})
			require.NoError(t, err)
			assert.Greater(t, pages, 3*18)
		})
	}
}

func TestExporter_NonEnglishDefault(t *testing.T) {
	dir, _ := exportWith(t, model.LocaleGE)

	home := readFile(t, filepath.Join(dir, "index.html"))
	english := readFile(t, filepath.Join(dir, "en", "index.html"))

	assert.Contains(t, home, `<html lang="ka">`)
	assert.Contains(t, english, `<html lang="en">`)
	assert.NotEqual(t, home, english)
	assert.Contains(t, english, `<link rel="canonical" href="https://mazeegroup.net/en">`)
	assert.Contains(t, english, `href="/en/all-product`)
	assert.Contains(t, home, `href="/all-product`)
	assert.NoFileExists(t, filepath.Join(dir, "ge", "index.html"))
	assert.FileExists(t, filepath.Join(dir, "en", "catalog", "3", "index.html"))
}

func deploymentAsset(target string) bool {
	for _, prefix := range deploymentAssets {
		if strings.HasPrefix(target, prefix) {
			return true
		}
	}
	return false
}

// exported reports whether a site path was written as a file or a page.
func exported(dir, target string) bool {
	if info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(target))); err == nil && !info.IsDir() {
		return true
	}
	_, err := os.Stat(filepath.Join(dir, pageFile(target)))
	return err == nil
}

func TestExporter_FailsOnBadStatus(t *testing.T) {
	broken := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	source := staticSource{ds: &catalog.Dataset{Locale: model.LocaleEN}}

	written, err := New(broken, source, model.LocaleEN, zerolog.Nop()).Export(context.Background(), t.TempDir())

	assert.Error(t, err)
	assert.Zero(t, written)
}

func TestPageFile(t *testing.T) {
	tests := []struct {
		public   string
		expected string
	}{
		{public: "/", expected: "index.html"},
		{public: "/ge", expected: filepath.Join("ge", "index.html")},
		{public: "/ru/catalog/3", expected: filepath.Join("ru", "catalog", "3", "index.html")},
		{public: "/all-product", expected: filepath.Join("all-product", "index.html")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, pageFile(tt.public), tt.public)
	}
}
