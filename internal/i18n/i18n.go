// Package i18n resolves the visitor's locale and translates UI strings.
package i18n

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mazee-site/internal/model"

	"golang.org/x/text/language"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// CookieName stores the visitor's language preference.
	CookieName = "locale"
)

// Source tells where a resolved locale came from.
type Source int

const (
	SourceDefault Source = iota
	SourceQuery
	SourceCookie
	SourceHeader
)

var (
	supportedTags = []language.Tag{language.English, language.Georgian, language.Russian}
	tagLocales    = []model.Locale{model.LocaleEN, model.LocaleGE, model.LocaleRU}
	matcher       = language.NewMatcher(supportedTags)
)

var labels = map[model.Locale]string{
	model.LocaleEN: "English",
	model.LocaleGE: "ქართული",
	model.LocaleRU: "Русский",
}

// Normalize parses a locale code, accepting the ISO code "ka" for Georgian
// and region subtags such as "ru-RU".
func Normalize(value string) (model.Locale, bool) {
	if locale, ok := model.ParseLocale(value); ok {
		return locale, true
	}
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	for i, t := range supportedTags {
		if b, _ := t.Base(); b == base {
			return tagLocales[i], true
		}
	}
	return "", false
}

// Tag returns the BCP 47 tag for locale.
func Tag(locale model.Locale) language.Tag {
	for i, l := range tagLocales {
		if l == locale {
			return supportedTags[i]
		}
	}
	return language.English
}

// MatchAcceptLanguage picks the best supported locale for an
// Accept-Language header value.
func MatchAcceptLanguage(header string, fallback model.Locale) model.Locale {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	return tagLocales[index]
}

// Resolve determines the locale for the request: ?lang=, then the locale
// cookie, then Accept-Language, then fallback.
func Resolve(r *http.Request, fallback model.Locale) (model.Locale, Source) {
	if r == nil {
		return fallback, SourceDefault
	}

	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if locale, ok := Normalize(value); ok {
			return locale, SourceQuery
		}
	}

	if cookie, err := r.Cookie(CookieName); err == nil {
		if locale, ok := Normalize(cookie.Value); ok {
			return locale, SourceCookie
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		return MatchAcceptLanguage(accept, fallback), SourceHeader
	}

	return fallback, SourceDefault
}

// SetCookie persists the selected locale on the response.
func SetCookie(w http.ResponseWriter, locale model.Locale) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    locale.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

type contextKey struct{}

// WithLocale stores locale in ctx.
func WithLocale(ctx context.Context, locale model.Locale) context.Context {
	return context.WithValue(ctx, contextKey{}, locale)
}

// FromContext returns the request locale, or the default locale.
func FromContext(ctx context.Context) model.Locale {
	if locale, ok := ctx.Value(contextKey{}).(model.Locale); ok {
		return locale
	}
	return model.DefaultLocale
}

// LanguageOption is an entry of the language switcher.
type LanguageOption struct {
	Code   string
	Label  string
	Active bool
	URL    string
}

// Options returns the language switcher entries for active. current is the
// unprefixed path and query of the page; each URL points at the same page in
// the option's locale. The default locale carries ?lang= so a stored
// preference for another locale is replaced.
func Options(def, active model.Locale, current string) []LanguageOption {
	options := make([]LanguageOption, 0, len(model.Locales))
	for _, locale := range model.Locales {
		options = append(options, LanguageOption{
			Code:   locale.String(),
			Label:  labels[locale],
			Active: locale == active,
			URL:    optionURL(def, locale, current),
		})
	}
	return options
}

func optionURL(def, locale model.Locale, current string) string {
	u, err := url.Parse(SafeNext(current))
	if err != nil {
		u = &url.URL{Path: "/"}
	}
	q := u.Query()
	q.Del(LangParam)
	if locale == def {
		q.Set(LangParam, locale.String())
	}
	return (&url.URL{Path: LocalizedPath(def, locale, u.Path), RawQuery: q.Encode()}).String()
}

// Label returns the native name of locale.
func Label(locale model.Locale) string {
	return labels[locale]
}

// SafeNext restricts a redirect target to a local path.
func SafeNext(next string) string {
	next = strings.TrimSpace(next)
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return next
}

// LocalizedPath returns the public path of a page in locale. The site's
// default locale def is served unprefixed, the others under /<locale>.
func LocalizedPath(def, locale model.Locale, path string) string {
	if path == "" {
		path = "/"
	}
	if locale == def {
		return path
	}
	if path == "/" {
		return "/" + locale.String()
	}
	return "/" + locale.String() + path
}

// LocalizedURL applies LocalizedPath to the path of a local URL, keeping
// its query and fragment. Query-only and fragment-only references are
// returned unchanged.
func LocalizedURL(def, locale model.Locale, target string) string {
	path, tail := target, ""
	if i := strings.IndexAny(target, "?#"); i >= 0 {
		path, tail = target[:i], target[i:]
	}
	if path == "" {
		return target
	}
	return LocalizedPath(def, locale, path) + tail
}

// SplitPath strips a leading locale segment from path. Every supported
// locale is accepted, so /en/... stays routable when another locale is the
// default. The bool is false when path carries no locale prefix.
func SplitPath(path string) (model.Locale, string, bool) {
	trimmed := strings.TrimPrefix(path, "/")
	segment, rest, _ := strings.Cut(trimmed, "/")
	locale, ok := model.ParseLocale(segment)
	if !ok || segment != locale.String() {
		return "", path, false
	}
	return locale, "/" + rest, true
}
