package model

import "strings"

// Locale selects the data set and translation strings used for a request.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleGE Locale = "ge"
	LocaleRU Locale = "ru"
)

// DefaultLocale is served when nothing else matches, and is the fallback
// for locales missing from the catalogue.
const DefaultLocale = LocaleEN

// Locales lists every supported locale in display order.
var Locales = []Locale{LocaleEN, LocaleGE, LocaleRU}

// ParseLocale returns the locale for an exact code (case-insensitive).
func ParseLocale(value string) (Locale, bool) {
	l := Locale(strings.ToLower(strings.TrimSpace(value)))
	for _, supported := range Locales {
		if l == supported {
			return l, true
		}
	}
	return "", false
}

func (l Locale) String() string {
	return string(l)
}
