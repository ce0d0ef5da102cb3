package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"mazee-site/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFiles embed.FS

// Bundle holds flattened messages for every locale.
type Bundle struct {
	messages map[model.Locale]map[string]string
}

// DefaultBundle loads the translations compiled into the binary.
func DefaultBundle() (*Bundle, error) {
	sub, err := fs.Sub(localeFiles, "locales")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded locales: %w", err)
	}
	return LoadBundle(sub)
}

// LoadBundle reads <locale>.yaml for every supported locale from fsys.
// Only the default locale is required.
func LoadBundle(fsys fs.FS) (*Bundle, error) {
	b := &Bundle{messages: make(map[model.Locale]map[string]string, len(model.Locales))}

	for _, locale := range model.Locales {
		name := locale.String() + ".yaml"
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && locale != model.DefaultLocale {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}

		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}

		messages := make(map[string]string)
		flatten("", doc, messages)
		b.messages[locale] = messages
	}

	return b, nil
}

// flatten turns nested maps and lists into dotted keys; list items are
// addressed by index.
func flatten(prefix string, node any, out map[string]string) {
	join := func(key string) string {
		if prefix == "" {
			return key
		}
		return prefix + "." + key
	}

	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			flatten(join(key), child, out)
		}
	case []any:
		for i, child := range v {
			flatten(join(strconv.Itoa(i)), child, out)
		}
	case nil:
	default:
		out[prefix] = fmt.Sprint(v)
	}
}

// Translator returns a translator bound to locale.
func (b *Bundle) Translator(locale model.Locale) Translator {
	return Translator{bundle: b, locale: locale}
}

// Lookup returns the message for key in locale, falling back to the
// default locale.
func (b *Bundle) Lookup(locale model.Locale, key string) (string, bool) {
	if msg, ok := b.messages[locale][key]; ok {
		return msg, true
	}
	if msg, ok := b.messages[model.DefaultLocale][key]; ok {
		return msg, true
	}
	return "", false
}

// List returns the items stored under key.0, key.1, ... in order.
func (b *Bundle) List(locale model.Locale, key string) []string {
	var items []string
	for i := 0; ; i++ {
		msg, ok := b.Lookup(locale, key+"."+strconv.Itoa(i))
		if !ok {
			return items
		}
		items = append(items, msg)
	}
}

// Keys returns the sorted message keys defined for locale.
func (b *Bundle) Keys(locale model.Locale) []string {
	keys := make([]string, 0, len(b.messages[locale]))
	for k := range b.messages[locale] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Translator resolves message keys for a single locale.
type Translator struct {
	bundle *Bundle
	locale model.Locale
}

// Locale returns the translator's locale.
func (t Translator) Locale() model.Locale {
	return t.locale
}

// T returns the message for key with {name} placeholders replaced from
// name/value pairs. Unknown keys render as the key itself.
func (t Translator) T(key string, args ...any) string {
	if t.bundle == nil {
		return key
	}
	msg, ok := t.bundle.Lookup(t.locale, key)
	if !ok {
		return key
	}
	if len(args) < 2 {
		return msg
	}

	pairs := make([]string, 0, len(args))
	for i := 0; i+1 < len(args); i += 2 {
		pairs = append(pairs, "{"+fmt.Sprint(args[i])+"}", fmt.Sprint(args[i+1]))
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// List returns the list stored under key.
func (t Translator) List(key string) []string {
	if t.bundle == nil {
		return nil
	}
	return t.bundle.List(t.locale, key)
}
