package i18n

import (
	"testing"
	"testing/fstest"

	"mazee-site/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBundle(t *testing.T) {
	bundle, err := DefaultBundle()
	require.NoError(t, err)

	en := bundle.Translator(model.LocaleEN)
	assert.Equal(t, "Home", en.T("navigation.home"))
	assert.Equal(t, "Product Not Found", en.T("notFound.productTitle"))

	ru := bundle.Translator(model.LocaleRU)
	assert.Equal(t, "Главная", ru.T("navigation.home"))

	ge := bundle.Translator(model.LocaleGE)
	assert.Equal(t, "მთავარი", ge.T("navigation.home"))
}

func TestDefaultBundle_LocalesShareKeys(t *testing.T) {
	bundle, err := DefaultBundle()
	require.NoError(t, err)

	enKeys := bundle.Keys(model.LocaleEN)
	require.NotEmpty(t, enKeys)

	for _, locale := range []model.Locale{model.LocaleRU, model.LocaleGE} {
		for _, key := range bundle.Keys(locale) {
			assert.Contains(t, enKeys, key, "locale %s defines a key missing from en", locale)
		}
	}
}

func TestTranslator_Fallback(t *testing.T) {
	bundle, err := LoadBundle(fstest.MapFS{
		"en.yaml": {Data: []byte("greeting: Hello\nonly:\n  en: English only\n")},
		"ru.yaml": {Data: []byte("greeting: Привет\n")},
	})
	require.NoError(t, err)

	ru := bundle.Translator(model.LocaleRU)
	assert.Equal(t, "Привет", ru.T("greeting"))
	assert.Equal(t, "English only", ru.T("only.en"), "falls back to en")
	assert.Equal(t, "missing.key", ru.T("missing.key"), "falls back to the key")

	ge := bundle.Translator(model.LocaleGE)
	assert.Equal(t, "Hello", ge.T("greeting"), "missing locale file uses en")
}

func TestTranslator_Placeholders(t *testing.T) {
	bundle, err := LoadBundle(fstest.MapFS{
		"en.yaml": {Data: []byte("msg: \"About {product}, {count} items\"\n")},
	})
	require.NoError(t, err)

	tr := bundle.Translator(model.LocaleEN)
	assert.Equal(t, "About TV, 3 items", tr.T("msg", "product", "TV", "count", 3))
	assert.Equal(t, "About {product}, {count} items", tr.T("msg"))
	assert.Equal(t, "About TV, {count} items", tr.T("msg", "product", "TV", "dangling"))
}

func TestBundle_List(t *testing.T) {
	bundle, err := DefaultBundle()
	require.NoError(t, err)

	replies := bundle.Translator(model.LocaleEN).List("whatsapp.quickReplies")
	assert.Equal(t, []string{
		"Tell me about your services",
		"Request a quote",
		"Schedule a consultation",
		"View pricing",
		"Ask about projects",
	}, replies)

	assert.Equal(t, "Request a quote", bundle.Translator(model.LocaleEN).T("whatsapp.quickReplies.1"))
	assert.Len(t, bundle.Translator(model.LocaleRU).List("services.items.videoWalls.features"), 4)
	assert.Empty(t, bundle.Translator(model.LocaleEN).List("does.not.exist"))
}

func TestLoadBundle_Errors(t *testing.T) {
	_, err := LoadBundle(fstest.MapFS{"ru.yaml": {Data: []byte("a: b\n")}})
	assert.Error(t, err, "default locale is required")

	_, err = LoadBundle(fstest.MapFS{"en.yaml": {Data: []byte("a: [unclosed\n")}})
	assert.Error(t, err)
}

func TestTranslator_ZeroValue(t *testing.T) {
	var tr Translator
	assert.Equal(t, "navigation.home", tr.T("navigation.home"))
	assert.Nil(t, tr.List("x"))
}
