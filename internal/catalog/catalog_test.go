package catalog

import (
	"testing"

	"mazee-site/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataset(t *testing.T) {
	tests := []struct {
		name        string
		products    string
		projects    string
		expectError bool
		errorMsg    string
	}{
		{
			name:     "Valid documents",
			products: `[{"id":1,"name":"TV","category":"Hotel TV"},{"id":2,"name":"Carpet","category":"Flooring"}]`,
			projects: `[{"id":1,"name":"Hilton"}]`,
		},
		{
			name:     "Empty arrays",
			products: `[]`,
			projects: `[]`,
		},
		{
			name:        "Duplicate product id",
			products:    `[{"id":1},{"id":1}]`,
			projects:    `[]`,
			expectError: true,
			errorMsg:    "duplicate id 1",
		},
		{
			name:        "Zero project id",
			products:    `[]`,
			projects:    `[{"id":0}]`,
			expectError: true,
			errorMsg:    "invalid id 0",
		},
		{
			name:        "Malformed products",
			products:    `{"id":1}`,
			projects:    `[]`,
			expectError: true,
			errorMsg:    "products/en.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := DecodeDataset(model.LocaleEN, []byte(tt.products), []byte(tt.projects))

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, ds)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.LocaleEN, ds.Locale)
		})
	}
}

func TestDocumentNames(t *testing.T) {
	assert.Equal(t, "products/ge.json", ProductsDocument(model.LocaleGE))
	assert.Equal(t, "projects/ru.json", ProjectsDocument(model.LocaleRU))
}

func TestProductImage(t *testing.T) {
	path, ok := ProductImage("lgDigital")
	assert.True(t, ok)
	assert.Equal(t, "/static/images/products/lg-digital.webp", path)

	path, ok = ProductImage("unknown")
	assert.False(t, ok)
	assert.Equal(t, DefaultProductImage, path)
}
