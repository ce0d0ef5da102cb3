// Package catalog loads the locale-keyed product and project documents
// and keeps them in memory for the rest of the site.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"mazee-site/internal/model"
)

// ErrNotFound is returned by loaders when a document does not exist.
var ErrNotFound = errors.New("catalog document not found")

// Loader defines the interface for reading raw catalogue documents.
type Loader interface {
	// Load returns the contents of a document such as "products/en.json".
	Load(ctx context.Context, name string) ([]byte, error)
}

// Dataset holds every record for one locale.
type Dataset struct {
	Locale   model.Locale
	Products []model.Product
	Projects []model.Project
}

// ProductsDocument returns the document name holding products for locale.
func ProductsDocument(locale model.Locale) string {
	return "products/" + locale.String() + ".json"
}

// ProjectsDocument returns the document name holding projects for locale.
func ProjectsDocument(locale model.Locale) string {
	return "projects/" + locale.String() + ".json"
}

// DecodeDataset parses the raw product and project documents of a locale
// and checks that ids are positive and unique within each array.
func DecodeDataset(locale model.Locale, productsJSON, projectsJSON []byte) (*Dataset, error) {
	ds := &Dataset{Locale: locale}

	if err := json.Unmarshal(productsJSON, &ds.Products); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", ProductsDocument(locale), err)
	}
	if err := json.Unmarshal(projectsJSON, &ds.Projects); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", ProjectsDocument(locale), err)
	}

	productIDs := make([]int, len(ds.Products))
	for i, p := range ds.Products {
		productIDs[i] = p.ID
	}
	if err := checkIDs(productIDs); err != nil {
		return nil, fmt.Errorf("%s: %w", ProductsDocument(locale), err)
	}

	projectIDs := make([]int, len(ds.Projects))
	for i, p := range ds.Projects {
		projectIDs[i] = p.ID
	}
	if err := checkIDs(projectIDs); err != nil {
		return nil, fmt.Errorf("%s: %w", ProjectsDocument(locale), err)
	}

	return ds, nil
}

func checkIDs(ids []int) error {
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return fmt.Errorf("invalid id %d", id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate id %d", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
