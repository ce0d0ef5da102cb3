package repository

import (
	"context"

	"mazee-site/internal/catalog"
	"mazee-site/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// All returns every product of the locale in source order.
	All(ctx context.Context, locale model.Locale) ([]model.Product, error)

	// ByID returns the product with the given id, or nil if there is none.
	ByID(ctx context.Context, locale model.Locale, id int) (*model.Product, error)
}

// ProjectRepository defines the interface for project data access operations.
type ProjectRepository interface {
	// All returns every project of the locale in source order.
	All(ctx context.Context, locale model.Locale) ([]model.Project, error)

	// ByID returns the project with the given id, or nil if there is none.
	ByID(ctx context.Context, locale model.Locale, id int) (*model.Project, error)
}

// DatasetSource is satisfied by *catalog.Store.
type DatasetSource interface {
	Dataset(locale model.Locale) (*catalog.Dataset, error)
}
