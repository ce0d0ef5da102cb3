package service

import (
	"context"

	"mazee-site/internal/model"
)

// CategoryAll selects every category.
const CategoryAll = "all"

// SortOption orders the all-products listing.
type SortOption string

const (
	SortName     SortOption = "name"
	SortCategory SortOption = "category"
	SortNewest   SortOption = "newest"
	SortOldest   SortOption = "oldest"
)

// ParseSort maps a query value to a sort option. "popular" is the historic
// name of the oldest-first order; anything unknown sorts by name.
func ParseSort(value string) SortOption {
	switch SortOption(value) {
	case SortCategory, SortNewest, SortOldest:
		return SortOption(value)
	case "popular":
		return SortOldest
	default:
		return SortName
	}
}

// ProductQuery narrows the all-products listing.
type ProductQuery struct {
	Search       string
	Category     string
	Applications []string
	Sort         SortOption
}

// ProductService defines read operations over the product catalogue.
type ProductService interface {
	// List filters and sorts products for the all-products page.
	List(ctx context.Context, locale model.Locale, query ProductQuery) ([]model.Product, error)

	// Catalog returns the home page catalog section, mixing categories
	// round-robin when every category is selected.
	Catalog(ctx context.Context, locale model.Locale, category, search string) ([]model.Product, error)

	// Categories returns distinct categories in first-appearance order.
	Categories(ctx context.Context, locale model.Locale) ([]string, error)

	// Applications returns distinct applications in first-appearance order.
	Applications(ctx context.Context, locale model.Locale) ([]string, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, locale model.Locale, id int) (*model.Product, error)
}

// ProjectService defines read operations over the project portfolio.
type ProjectService interface {
	// List returns projects, optionally restricted to one category.
	List(ctx context.Context, locale model.Locale, category string) ([]model.Project, error)

	// Featured returns the first n projects.
	Featured(ctx context.Context, locale model.Locale, n int) ([]model.Project, error)

	// Categories returns distinct categories in first-appearance order.
	Categories(ctx context.Context, locale model.Locale) ([]string, error)

	// GetByID retrieves a single project by ID.
	GetByID(ctx context.Context, locale model.Locale, id int) (*model.Project, error)
}
