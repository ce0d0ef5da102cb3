package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"mazee-site/internal/model"
	"mazee-site/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List filters by category, search term and applications, then sorts.
func (s *productService) List(ctx context.Context, locale model.Locale, query ProductQuery) ([]model.Product, error) {
	products, err := s.productRepo.All(ctx, locale)
	if err != nil {
		s.logger.Error().Err(err).Str("locale", locale.String()).Msg("failed to list products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	term := strings.ToLower(strings.TrimSpace(query.Search))
	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if !matchesCategory(p.Category, query.Category) {
			continue
		}
		if term != "" && !containsFold(term, p.Name, p.Description) && !containsFold(term, p.Applications...) {
			continue
		}
		if !matchesAnyApplication(p, query.Applications) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, query.Sort, locale)

	s.logger.Debug().
		Str("locale", locale.String()).
		Str("category", query.Category).
		Str("sort", string(query.Sort)).
		Int("count", len(filtered)).
		Msg("listed products")

	return filtered, nil
}

// Catalog filters by category and name/description search; with every
// category selected the result is mixed round-robin.
func (s *productService) Catalog(ctx context.Context, locale model.Locale, category, search string) ([]model.Product, error) {
	products, err := s.productRepo.All(ctx, locale)
	if err != nil {
		s.logger.Error().Err(err).Str("locale", locale.String()).Msg("failed to build catalog")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	term := strings.ToLower(strings.TrimSpace(search))
	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if !matchesCategory(p.Category, category) {
			continue
		}
		if term != "" && !containsFold(term, p.Name, p.Description) {
			continue
		}
		filtered = append(filtered, p)
	}

	if isAll(category) {
		return MixCategories(filtered), nil
	}
	return filtered, nil
}

// Categories returns distinct product categories.
func (s *productService) Categories(ctx context.Context, locale model.Locale) ([]string, error) {
	products, err := s.productRepo.All(ctx, locale)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	values := make([]string, len(products))
	for i, p := range products {
		values[i] = p.Category
	}
	return distinct(values), nil
}

// Applications returns distinct product applications.
func (s *productService) Applications(ctx context.Context, locale model.Locale) ([]string, error) {
	products, err := s.productRepo.All(ctx, locale)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	var values []string
	for _, p := range products {
		values = append(values, p.Applications...)
	}
	return distinct(values), nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, locale model.Locale, id int) (*model.Product, error) {
	if id <= 0 {
		s.logger.Debug().Int("product_id", id).Msg("invalid product ID")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.ByID(ctx, locale, id)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int("product_id", id).Str("locale", locale.String()).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// MixCategories interleaves products so that consecutive cards come from
// different categories: groups keep first-appearance order and each round
// takes the next product of every group. Zero or one category is returned
// unchanged.
func MixCategories(products []model.Product) []model.Product {
	var order []string
	groups := make(map[string][]model.Product)
	longest := 0
	for _, p := range products {
		if _, ok := groups[p.Category]; !ok {
			order = append(order, p.Category)
		}
		groups[p.Category] = append(groups[p.Category], p)
		if n := len(groups[p.Category]); n > longest {
			longest = n
		}
	}

	if len(order) <= 1 {
		return products
	}

	mixed := make([]model.Product, 0, len(products))
	for i := 0; i < longest; i++ {
		for _, category := range order {
			if group := groups[category]; i < len(group) {
				mixed = append(mixed, group[i])
			}
		}
	}
	return mixed
}

func sortProducts(products []model.Product, option SortOption, locale model.Locale) {
	switch option {
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool { return products[i].ID > products[j].ID })
	case SortOldest:
		sort.SliceStable(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	case SortCategory:
		c := newCollator(locale)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Category, products[j].Category) < 0
		})
	case SortName:
		c := newCollator(locale)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	}
}

// newCollator returns a collator for locale. Collators keep internal
// buffers, so one is created per sort.
func newCollator(locale model.Locale) *collate.Collator {
	tag := language.English
	switch locale {
	case model.LocaleGE:
		tag = language.Georgian
	case model.LocaleRU:
		tag = language.Russian
	}
	return collate.New(tag, collate.IgnoreCase)
}

func isAll(category string) bool {
	return category == "" || category == CategoryAll
}

func matchesCategory(value, category string) bool {
	return isAll(category) || value == category
}

func matchesAnyApplication(p model.Product, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, a := range selected {
		if p.HasApplication(a) {
			return true
		}
	}
	return false
}

// containsFold reports whether any value contains term; term must already
// be lower-cased.
func containsFold(term string, values ...string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
