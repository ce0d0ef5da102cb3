package repository

import (
	"context"
	"fmt"

	"mazee-site/internal/model"

	"github.com/rs/zerolog"
)

// productRepository implements ProductRepository over the in-memory catalogue.
type productRepository struct {
	source DatasetSource
	logger zerolog.Logger
}

// NewProductRepository creates a new catalogue-backed product repository.
func NewProductRepository(source DatasetSource, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		source: source,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// All returns the locale's products. The returned slice is a copy so callers
// may sort it freely.
func (r *productRepository) All(ctx context.Context, locale model.Locale) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds, err := r.source.Dataset(locale)
	if err != nil {
		r.logger.Error().Err(err).Str("locale", locale.String()).Msg("failed to read products")
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	products := make([]model.Product, len(ds.Products))
	copy(products, ds.Products)
	return products, nil
}

// ByID scans the locale's products for id.
func (r *productRepository) ByID(ctx context.Context, locale model.Locale, id int) (*model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds, err := r.source.Dataset(locale)
	if err != nil {
		r.logger.Error().Err(err).Str("locale", locale.String()).Int("product_id", id).Msg("failed to read products")
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	for i := range ds.Products {
		if ds.Products[i].ID == id {
			p := ds.Products[i]
			return &p, nil
		}
	}

	return nil, nil
}
