package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"mazee-site/internal/model"

	"github.com/rs/zerolog"
)

// Store keeps the decoded datasets for every locale in memory.
type Store struct {
	loader Loader
	logger zerolog.Logger

	mu       sync.RWMutex
	datasets map[model.Locale]*Dataset
	loadedAt time.Time
}

// NewStore creates an empty store. Call Reload before serving.
func NewStore(loader Loader, logger zerolog.Logger) *Store {
	return &Store{
		loader: loader,
		logger: logger.With().Str("component", "catalog-store").Logger(),
	}
}

// Reload reads all locale documents and swaps them in as one unit. If any
// required document fails, the previously loaded datasets stay in place.
func (s *Store) Reload(ctx context.Context) error {
	start := time.Now()
	next := make(map[model.Locale]*Dataset, len(model.Locales))

	for _, locale := range model.Locales {
		ds, err := s.loadLocale(ctx, locale)
		if err != nil {
			if errors.Is(err, ErrNotFound) && locale != model.DefaultLocale {
				s.logger.Warn().
					Str("locale", locale.String()).
					Msg("locale data missing, requests will fall back to default locale")
				continue
			}
			s.logger.Error().Err(err).Str("locale", locale.String()).Msg("failed to load catalog")
			return fmt.Errorf("failed to load %s catalog: %w", locale, err)
		}
		next[locale] = ds
	}

	s.mu.Lock()
	s.datasets = next
	s.loadedAt = time.Now()
	s.mu.Unlock()

	s.logger.Info().
		Int("locales", len(next)).
		Int("products", len(next[model.DefaultLocale].Products)).
		Int("projects", len(next[model.DefaultLocale].Projects)).
		Dur("duration", time.Since(start)).
		Msg("catalog loaded")

	return nil
}

func (s *Store) loadLocale(ctx context.Context, locale model.Locale) (*Dataset, error) {
	products, err := s.loader.Load(ctx, ProductsDocument(locale))
	if err != nil {
		return nil, err
	}
	projects, err := s.loader.Load(ctx, ProjectsDocument(locale))
	if err != nil {
		return nil, err
	}
	return DecodeDataset(locale, products, projects)
}

// Dataset returns the data for locale, or the default locale's data when
// the locale has none.
func (s *Store) Dataset(locale model.Locale) (*Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if ds, ok := s.datasets[locale]; ok {
		return ds, nil
	}
	if ds, ok := s.datasets[model.DefaultLocale]; ok {
		return ds, nil
	}
	return nil, model.ErrCatalogUnavailable
}

// LoadedAt returns the time of the last successful load.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
