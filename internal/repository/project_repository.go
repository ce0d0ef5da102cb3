package repository

import (
	"context"
	"fmt"

	"mazee-site/internal/model"

	"github.com/rs/zerolog"
)

// projectRepository implements ProjectRepository over the in-memory catalogue.
type projectRepository struct {
	source DatasetSource
	logger zerolog.Logger
}

// NewProjectRepository creates a new catalogue-backed project repository.
func NewProjectRepository(source DatasetSource, logger zerolog.Logger) ProjectRepository {
	return &projectRepository{
		source: source,
		logger: logger.With().Str("repository", "project").Logger(),
	}
}

// All returns a copy of the locale's projects.
func (r *projectRepository) All(ctx context.Context, locale model.Locale) ([]model.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds, err := r.source.Dataset(locale)
	if err != nil {
		r.logger.Error().Err(err).Str("locale", locale.String()).Msg("failed to read projects")
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}

	projects := make([]model.Project, len(ds.Projects))
	copy(projects, ds.Projects)
	return projects, nil
}

// ByID scans the locale's projects for id.
func (r *projectRepository) ByID(ctx context.Context, locale model.Locale, id int) (*model.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds, err := r.source.Dataset(locale)
	if err != nil {
		r.logger.Error().Err(err).Str("locale", locale.String()).Int("project_id", id).Msg("failed to read projects")
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}

	for i := range ds.Projects {
		if ds.Projects[i].ID == id {
			p := ds.Projects[i]
			return &p, nil
		}
	}

	return nil, nil
}
