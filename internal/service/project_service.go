package service

import (
	"context"
	"fmt"

	"mazee-site/internal/model"
	"mazee-site/internal/repository"

	"github.com/rs/zerolog"
)

// HomeFeaturedProjects is how many projects the home page carousel shows.
const HomeFeaturedProjects = 10

// projectService implements ProjectService.
type projectService struct {
	projectRepo repository.ProjectRepository
	logger      zerolog.Logger
}

// NewProjectService creates a new project service.
func NewProjectService(projectRepo repository.ProjectRepository, logger zerolog.Logger) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		logger:      logger.With().Str("service", "project").Logger(),
	}
}

// List returns projects in source order, optionally filtered by category.
func (s *projectService) List(ctx context.Context, locale model.Locale, category string) ([]model.Project, error) {
	projects, err := s.projectRepo.All(ctx, locale)
	if err != nil {
		s.logger.Error().Err(err).Str("locale", locale.String()).Msg("failed to list projects")
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	if isAll(category) {
		return projects, nil
	}

	filtered := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Featured returns the first n projects; n <= 0 means none.
func (s *projectService) Featured(ctx context.Context, locale model.Locale, n int) ([]model.Project, error) {
	projects, err := s.projectRepo.All(ctx, locale)
	if err != nil {
		s.logger.Error().Err(err).Str("locale", locale.String()).Msg("failed to get featured projects")
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	if n < 0 {
		n = 0
	}
	if n < len(projects) {
		projects = projects[:n]
	}
	return projects, nil
}

// Categories returns distinct project categories.
func (s *projectService) Categories(ctx context.Context, locale model.Locale) ([]string, error) {
	projects, err := s.projectRepo.All(ctx, locale)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	values := make([]string, len(projects))
	for i, p := range projects {
		values[i] = p.Category
	}
	return distinct(values), nil
}

// GetByID retrieves a single project by ID.
func (s *projectService) GetByID(ctx context.Context, locale model.Locale, id int) (*model.Project, error) {
	if id <= 0 {
		return nil, model.ErrProjectNotFound
	}

	project, err := s.projectRepo.ByID(ctx, locale, id)
	if err != nil {
		s.logger.Error().Err(err).Int("project_id", id).Msg("failed to get project by ID")
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if project == nil {
		s.logger.Debug().Int("project_id", id).Str("locale", locale.String()).Msg("project not found")
		return nil, model.ErrProjectNotFound
	}

	return project, nil
}
