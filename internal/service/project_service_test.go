package service

import (
	"context"
	"testing"

	"mazee-site/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProjectRepository is a mock implementation of ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) All(ctx context.Context, locale model.Locale) ([]model.Project, error) {
	args := m.Called(ctx, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) ByID(ctx context.Context, locale model.Locale, id int) (*model.Project, error) {
	args := m.Called(ctx, locale, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func testProjects() []model.Project {
	return []model.Project{
		{ID: 1, Name: "Hilton", Category: "Hospitality"},
		{ID: 2, Name: "Airport", Category: "Transport"},
		{ID: 3, Name: "Sheraton", Category: "Hospitality"},
	}
}

func projectIDs(projects []model.Project) []int {
	out := make([]int, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func TestProjectService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		category    string
		expectedIDs []int
	}{
		{name: "All", category: CategoryAll, expectedIDs: []int{1, 2, 3}},
		{name: "Empty category", category: "", expectedIDs: []int{1, 2, 3}},
		{name: "Filtered", category: "Hospitality", expectedIDs: []int{1, 3}},
		{name: "Unknown category", category: "Mining", expectedIDs: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProjectRepository)
			service := NewProjectService(mockRepo, zerolog.Nop())
			mockRepo.On("All", ctx, model.LocaleGE).Return(testProjects(), nil)

			projects, err := service.List(ctx, model.LocaleGE, tt.category)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedIDs, projectIDs(projects))
		})
	}
}

func TestProjectService_Featured(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		n        int
		expected int
	}{
		{name: "Fewer than available", n: 2, expected: 2},
		{name: "More than available", n: HomeFeaturedProjects, expected: 3},
		{name: "Zero", n: 0, expected: 0},
		{name: "Negative", n: -1, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProjectRepository)
			service := NewProjectService(mockRepo, zerolog.Nop())
			mockRepo.On("All", ctx, model.LocaleEN).Return(testProjects(), nil)

			projects, err := service.Featured(ctx, model.LocaleEN, tt.n)

			require.NoError(t, err)
			assert.Len(t, projects, tt.expected)
		})
	}
}

func TestProjectService_Categories(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProjectRepository)
	service := NewProjectService(mockRepo, zerolog.Nop())
	mockRepo.On("All", ctx, model.LocaleEN).Return(testProjects(), nil)

	categories, err := service.Categories(ctx, model.LocaleEN)

	require.NoError(t, err)
	assert.Equal(t, []string{"Hospitality", "Transport"}, categories)
}

func TestProjectService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		service := NewProjectService(mockRepo, zerolog.Nop())
		want := &model.Project{ID: 2, Name: "Airport"}
		mockRepo.On("ByID", ctx, model.LocaleEN, 2).Return(want, nil)

		project, err := service.GetByID(ctx, model.LocaleEN, 2)

		require.NoError(t, err)
		assert.Equal(t, want, project)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		service := NewProjectService(mockRepo, zerolog.Nop())
		mockRepo.On("ByID", ctx, model.LocaleEN, 42).Return(nil, nil)

		project, err := service.GetByID(ctx, model.LocaleEN, 42)

		assert.Equal(t, model.ErrProjectNotFound, err)
		assert.Nil(t, project)
	})

	t.Run("Invalid ID skips repository", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		service := NewProjectService(mockRepo, zerolog.Nop())

		_, err := service.GetByID(ctx, model.LocaleEN, -3)

		assert.Equal(t, model.ErrProjectNotFound, err)
		mockRepo.AssertNotCalled(t, "ByID", mock.Anything, mock.Anything, mock.Anything)
	})
}
