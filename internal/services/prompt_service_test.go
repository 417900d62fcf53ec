package services_test

import (
	"context"
	"strings"
	"testing"

	"promptvault-backend/config"
	"promptvault-backend/internal/database"
	"promptvault-backend/internal/models"
	"promptvault-backend/internal/services"
	"promptvault-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	logger.Log = zap.NewNop()
	database.RedisClient = nil

	db, err := database.Connect(config.DriverSQLite, ":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { _ = database.Close() })
}

func createPrompt(t *testing.T, in services.PromptInput) *models.Prompt {
	t.Helper()
	p, err := services.CreatePrompt(context.Background(), in)
	require.NoError(t, err)
	return p
}

func fixturePrompts(t *testing.T) {
	t.Helper()
	createPrompt(t, services.PromptInput{Title: "Regex Helper", Content: "Build a REGEX for emails", Category: "Coding", Rating: 80})
	createPrompt(t, services.PromptInput{Title: "Code Review", Content: "Review this code", Category: "Coding", Rating: 95})
	createPrompt(t, services.PromptInput{Title: "Blog Outline", Content: "Outline a post about regex engines", Category: "Writing", Rating: 90})
	createPrompt(t, services.PromptInput{Title: "Daily Plan", Content: "Plan my day with 100% focus", Category: "Productivity", Rating: 70})
	createPrompt(t, services.PromptInput{Title: "Lowercase coding", Content: "category case check", Category: "coding", Rating: 60})
	createPrompt(t, services.PromptInput{Title: "ÉCOLE Planner", Content: "Schedule the school term", Category: "Productivity", Rating: 50})
}

func titles(prompts []models.Prompt) []string {
	out := make([]string, 0, len(prompts))
	for _, p := range prompts {
		out = append(out, p.Title)
	}
	return out
}

func TestCreatePromptAssignsStoreFields(t *testing.T) {
	setupTestDB(t)

	p := createPrompt(t, services.PromptInput{Title: "T", Content: "C", Category: "Coding"})
	assert.NotZero(t, p.ID)
	assert.False(t, p.IsFavorite)
	assert.Nil(t, p.Source)
	assert.Equal(t, 0, p.Rating)
	assert.NotNil(t, p.Tags)
	assert.False(t, p.CreatedAt.IsZero())

	q := createPrompt(t, services.PromptInput{Title: "U", Content: "C", Category: "Coding", Source: "Twitter", Tags: []string{"a", "b"}})
	assert.Greater(t, q.ID, p.ID)

	var stored models.Prompt
	require.NoError(t, database.DB.First(&stored, q.ID).Error)
	require.NotNil(t, stored.Source)
	assert.Equal(t, "Twitter", *stored.Source)
	assert.Equal(t, []string{"a", "b"}, []string(stored.Tags))
}

func TestCreatePromptDuplicateTitle(t *testing.T) {
	setupTestDB(t)

	createPrompt(t, services.PromptInput{Title: "Same", Content: "C", Category: "Coding"})
	_, err := services.CreatePrompt(context.Background(), services.PromptInput{Title: "Same", Content: "D", Category: "Coding"})
	assert.Error(t, err)
}

func TestListPromptsFilters(t *testing.T) {
	setupTestDB(t)
	fixturePrompts(t)
	ctx := context.Background()

	all, err := services.ListPrompts(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 6)

	tests := []struct {
		name     string
		category string
		search   string
		expected []string
	}{
		{name: "sentinel all", category: "all", expected: titles(all)},
		{name: "category only", category: "Coding", expected: []string{"Code Review", "Regex Helper"}},
		{name: "category is case-sensitive", category: "coding", expected: []string{"Lowercase coding"}},
		{name: "search title or content", search: "regex", expected: []string{"Blog Outline", "Regex Helper"}},
		{name: "search is case-insensitive", search: "ReGeX", expected: []string{"Blog Outline", "Regex Helper"}},
		{name: "non-ASCII search", search: "ÉCOLE", expected: []string{"ÉCOLE Planner"}},
		{name: "category and search", category: "Coding", search: "regex", expected: []string{"Regex Helper"}},
		{name: "all with search", category: "all", search: "review", expected: []string{"Code Review"}},
		{name: "wildcards are literal", search: "100%", expected: []string{"Daily Plan"}},
		{name: "underscore is literal", search: "_", expected: []string{}},
		{name: "no match", search: "nothing-matches", expected: []string{}},
		{name: "unknown category", category: "Unknown", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := services.ListPrompts(ctx, tt.category, tt.search)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, titles(got))

			for _, p := range got {
				assert.Contains(t, titles(all), p.Title)
				if tt.category != "" && tt.category != "all" {
					assert.Equal(t, tt.category, p.Category)
				}
				if tt.search != "" {
					needle := strings.ToLower(tt.search)
					assert.True(t, strings.Contains(strings.ToLower(p.Title), needle) ||
						strings.Contains(strings.ToLower(p.Content), needle))
				}
			}
		})
	}
}

func TestListPromptsOrdering(t *testing.T) {
	setupTestDB(t)
	createPrompt(t, services.PromptInput{Title: "old", Content: "c", Category: "A", Rating: 50})
	createPrompt(t, services.PromptInput{Title: "top", Content: "c", Category: "A", Rating: 99})
	createPrompt(t, services.PromptInput{Title: "new", Content: "c", Category: "A", Rating: 50})

	got, err := services.ListPrompts(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"top", "new", "old"}, titles(got))
}

func TestListCategoriesDistinctSorted(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	categories, err := services.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)

	fixturePrompts(t)
	createPrompt(t, services.PromptInput{Title: "Another", Content: "c", Category: "Writing"})

	categories, err = services.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Coding", "Productivity", "Writing", "coding"}, categories)
}

func TestToggleFavoriteIsSelfInverse(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	p := createPrompt(t, services.PromptInput{Title: "Fav", Content: "c", Category: "A"})

	var before models.Prompt
	require.NoError(t, database.DB.First(&before, p.ID).Error)

	require.NoError(t, services.ToggleFavorite(ctx, p.ID))
	var once models.Prompt
	require.NoError(t, database.DB.First(&once, p.ID).Error)
	assert.True(t, once.IsFavorite)
	assert.False(t, once.UpdatedAt.Before(before.UpdatedAt))
	assert.True(t, once.CreatedAt.Equal(before.CreatedAt))

	require.NoError(t, services.ToggleFavorite(ctx, p.ID))
	var twice models.Prompt
	require.NoError(t, database.DB.First(&twice, p.ID).Error)
	assert.Equal(t, before.IsFavorite, twice.IsFavorite)
	assert.False(t, twice.UpdatedAt.Before(once.UpdatedAt))
	assert.True(t, twice.CreatedAt.Equal(before.CreatedAt))
}

func TestToggleFavoriteUnknownIDIsNoop(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	p := createPrompt(t, services.PromptInput{Title: "Fav", Content: "c", Category: "A"})

	var before models.Prompt
	require.NoError(t, database.DB.First(&before, p.ID).Error)

	assert.NoError(t, services.ToggleFavorite(ctx, p.ID+100))

	var stored models.Prompt
	require.NoError(t, database.DB.First(&stored, p.ID).Error)
	assert.False(t, stored.IsFavorite)
	assert.True(t, stored.UpdatedAt.Equal(before.UpdatedAt))

	total, err := services.CountPrompts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestListFavoritesMostRecentFirst(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	a := createPrompt(t, services.PromptInput{Title: "A", Content: "c", Category: "X"})
	b := createPrompt(t, services.PromptInput{Title: "B", Content: "c", Category: "X"})
	createPrompt(t, services.PromptInput{Title: "C", Content: "c", Category: "X"})

	require.NoError(t, services.ToggleFavorite(ctx, b.ID))
	require.NoError(t, services.ToggleFavorite(ctx, a.ID))

	favorites, err := services.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, titles(favorites))
}

func TestPromptTitleExists(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	createPrompt(t, services.PromptInput{Title: "Present", Content: "c", Category: "X"})

	ok, err := services.PromptTitleExists(ctx, "Present")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = services.PromptTitleExists(ctx, "Absent")
	require.NoError(t, err)
	assert.False(t, ok)
}
