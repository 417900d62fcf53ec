package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"promptvault-backend/internal/database"
	"promptvault-backend/internal/models"
	"promptvault-backend/pkg/logger"

	"go.uber.org/zap"
)

const (
	CategoriesCacheKey      = "catalog:categories"
	CategoriesCacheDuration = 1 * time.Hour
)

// ErrMissingID is returned when a favorite toggle carries no prompt id.
var ErrMissingID = errors.New("missing id")

// Catalog is the listing payload: the filtered prompts, every category in the
// store and the number of prompts returned.
type Catalog struct {
	Prompts    []models.Prompt `json:"prompts"`
	Categories []string        `json:"categories"`
	Total      int             `json:"total"`
}

// GetCatalog lists prompts matching the filters together with all categories.
func GetCatalog(ctx context.Context, category, search string) (*Catalog, error) {
	prompts, err := ListPrompts(ctx, category, search)
	if err != nil {
		return nil, err
	}

	categories, err := GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		Prompts:    prompts,
		Categories: categories,
		Total:      len(prompts),
	}, nil
}

// SetFavorite toggles the favorite flag of the prompt with the given id.
func SetFavorite(ctx context.Context, id *uint) error {
	if id == nil || *id == 0 {
		return ErrMissingID
	}
	return ToggleFavorite(ctx, *id)
}

// GetFavorites lists favorite prompts, most recently toggled first.
func GetFavorites(ctx context.Context) ([]models.Prompt, error) {
	return ListFavorites(ctx)
}

// GetCategories returns the distinct categories, using cache
func GetCategories(ctx context.Context) ([]string, error) {
	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(ctx, CategoriesCacheKey).Result()
		if err == nil {
			var categories []string
			if err := json.Unmarshal([]byte(val), &categories); err == nil {
				return categories, nil
			}
		}
	}

	categories, err := ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	// Never cache an empty list; seeding may not have happened yet.
	if database.RedisClient != nil && len(categories) > 0 {
		if data, err := json.Marshal(categories); err == nil {
			if err := database.RedisClient.Set(ctx, CategoriesCacheKey, data, CategoriesCacheDuration).Err(); err != nil {
				logger.Log.Warn("Failed to cache categories", zap.Error(err))
			}
		}
	}

	return categories, nil
}

// InvalidateCategoryCache drops the cached category list after inserts.
func InvalidateCategoryCache(ctx context.Context) {
	if database.RedisClient == nil {
		return
	}
	if err := database.RedisClient.Del(ctx, CategoriesCacheKey).Err(); err != nil {
		logger.Log.Warn("Failed to invalidate category cache", zap.Error(err))
	}
}
