package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"promptvault-backend/internal/database"
	"promptvault-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PromptInput holds the caller-supplied fields of a new prompt. The store
// assigns id, timestamps and the favorite flag.
type PromptInput struct {
	Title    string
	Content  string
	Category string
	Tags     []string
	Source   string
	Rating   int
}

func (in PromptInput) toModel() *models.Prompt {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	p := &models.Prompt{
		Title:    in.Title,
		Content:  in.Content,
		Category: in.Category,
		Tags:     tags,
		Rating:   in.Rating,
	}
	if in.Source != "" {
		source := in.Source
		p.Source = &source
	}
	return p
}

// CreatePrompt appends a new prompt
func CreatePrompt(ctx context.Context, in PromptInput) (*models.Prompt, error) {
	prompt := in.toModel()
	if err := database.DB.WithContext(ctx).Create(prompt).Error; err != nil {
		return nil, fmt.Errorf("create prompt %q: %w", in.Title, err)
	}
	InvalidateCategoryCache(ctx)
	return prompt, nil
}

// ListPrompts returns prompts ordered by rating, newest first within a rating.
// An empty category or "all" disables the category filter; search matches
// title or content case-insensitively.
func ListPrompts(ctx context.Context, category, search string) ([]models.Prompt, error) {
	prompts := []models.Prompt{}

	db := database.DB.WithContext(ctx).Model(&models.Prompt{})

	if category != "" && category != models.CategoryAll {
		db = db.Where("category = ?", category)
	}

	if search != "" {
		// Both sides fold in SQL so they get the same case mapping.
		pattern := "%" + escapeLike(search) + "%"
		db = db.Where(`(LOWER(title) LIKE LOWER(?) ESCAPE '\' OR LOWER(content) LIKE LOWER(?) ESCAPE '\')`, pattern, pattern)
	}

	if err := db.Order("rating desc, created_at desc, id desc").Find(&prompts).Error; err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}

	return prompts, nil
}

// ListFavorites returns favorite prompts, most recently toggled first
func ListFavorites(ctx context.Context) ([]models.Prompt, error) {
	prompts := []models.Prompt{}
	err := database.DB.WithContext(ctx).
		Where("is_favorite = ?", true).
		Order("updated_at desc, id desc").
		Find(&prompts).Error
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return prompts, nil
}

// ToggleFavorite flips is_favorite and refreshes updated_at. An unknown id
// matches no rows and is not an error.
func ToggleFavorite(ctx context.Context, id uint) error {
	err := database.DB.WithContext(ctx).
		Model(&models.Prompt{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"is_favorite": gorm.Expr("NOT is_favorite"),
			"updated_at":  time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("toggle favorite %d: %w", id, err)
	}
	return nil
}

// ListCategories returns the distinct categories in alphabetical order
func ListCategories(ctx context.Context) ([]string, error) {
	categories := []string{}
	err := database.DB.WithContext(ctx).
		Model(&models.Prompt{}).
		Distinct("category").
		Order("category asc").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func CountPrompts(ctx context.Context) (int64, error) {
	var total int64
	if err := database.DB.WithContext(ctx).Model(&models.Prompt{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count prompts: %w", err)
	}
	return total, nil
}

func PromptTitleExists(ctx context.Context, title string) (bool, error) {
	var count int64
	err := database.DB.WithContext(ctx).
		Model(&models.Prompt{}).
		Where("title = ?", title).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check prompt title %q: %w", title, err)
	}
	return count > 0, nil
}

// insertIfAbsent inserts the prompts in order, skipping titles that already
// exist. It returns the number of rows written.
func insertIfAbsent(tx *gorm.DB, inputs []PromptInput) (int, error) {
	added := 0
	for _, in := range inputs {
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "title"}},
			DoNothing: true,
		}).Create(in.toModel())
		if result.Error != nil {
			return added, fmt.Errorf("insert prompt %q: %w", in.Title, result.Error)
		}
		added += int(result.RowsAffected)
	}
	return added, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
