package services

import (
	"context"
	"fmt"

	"promptvault-backend/internal/database"
	"promptvault-backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedResult reports the outcome of a supplemental seed run.
type SeedResult struct {
	Added   int    `json:"added"`
	Message string `json:"message"`
}

// SeedIfEmpty inserts the primary corpus when the catalog has no rows.
// It returns the number of rows written, zero when the catalog was not empty.
func SeedIfEmpty(ctx context.Context) (int, error) {
	added := 0
	err := database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var total int64
		if err := tx.Table("prompts").Count(&total).Error; err != nil {
			return fmt.Errorf("count prompts: %w", err)
		}
		if total > 0 {
			return nil
		}

		n, err := insertIfAbsent(tx, primarySeed)
		added = n
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}

	if added > 0 {
		InvalidateCategoryCache(ctx)
	}
	return added, nil
}

// AppendSupplementalSeed inserts the supplemental corpus, skipping titles
// already in the catalog, so repeated runs never duplicate rows.
func AppendSupplementalSeed(ctx context.Context) (*SeedResult, error) {
	added := 0
	err := database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := insertIfAbsent(tx, supplementalSeed)
		added = n
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("append supplemental seed: %w", err)
	}

	if added > 0 {
		InvalidateCategoryCache(ctx)
	}
	return &SeedResult{
		Added:   added,
		Message: fmt.Sprintf("Added %d new prompts", added),
	}, nil
}

// Initialize migrates the schema and seeds the catalog. It runs once at
// startup, before any request is served.
func Initialize(ctx context.Context) error {
	if err := database.Migrate(database.DB.WithContext(ctx)); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	seeded, err := SeedIfEmpty(ctx)
	if err != nil {
		return err
	}

	supplemental, err := AppendSupplementalSeed(ctx)
	if err != nil {
		return err
	}

	logger.Log.Info("Catalog initialized",
		zap.Int("seeded", seeded),
		zap.Int("supplemental", supplemental.Added),
	)
	return nil
}
