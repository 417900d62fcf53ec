package database

import (
	"promptvault-backend/internal/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "202410170001_create_prompts",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Prompt{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("prompts")
			},
		},
	}
}

// Migrate brings the schema up to date. Applied migrations are recorded in the
// migrations table, so calling it on every start is safe.
func Migrate(db *gorm.DB) error {
	return gormigrate.New(db, gormigrate.DefaultOptions, migrations()).Migrate()
}

// RollbackLast undoes the most recently applied migration.
func RollbackLast(db *gorm.DB) error {
	return gormigrate.New(db, gormigrate.DefaultOptions, migrations()).RollbackLast()
}
