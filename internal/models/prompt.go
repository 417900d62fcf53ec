package models

import (
	"time"

	"gorm.io/datatypes"
)

// CategoryAll is the category filter value that disables category filtering.
const CategoryAll = "all"

// Prompt represents a reusable text snippet in the catalog
type Prompt struct {
	ID         uint                        `gorm:"primarykey" json:"id"`
	Title      string                      `gorm:"size:255;uniqueIndex;not null" json:"title"`
	Content    string                      `gorm:"type:text;not null" json:"content"`
	Category   string                      `gorm:"size:100;index;not null" json:"category"`
	Tags       datatypes.JSONSlice[string] `json:"tags" swaggertype:"array,string"`
	Source     *string                     `gorm:"size:255" json:"source"`
	Rating     int                         `gorm:"default:0" json:"rating"`
	IsFavorite bool                        `gorm:"default:false;not null" json:"is_favorite"`
	CreatedAt  time.Time                   `json:"created_at"`
	UpdatedAt  time.Time                   `json:"updated_at"`
}

// TableName overrides the table name
func (Prompt) TableName() string {
	return "prompts"
}
