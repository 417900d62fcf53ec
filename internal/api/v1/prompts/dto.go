package prompts

import "promptvault-backend/internal/models"

// FavoriteRequest identifies the prompt whose favorite flag is toggled.
// An id of 0 passes binding and is rejected as missing by the service.
type FavoriteRequest struct {
	ID *uint `json:"id" binding:"required"`
}

type FavoritesResponse struct {
	Prompts []models.Prompt `json:"prompts"`
	Total   int             `json:"total"`
}
