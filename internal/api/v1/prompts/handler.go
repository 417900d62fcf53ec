package prompts

import (
	"errors"
	"net/http"

	"promptvault-backend/internal/services"
	"promptvault-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// ListPrompts godoc
// @Summary List prompts
// @Description List prompts ordered by rating, with every known category. "all" disables the category filter.
// @Tags prompts
// @Produce json
// @Param category query string false "Exact category, or all"
// @Param search query string false "Case-insensitive text matched against title and content"
// @Success 200 {object} services.Catalog
// @Failure 500 {object} utils.ErrorResponse
// @Router /prompts [get]
func ListPrompts(c *gin.Context) {
	catalog, err := services.GetCatalog(c.Request.Context(), c.Query("category"), c.Query("search"))
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, catalog)
}

// ListFavorites godoc
// @Summary List favorite prompts
// @Description List favorite prompts, most recently toggled first
// @Tags prompts
// @Produce json
// @Success 200 {object} FavoritesResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /prompts/favorites [get]
func ListFavorites(c *gin.Context) {
	favorites, err := services.GetFavorites(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, FavoritesResponse{
		Prompts: favorites,
		Total:   len(favorites),
	})
}

// ToggleFavorite godoc
// @Summary Toggle favorite
// @Description Flip the favorite flag of a prompt. Unknown ids are accepted and change nothing.
// @Tags prompts
// @Accept json
// @Produce json
// @Param request body FavoriteRequest true "Prompt id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse "Missing id, Invalid id or Invalid request body"
// @Failure 500 {object} utils.ErrorResponse
// @Router /prompts/favorite [post]
func ToggleFavorite(c *gin.Context) {
	var req FavoriteRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if err := services.SetFavorite(c.Request.Context(), req.ID); err != nil {
		if errors.Is(err, services.ErrMissingID) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Missing id"))
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse())
}
