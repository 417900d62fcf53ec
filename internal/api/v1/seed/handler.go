package seed

import (
	"net/http"

	"promptvault-backend/internal/services"
	"promptvault-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// AppendSupplementalSeed godoc
// @Summary Append supplemental prompts
// @Description Insert the supplemental prompt set, skipping titles that already exist. Safe to call repeatedly.
// @Tags maintenance
// @Produce json
// @Success 200 {object} SeedResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /seed-new [post]
func AppendSupplementalSeed(c *gin.Context) {
	result, err := services.AppendSupplementalSeed(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, SeedResponse{
		Success: true,
		Added:   result.Added,
		Message: result.Message,
	})
}
