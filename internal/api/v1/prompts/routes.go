package prompts

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	promptGroup := router.Group("/prompts")
	{
		promptGroup.GET("", ListPrompts)
		promptGroup.GET("/favorites", ListFavorites)
		promptGroup.POST("/favorite", ToggleFavorite)
	}
}
