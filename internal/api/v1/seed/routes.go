package seed

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/seed-new", AppendSupplementalSeed)
}
