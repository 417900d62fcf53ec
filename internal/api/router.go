package api

import (
	"fmt"
	"net/http"

	"promptvault-backend/config"
	_ "promptvault-backend/docs"
	"promptvault-backend/internal/api/v1/prompts"
	"promptvault-backend/internal/api/v1/seed"
	"promptvault-backend/internal/database"
	"promptvault-backend/internal/middleware"
	"promptvault-backend/internal/utils"
	"promptvault-backend/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter builds the HTTP engine. The database must already be connected
// and initialized.
func NewRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, utils.NewErrorResponse(fmt.Sprint(recovered)))
	}))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300, // Maximum age for preflight requests
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/healthz", Health)
	web.RegisterRoutes(router)

	v1 := router.Group("/api/v1")
	{
		prompts.RegisterRoutes(v1)
		seed.RegisterRoutes(v1)
	}

	return router
}

// Health reports whether the database is reachable. It is mounted outside
// /api/v1 and left out of the API docs.
func Health(c *gin.Context) {
	if err := database.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, utils.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
