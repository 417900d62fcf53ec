// Package web serves the catalog page.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static/*
var staticFS embed.FS

// RegisterRoutes mounts the catalog page at the root path.
func RegisterRoutes(router *gin.Engine) {
	router.GET("/", serveIndex)
}

func serveIndex(c *gin.Context) {
	content, err := fs.ReadFile(staticFS, "static/index.html")
	if err != nil {
		c.String(http.StatusNotFound, "Catalog page not found")
		return
	}

	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Data(http.StatusOK, "text/html; charset=utf-8", content)
}
