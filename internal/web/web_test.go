package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"promptvault-backend/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestServeIndex(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	web.RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "/api/v1")
	assert.Contains(t, w.Body.String(), "navigator.clipboard.writeText")
}
