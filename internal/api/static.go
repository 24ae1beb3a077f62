package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// ServeStaticFiles serves the landing page and public assets when present
func ServeStaticFiles(router *gin.Engine) {
	if _, err := os.Stat("./views/index.html"); err == nil {
		router.StaticFile("/", "./views/index.html")
	}
	if _, err := os.Stat("./public"); err == nil {
		router.Static("/public", "./public")
	}

	// Anything unmatched is a plain-text 404
	router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "not found")
	})
}
