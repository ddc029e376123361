package transport

import (
	"net/http"
	"path/filepath"

	"github.com/ds124wfegd/word-blender/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

const serviceName = "word-blender"

type Options struct {
	// TemplatesDir holds index.html; the page route is skipped when empty.
	TemplatesDir string
	// StaticDir is mounted on /static when set.
	StaticDir     string
	GzipMinLength int
}

func InitRoutes(h *GameHandler, opts Options) *gin.Engine {

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	router.Use(middleware.Gzip(opts.GzipMinLength))

	// Web interface routes
	if opts.StaticDir != "" {
		router.Static("/static", opts.StaticDir)
	}
	if opts.TemplatesDir != "" {
		router.LoadHTMLGlob(filepath.Join(opts.TemplatesDir, "*.html"))
		router.GET("/", func(c *gin.Context) {
			c.HTML(http.StatusOK, "index.html", nil)
		})
	}

	// Game routes
	router.GET("/words", h.GetWords)
	router.POST("/blend", h.BlendWords)
	router.POST("/generate-image", h.GenerateImage)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
		})
	})

	return router
}
