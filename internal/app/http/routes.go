package routes

import (
	"portfolio-api/config"
	"portfolio-api/internal/api/artworks"
	contactapi "portfolio-api/internal/api/contact"
	newsletterapi "portfolio-api/internal/api/newsletter"
	siteapi "portfolio-api/internal/api/site"
	uploadsapi "portfolio-api/internal/api/uploads"
	"portfolio-api/internal/app/http/middleware"
	"portfolio-api/internal/store"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, s *store.Store) {
	artworksH := artworks.NewHandler(s)
	contactH := contactapi.NewHandler(s)
	newsletterH := newsletterapi.NewHandler(s)
	siteH := siteapi.NewHandler(s)
	uploadsH := uploadsapi.NewHandler(config.UPLOAD_DIR)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Digital Artist Portfolio API", "version": "1.0.0"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Uploaded files are publicly readable once stored
	r.Static("/uploads", config.UPLOAD_DIR)

	api := r.Group("/api")

	api.GET("/artworks", artworksH.List)
	api.GET("/artworks/:id", artworksH.Get)
	api.GET("/settings", siteH.Get)

	// ✅ Apply input sanitization to public form routes only
	public := api.Group("/")
	public.Use(middleware.SanitizeInput())
	public.POST("/contact", contactH.Submit)
	public.POST("/newsletter", newsletterH.Signup)

	// Admin routes: credentials re-verified on every request
	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin(config.ADMIN_USERNAME, config.ADMIN_PASSWORD))
	admin.POST("/artworks", artworksH.Create)
	admin.PUT("/artworks/:id", artworksH.Update)
	admin.DELETE("/artworks/:id", artworksH.Delete)
	admin.POST("/upload", uploadsH.Upload)
	admin.GET("/contacts", contactH.List)
	admin.GET("/newsletter", newsletterH.List)
	admin.PUT("/settings", siteH.Update)
}
