package main

import (
	"log"
	"os"
	"time"

	"portfolio-api/config"
	"portfolio-api/database"
	routes "portfolio-api/internal/app/http"
	"portfolio-api/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	db, err := database.Open(config.DB_URL)
	if err != nil {
		log.Fatal("❌ Failed to connect to database: ", err)
	}

	if err := os.MkdirAll(config.UPLOAD_DIR, 0o755); err != nil {
		log.Fatal("❌ Failed to create upload directory: ", err)
	}

	r := gin.Default()

	// ✅ Add CORS middleware BEFORE registering routes
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, store.New(db))

	r.Run(":" + config.PORT)
}
