package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/roadtrack-api/api/v1"
	"github.com/roadtrack-api/config"
	"github.com/roadtrack-api/database"
)

func main() {
	// Load environment variables from .env if present
	config.LoadEnv()

	// The token layer cannot work without a signing key
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ ERROR: JWT_SECRET not set in environment")
	}

	// Set Gin mode
	if config.GetEnv("GIN_MODE", "release") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database and migrate schema
	database.Initialize()

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnvList("CORS_ORIGINS", "http://localhost:5173"),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Service banner
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "roadtrack-api",
			"version": "1.0.0",
		})
	})

	// Mount versioned API
	apiV1 := router.Group("/api/v1")
	v1.RegisterRoutes(apiV1)

	// Get port from environment or use default
	port := config.GetEnv("PORT", "8080")

	// Start server
	log.Printf("🚀 RoadTrack API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
