package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/roadtrack-api/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Project endpoints - protected by AuthMiddleware
	projectGroup := router.Group("/projects")
	projectGroup.Use(middleware.AuthMiddleware())
	{
		projectGroup.GET("", ListProjects)
		projectGroup.POST("", CreateProject)
		projectGroup.GET("/:id", GetProject)
		projectGroup.PUT("/:id", UpdateProject)
		projectGroup.DELETE("/:id", DeleteProject)
		projectGroup.POST("/:id/sessions", AddSession)
		projectGroup.GET("/:id/sessions", ListSessions)
	}

	// Profile endpoints - protected by AuthMiddleware
	profileGroup := router.Group("/profile")
	profileGroup.Use(middleware.AuthMiddleware())
	{
		profileGroup.GET("", GetProfile)
		profileGroup.PUT("", UpdateProfile)
		profileGroup.POST("/xp", AddXP)
		profileGroup.GET("/stats", GetStats)
		profileGroup.POST("/badges/check", CheckBadges)
		profileGroup.GET("/ranks", GetRanks)
		profileGroup.GET("/badges", GetBadges)
	}

	// Public profile endpoint - no authentication
	router.GET("/users/:username/public", GetPublicProfile)
}
