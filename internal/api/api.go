package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devconnector/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, auth *service.AuthService, profile *service.ProfileService, logger *zap.Logger) {
	router.GET("/health", HealthCheck)

	root := router.Group("/api")
	NewAuthHandler(auth, logger).RegisterRoutes(root)
	NewProfileHandler(profile, auth, logger).RegisterRoutes(root)
}
