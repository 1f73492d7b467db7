// internal/app/router.go
package app

import (
	authHandler "hotel-admin-service/internal/handlers/auth"
	logHandler "hotel-admin-service/internal/handlers/logrecord"
	platformHandler "hotel-admin-service/internal/handlers/platform"
	"hotel-admin-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	AuthHandler     *authHandler.AuthHandler
	PlatformHandler *platformHandler.PlatformHandler
	LogHandler      *logHandler.LogHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupRouter registers the gateway's HTTP surface: a 1:1 mirror of the
// external backend's resources behind the session cookie.
func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Public Auth Routes ====================
	authPublic := api.Group("/auth")
	{
		authPublic.POST("/login", h.AuthHandler.Login)
	}

	// ==================== Authenticated Auth Routes ====================
	authProtected := api.Group("/auth")
	authProtected.Use(h.AuthMiddleware.Auth())
	{
		authProtected.POST("/logout", h.AuthHandler.Logout)
		authProtected.GET("/me", h.AuthHandler.Me)
	}

	// ==================== Hotel Platform Credentials ====================
	platforms := api.Group("/hotel-platforms")
	platforms.Use(h.AuthMiddleware.Auth())
	{
		platforms.GET("", h.PlatformHandler.ListPlatforms)
		platforms.POST("", h.PlatformHandler.CreatePlatform)
		platforms.GET("/:id", h.PlatformHandler.GetPlatform)
		platforms.PUT("/:id", h.PlatformHandler.UpdatePlatform)
		platforms.DELETE("/:id", h.PlatformHandler.DeletePlatform)
	}

	// ==================== Automation Logs (Read Only) ====================
	logs := api.Group("/logs")
	logs.Use(h.AuthMiddleware.Auth())
	{
		logs.GET("", h.LogHandler.ListLogs)
		logs.GET("/:id", h.LogHandler.GetLog)
	}
}
