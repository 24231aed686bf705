// Package routes defines HTTP routes for the user service.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/GunarsK-portfolio/user-service/docs"
	"github.com/GunarsK-portfolio/user-service/internal/config"
	"github.com/GunarsK-portfolio/user-service/internal/handlers"
	"github.com/GunarsK-portfolio/user-service/internal/metrics"
	"github.com/GunarsK-portfolio/user-service/internal/middleware"
	"github.com/GunarsK-portfolio/user-service/internal/service"
)

// Setup configures all HTTP routes for the application.
func Setup(
	router *gin.Engine,
	cfg *config.Config,
	logger zerolog.Logger,
	collectors *metrics.Metrics,
	authService service.AuthService,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(middleware.RequestLogger(logger))
	router.Use(collectors.Middleware())

	// Health check
	router.GET("/health", healthHandler.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.RequireAuth(authService)

	v1 := router.Group("/api/v1")
	users := v1.Group("/users")
	{
		users.POST("/login", authHandler.Login)
		users.POST("", userHandler.Register)
		users.POST("/admin/create", requireAuth, userHandler.AdminCreate)
		users.GET("/me", requireAuth, userHandler.Me)
		users.GET("", requireAuth, userHandler.List)
		users.GET("/:id", requireAuth, userHandler.Get)
		users.PUT("/:id", requireAuth, userHandler.Update)
		users.DELETE("/:id", requireAuth, userHandler.Delete)
	}

	// Swagger documentation (only if SWAGGER_HOST is configured)
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
