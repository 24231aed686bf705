// Package main is the entry point for the user service.
package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/GunarsK-portfolio/user-service/docs"
	"github.com/GunarsK-portfolio/user-service/internal/config"
	"github.com/GunarsK-portfolio/user-service/internal/handlers"
	"github.com/GunarsK-portfolio/user-service/internal/metrics"
	"github.com/GunarsK-portfolio/user-service/internal/models"
	"github.com/GunarsK-portfolio/user-service/internal/repository"
	"github.com/GunarsK-portfolio/user-service/internal/routes"
	"github.com/GunarsK-portfolio/user-service/internal/service"
	"github.com/GunarsK-portfolio/user-service/pkg/database"
)

// @title Portfolio User Service API
// @version 1.0
// @description User management and authentication service for portfolio system
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := newLogger(cfg.LogLevel)
	log.Logger = logger

	// Initialize database
	db, err := database.Connect(database.PostgresConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
		TimeZone: "UTC",
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	// Initialize repository
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	tokenService, err := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid JWT configuration")
	}
	authService := service.NewAuthService(userRepo, tokenService)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	healthHandler := handlers.NewHealthHandler()

	// Setup router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	collectors := metrics.New(prometheus.DefaultRegisterer)
	routes.Setup(router, cfg, logger, collectors, authService, authHandler, userHandler, healthHandler)

	// Start server
	logger.Info().Str("port", cfg.Port).Msg("starting user service")
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}
