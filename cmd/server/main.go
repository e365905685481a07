package main

import (
	"context"
	"log"
	"os"

	"procook-backend/internal/api/routes"
	"procook-backend/internal/config"
	"procook-backend/internal/database"
	"procook-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "procook-backend/docs" // This is needed for swag
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			ProCook API
//	@version		1.0
//	@description	Backend API for ProCook, a recipe sharing site with comments, ratings and saved recipes.

//	@contact.name	ProCook Support
//	@contact.email	support@procook.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8000
//	@BasePath	/api

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Initialize asset store
	assets, err := storage.New(context.Background(), cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize asset store:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg, assets, version)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8000"
	}

	logrus.WithFields(logrus.Fields{
		"version":     version,
		"environment": cfg.Environment,
		"asset_store": cfg.AssetStore,
	}).Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}
