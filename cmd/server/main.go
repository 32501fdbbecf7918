package main

import (
	"log"
	"os"

	"baseball-stats-backend/internal/api/routes"
	"baseball-stats-backend/internal/config"
	"baseball-stats-backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "baseball-stats-backend/docs" // This is needed for swag
)

//	@title			Baseball Statistics API
//	@version		1.0
//	@description	Read-only reports over a play-by-play corpus of regular-season baseball games: team wins, head-to-head matchups, player splits and leaderboards.

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8080
//	@BasePath	/

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
	setupLogging(cfg)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		LogLevel:     database.ParseLogLevel(cfg.DatabaseLogLevel),
		MaxOpenConns: cfg.MaxOpenConns,
		MaxIdleConns: cfg.MaxIdleConns,
		AutoMigrate:  cfg.AutoMigrate,
	})
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	logrus.WithFields(logrus.Fields{
		"first_year":     cfg.Reports.FirstYear,
		"last_year":      cfg.Reports.LastYear,
		"default_season": cfg.Reports.DefaultSeason,
	}).Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(cfg *config.Config) {
	if cfg.IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetOutput(os.Stdout)

	switch cfg.LogLevel {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
