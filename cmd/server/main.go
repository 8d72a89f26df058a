package main

import (
	"context"
	"time"

	"cricauction-backend/internal/api/routes"
	"cricauction-backend/internal/auth"
	"cricauction-backend/internal/config"
	"cricauction-backend/internal/database"
	"cricauction-backend/internal/logger"
	"cricauction-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "cricauction-backend/docs" // This is needed for swag
)

//	@title			Cricket Auction Backend API
//	@version		1.0
//	@description	Backend API for organizing cricket player auctions: auctions, teams, players and their statistics.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the session token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{Driver: cfg.DatabaseDriver})
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		logrus.Fatal("Failed to load auth config: ", err)
	}
	// ENVIRONMENT may come from config.yaml rather than the process environment
	authConfig.Environment = cfg.Environment
	if err := authConfig.ValidateConfig(); err != nil {
		logrus.Fatal("Invalid auth config: ", err)
	}

	deps := routes.Dependencies{AuthConfig: authConfig}

	if authConfig.Google.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		provider, err := auth.NewGoogleProvider(ctx, authConfig.Google, authConfig.RedirectURL)
		cancel()
		if err != nil {
			logrus.WithError(err).Warn("Google sign-in disabled")
		} else {
			deps.Provider = provider
		}
	} else {
		logrus.Warn("Google client credentials not set, sign-in disabled")
	}

	if cfg.S3Bucket != "" {
		store, err := storage.NewS3ImageStore(storage.S3Config{
			Endpoint:    cfg.S3Endpoint,
			Region:      cfg.S3Region,
			Bucket:      cfg.S3Bucket,
			AccessKey:   cfg.S3AccessKey,
			SecretKey:   cfg.S3SecretKey,
			SSLDisabled: cfg.S3DisableSSL,
		})
		if err != nil {
			logrus.WithError(err).Warn("Image storage disabled")
		} else {
			deps.ImageStore = store
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(db, cfg, deps)
	if err != nil {
		logrus.Fatal("Failed to set up routes: ", err)
	}

	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server: ", err)
	}
}
