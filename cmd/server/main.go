package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mehedihb/kagojghor-backend/config"
	"github.com/mehedihb/kagojghor-backend/internal/app/controller"
	"github.com/mehedihb/kagojghor-backend/internal/app/repository"
	"github.com/mehedihb/kagojghor-backend/internal/app/service"
	"github.com/mehedihb/kagojghor-backend/internal/db"
	"github.com/mehedihb/kagojghor-backend/internal/middleware"
	"github.com/mehedihb/kagojghor-backend/internal/ratelimit"
	"github.com/mehedihb/kagojghor-backend/internal/router"
	"github.com/mehedihb/kagojghor-backend/internal/storage"
	"github.com/mehedihb/kagojghor-backend/pkg/logger"
	"github.com/mehedihb/kagojghor-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting KAGOJGHOR Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Seed database (optional)
	if err := db.Seed(); err != nil {
		logger.Warn("Failed to seed database", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Initialize Redis for the token blacklist. The server still runs
	// without it, logout just stops revoking tokens before expiry.
	blacklistEnabled := true
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, token blacklist disabled", map[string]interface{}{
			"error": err.Error(),
		})
		blacklistEnabled = false
	} else {
		defer func() {
			if err := redis.Close(); err != nil {
				logger.Error("Failed to close Redis connection", err)
			}
		}()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	passwordResetRepo := repository.NewPasswordResetRepository(db.GetDB())
	clientRepo := repository.NewClientRepository(db.GetDB())
	institutionRepo := repository.NewInstitutionRepository(db.GetDB())
	documentRepo := repository.NewDocumentRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	passwordResetService := service.NewPasswordResetService(passwordResetRepo, userRepo)
	clientService := service.NewClientService(clientRepo)
	institutionService := service.NewInstitutionService(institutionRepo)
	certificateService := service.NewCertificateService(documentRepo)
	billService := service.NewBillService(documentRepo)
	documentService := service.NewDocumentService(documentRepo, institutionRepo)
	dashboardService := service.NewDashboardService(documentRepo, clientRepo, institutionRepo)
	reportService := service.NewReportService(documentRepo)

	// The generative fallback only runs when an API key is configured;
	// without one, extraction stays purely deterministic.
	var fallback service.StructuredExtractor
	if cfg.OpenAI.APIKey != "" {
		fallback = service.NewOpenAIExtractor(cfg)
	} else {
		logger.Warn("OPENAI_API_KEY not set, extraction fallback disabled")
	}
	extractionService := service.NewExtractionService(
		service.NewPDFTextReader(),
		fallback,
		ratelimit.NewSlidingWindow(cfg.Extraction.RateLimit, cfg.Extraction.RateLimitWindow),
	)

	// Initialize S3 storage
	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize controllers
	authController := controller.NewAuthController(
		authService,
		passwordResetService,
		cfg.JWT.AccessTokenExpiry,
		blacklistEnabled,
	)
	clientController := controller.NewClientController(clientService)
	institutionController := controller.NewInstitutionController(institutionService)
	documentController := controller.NewDocumentController(documentService, billService, certificateService)
	extractionController := controller.NewExtractionController(extractionService, s3Storage)
	dashboardController := controller.NewDashboardController(dashboardService)
	reportController := controller.NewReportController(reportService)
	uploadController := controller.NewUploadController(s3Storage)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret, blacklistEnabled)

	// Setup router
	r := router.NewRouter(
		authController,
		clientController,
		institutionController,
		documentController,
		extractionController,
		dashboardController,
		reportController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
