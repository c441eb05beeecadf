package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	loyaltyUseCase "github.com/condoindica/condoindica-api/internal/domain/usecase/loyalty"
	profileUseCase "github.com/condoindica/condoindica-api/internal/domain/usecase/profile"
	recommendationUseCase "github.com/condoindica/condoindica-api/internal/domain/usecase/recommendation"

	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/api/handler"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/api/routes"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/auth"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/codegen"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/database"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/database/migration"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/logger"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/repository"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/storage"
	timeProvider "github.com/condoindica/condoindica-api/internal/infrastructure/adapter/time"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/webhook"
	"github.com/condoindica/condoindica-api/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig(os.Getenv("CI_CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	couponRepo := repository.NewCouponRepository(dbManager.DB(), appLogger)

	// Unit of work (transaction manager)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	// External collaborators
	codeGen := codegen.NewUUIDGenerator()
	notifier := webhook.NewHTTPNotifier(
		cfg.Webhook.ProfileURL,
		cfg.Webhook.RecommendationURL,
		cfg.Webhook.Timeout,
		appLogger,
	)
	blobStore, err := storage.NewS3BlobStore(cfg.Storage)
	if err != nil {
		appLogger.Error("Failed to initialize blob store", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Seed the coupon catalog outside production
	if cfg.Environment != config.Production {
		if err := migration.CreateDefaultCoupons(context.Background(), couponRepo, tp); err != nil {
			appLogger.Error("Failed to seed coupon catalog", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// Initialize use cases
	profileSvc := profileUseCase.NewUseCase(userRepo, notifier, tp, appLogger)
	loyaltySvc := loyaltyUseCase.NewService(
		uow,
		codeGen,
		tp,
		appLogger,
		cfg.Loyalty.MaxRetries,
	)
	recommendationSvc := recommendationUseCase.NewService(
		uow,
		blobStore,
		notifier,
		codeGen,
		tp,
		appLogger,
	)

	// Token verification for the identity provider
	verifier := auth.NewTokenVerifier(cfg.Auth)

	// Initialize API handlers
	healthHandler := handler.NewHealthHandler(dbManager.DB(), appLogger)
	profileHandler := handler.NewProfileHandler(profileSvc, appLogger)
	loyaltyHandler := handler.NewLoyaltyHandler(loyaltySvc, cfg.Loyalty.StatementLimit, appLogger)
	recommendationHandler := handler.NewRecommendationHandler(recommendationSvc, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(
		router,
		verifier,
		profileSvc,
		healthHandler,
		profileHandler,
		loyaltyHandler,
		recommendationHandler,
		appLogger,
	)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or CI_DB_HOST environment variable)")
	}
	if cfg.Database.Port == "" {
		missingConfigs = append(missingConfigs, "database.port (or CI_DB_PORT environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or CI_DB_USER environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or CI_DB_NAME environment variable)")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or CI_JWT_SECRET environment variable)")
	}

	if cfg.Loyalty.MaxRetries == 0 {
		missingConfigs = append(missingConfigs, "loyalty.maxRetries")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// Production-only hardening checks
	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
