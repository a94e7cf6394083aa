package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/salonsync/salon_management_app/internal/core/domain"
	portssvc "github.com/salonsync/salon_management_app/internal/core/ports/services"
	"github.com/salonsync/salon_management_app/internal/core/services"
	"github.com/salonsync/salon_management_app/internal/handlers"
	"github.com/salonsync/salon_management_app/internal/middleware"
	"github.com/salonsync/salon_management_app/internal/platform/config"
	"github.com/salonsync/salon_management_app/internal/platform/validation"
	"github.com/salonsync/salon_management_app/internal/repositories/database/pgsql"
	"github.com/salonsync/salon_management_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title SMA Backend API
// @version 1.0
// @description Salon management backend: sales, commissions, cash flow, payroll and vault.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wire repositories and services
	repoProvider := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(&repoProvider, cfg)

	// Seed the default users so a fresh install is reachable
	seedDefaultUsers(context.Background(), serviceContainer, cfg, logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Let binding tags like gte/lte apply to decimal money fields
	validation.RegisterDecimalType()

	r := gin.New()

	// Global middleware (logging, recovery, CORS for the browser client)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations using a temporary
// database/sql connection over the pgx stdlib driver.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// seedDefaultUsers makes sure the configured admin and reception accounts
// exist. Failures are logged but do not stop the server.
func seedDefaultUsers(ctx context.Context, services *portssvc.ServiceContainer, cfg *config.Config, logger *slog.Logger) {
	if err := services.User.EnsureDefaultUser(ctx, "Admin", cfg.DefaultAdminEmail, cfg.DefaultAdminPassword, domain.RoleAdmin); err != nil {
		logger.Error("Failed to seed default admin user", slog.String("error", err.Error()))
	}
	if err := services.User.EnsureDefaultUser(ctx, "Recepção", cfg.DefaultReceptionEmail, cfg.DefaultReceptionPassword, domain.RoleReception); err != nil {
		logger.Error("Failed to seed default reception user", slog.String("error", err.Error()))
	}
}
