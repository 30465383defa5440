package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/murad/unidir/internal/app/controllers"
	appMigrations "github.com/murad/unidir/internal/app/migrations"
	appRepos "github.com/murad/unidir/internal/app/repositories"
	appRoutes "github.com/murad/unidir/internal/app/routes"
	appServices "github.com/murad/unidir/internal/app/services"
	"github.com/murad/unidir/internal/cache"
	"github.com/murad/unidir/internal/config"
	"github.com/murad/unidir/internal/db"
	appMiddleware "github.com/murad/unidir/internal/middleware"
	pkgAuth "github.com/murad/unidir/internal/pkg/auth"
	"github.com/murad/unidir/internal/pkg/helpers"
	"github.com/murad/unidir/internal/pkg/logger"
	"github.com/murad/unidir/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services             *appServices.Services
	Repos                *appRepos.Repositories
	Cache                *cache.Client
	JWTService           *pkgAuth.JWTService
	AuthController       *appControllers.AuthController
	UniversityController *appControllers.UniversityController
	CollegeController    *appControllers.CollegeController
	DepartmentController *appControllers.DepartmentController
	ProgramController    *appControllers.ProgramController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// Seeding is best effort, startup continues without it
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool, cfg)

	directoryCache, err := cache.New(cfg)
	if err != nil {
		lgr.Warn().Err(err).Msg("Redis unavailable, continuing without listing cache")
		directoryCache = nil
	} else if directoryCache == nil {
		lgr.Info().Msg("Listing cache not configured")
	}
	deps.Cache = directoryCache

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.Auth.JWTSecret,
		AccessTokenExp: helpers.ParseDuration(cfg.Auth.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.Auth.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, directoryCache, deps.JWTService, cfg.Auth)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Services.AuthService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.UniversityController = appControllers.NewUniversityController(deps.Services.UniversityService)
	deps.CollegeController = appControllers.NewCollegeController(deps.Services.CollegeService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.Services.DepartmentService)
	deps.ProgramController = appControllers.NewProgramController(deps.Services.ProgramService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, dbPool *pgxpool.Pool, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	healthCheck := func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		checks := gin.H{"database": "ok", "cache": "ok"}
		if err := dbPool.Ping(ctx); err != nil {
			checks["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if err := deps.Cache.Health(ctx); err != nil {
			checks["cache"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, checks)
	}

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UniversityController,
		deps.CollegeController,
		deps.DepartmentController,
		deps.ProgramController,
		deps.AuthMiddleware,
		healthCheck,
	)

	return router
}
