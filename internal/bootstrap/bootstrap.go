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

	appControllers "github.com/campushub/campushub/internal/app/controllers"
	appMigrations "github.com/campushub/campushub/internal/app/migrations"
	appRepos "github.com/campushub/campushub/internal/app/repositories"
	appRoutes "github.com/campushub/campushub/internal/app/routes"
	appServices "github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/config"
	"github.com/campushub/campushub/internal/db"
	appMiddleware "github.com/campushub/campushub/internal/middleware"
	pkgAuth "github.com/campushub/campushub/internal/pkg/auth"
	"github.com/campushub/campushub/internal/pkg/filestorage"
	"github.com/campushub/campushub/internal/pkg/helpers"
	"github.com/campushub/campushub/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                  *appRepos.Repositories
	Services               *appServices.Services
	AuthController         *appControllers.AuthController
	ComplaintController    *appControllers.ComplaintController
	HelpdeskController     *appControllers.HelpdeskController
	PollController         *appControllers.PollController
	NotificationController *appControllers.NotificationController
	NoticeController       *appControllers.NoticeController
	ClubController         *appControllers.ClubController
	EventController        *appControllers.EventController
	PlacementController    *appControllers.PlacementController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	JWTService             *pkgAuth.JWTService
	FileStorage            *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase establishes the database connection and runs migrations
func SetupDatabase(cfg *config.Config) (*db.PostgresDB, error) {
	logger.Info().Msg("Establishing database connection")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		database.Pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	migrationsDir := filepath.Join("internal", "app", "migrations", "sql")
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Pool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		database.Pool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	logger.Info().Msg("Database ready")
	return database, nil
}

// BuildDependencies initializes repositories, services and controllers
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, dbPool *pgxpool.Pool) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Repos = appRepos.NewRepositories(dbPool)

	fileStorageBaseURL := cfg.Server.BaseURL
	fileStorage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	deps.FileStorage = fileStorage

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, database, deps.JWTService, fileStorage)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.ComplaintController = appControllers.NewComplaintController(deps.Services.ComplaintService, fileStorage)
	deps.HelpdeskController = appControllers.NewHelpdeskController(deps.Services.HelpdeskService)
	deps.PollController = appControllers.NewPollController(deps.Services.PollService)
	deps.NotificationController = appControllers.NewNotificationController(deps.Services.NotificationService)
	deps.NoticeController = appControllers.NewNoticeController(deps.Services.NoticeService)
	deps.ClubController = appControllers.NewClubController(deps.Services.ClubService)
	deps.EventController = appControllers.NewEventController(deps.Services.EventService)
	deps.PlacementController = appControllers.NewPlacementController(deps.Services.PlacementService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ComplaintController,
		deps.HelpdeskController,
		deps.PollController,
		deps.NotificationController,
		deps.NoticeController,
		deps.ClubController,
		deps.EventController,
		deps.PlacementController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
