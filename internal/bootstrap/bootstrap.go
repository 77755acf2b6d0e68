// Package bootstrap wires configuration, logging, storage and the HTTP
// router into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campushq/studenthub/internal/app/controllers"
	appRepos "github.com/campushq/studenthub/internal/app/repositories"
	appRoutes "github.com/campushq/studenthub/internal/app/routes"
	appServices "github.com/campushq/studenthub/internal/app/services"
	"github.com/campushq/studenthub/internal/config"
	"github.com/campushq/studenthub/internal/db"
	appMiddleware "github.com/campushq/studenthub/internal/middleware"
	pkgAuth "github.com/campushq/studenthub/internal/pkg/auth"
	"github.com/campushq/studenthub/internal/pkg/logger"
	"github.com/campushq/studenthub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService    *appServices.StudentService
	AuthService       *appServices.AuthService
	StudentController *appControllers.StudentController
	AuthController    *appControllers.AuthController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	StudentRepo       appRepos.StudentRepository
	UserRepo          appRepos.UserRepository
	JWTService        *pkgAuth.JWTService
	Logger            zerolog.Logger
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

// SetupDatabase connects the configured student store backend. The
// returned MongoDB handle is nil when the in-memory driver is selected.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.MongoDB, error) {
	if cfg.Database.Driver == "memory" {
		lgr.Info().Msg("Using in-memory student store")
		return nil, nil
	}

	lgr.Info().Str("uri", cfg.Database.URI).Msg("Establishing MongoDB connection...")
	database, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to MongoDB")
		return nil, err
	}

	lgr.Info().Msg("MongoDB connection successfully established.")
	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.MongoDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	if database != nil {
		deps.StudentRepo = appRepos.NewMongoStudentRepository(database.Collection)
	} else {
		deps.StudentRepo = appRepos.NewMemoryStudentRepository()
	}

	userRepo, err := appRepos.NewInMemoryUserRepository(cfg.Auth.Users)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to build credential table")
		return nil, fmt.Errorf("failed to build credential table: %w", err)
	}
	deps.UserRepo = userRepo

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		TokenExpiration: cfg.TokenExpiration(),
		Issuer:          cfg.JWT.Issuer,
		Audience:        cfg.JWT.Audience,
	})

	deps.StudentService = appServices.NewStudentService(deps.StudentRepo, lgr)
	deps.AuthService = appServices.NewAuthService(deps.UserRepo, deps.JWTService, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, lgr)

	// Seed demo students outside production so a fresh checkout has data
	// to browse.
	if strings.ToLower(cfg.Server.Mode) != "production" {
		if err := seed.CreateDefaultStudents(context.Background(), deps.StudentService, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to seed default students, proceeding anyway...")
		}
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.AuthMiddleware,
	)

	return router
}
