package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/coursehub/internal/app/auth"
	appControllers "github.com/yigit/coursehub/internal/app/controllers"
	appMigrations "github.com/yigit/coursehub/internal/app/migrations"
	appRepos "github.com/yigit/coursehub/internal/app/repositories"
	appRoutes "github.com/yigit/coursehub/internal/app/routes"
	appServices "github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/config"
	"github.com/yigit/coursehub/internal/db"
	appMiddleware "github.com/yigit/coursehub/internal/middleware"
	pkgAuth "github.com/yigit/coursehub/internal/pkg/auth"
	"github.com/yigit/coursehub/internal/pkg/helpers"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// DefaultConfigPath is where the YAML config is looked up
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos            *appRepos.Repositories
	Configurator     *appAuth.Configurator
	SessionCodec     *pkgAuth.SessionCodec
	AuthService      *appServices.AuthService
	CourseService    *appServices.CourseService
	AuthController   *appControllers.AuthController
	CourseController *appControllers.CourseController
	HeaderController *appControllers.HeaderController
	AuthMiddleware   *appMiddleware.AuthMiddleware
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool, lgr).Up(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildAuth builds the auth configurator and the session codec. The Google
// provider is only registered when its client id and secret are set; a
// failed discovery leaves the password strategy working on its own.
func BuildAuth(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*appAuth.Configurator, *pkgAuth.SessionCodec) {
	backend := appAuth.NewBackendClient(cfg.Auth.BackendAPIURL, nil, appAuth.NewLogger(lgr, cfg.AuthDebug()))

	var google *appAuth.GoogleProvider
	if cfg.GoogleEnabled() {
		provider, err := appAuth.NewGoogleProvider(ctx, appAuth.GoogleConfig{
			ClientID:     cfg.Auth.GoogleClientID,
			ClientSecret: cfg.Auth.GoogleClientSecret,
			Issuer:       cfg.Auth.GoogleIssuer,
			RedirectURL:  cfg.BaseURL() + "/auth/callback/google",
		})
		if err != nil {
			lgr.Error().Err(err).Msg("Google provider unavailable, continuing with credentials only")
		} else {
			google = provider
		}
	}

	configurator := appAuth.NewConfigurator(appAuth.AuthConfig{
		BaseURL: cfg.BaseURL(),
		Debug:   cfg.AuthDebug(),
	}, backend, google, lgr)

	codec := pkgAuth.NewSessionCodec(pkgAuth.SessionConfig{
		Secret: cfg.Auth.Secret,
		MaxAge: helpers.ParseDuration("auth.session_max_age", cfg.Auth.SessionMaxAge, 30*24*time.Hour),
		Issuer: "coursehub",
	})
	return configurator, codec
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	if err := cfg.ValidateAuth(); err != nil {
		return nil, fmt.Errorf("invalid auth configuration: %w", err)
	}

	deps := &Dependencies{Logger: lgr}
	deps.Repos = appRepos.NewRepositories(database.Pool)
	deps.Configurator, deps.SessionCodec = BuildAuth(ctx, cfg, lgr)

	deps.AuthService = appServices.NewAuthService(
		deps.Configurator,
		deps.SessionCodec,
		deps.Repos.Users,
		deps.Repos.Accounts,
		lgr,
	)
	deps.CourseService = appServices.NewCourseService(deps.Repos, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.AuthService, lgr)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, cfg.Auth.SecureCookies, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, lgr)
	deps.HeaderController = appControllers.NewHeaderController()

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
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CourseController,
		deps.HeaderController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
