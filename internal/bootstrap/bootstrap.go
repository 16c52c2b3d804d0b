package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/yigit/clubr/internal/app/catalog"
	appControllers "github.com/yigit/clubr/internal/app/controllers"
	appRepos "github.com/yigit/clubr/internal/app/repositories"
	appRoutes "github.com/yigit/clubr/internal/app/routes"
	appServices "github.com/yigit/clubr/internal/app/services"
	"github.com/yigit/clubr/internal/app/session"
	"github.com/yigit/clubr/internal/config"
	"github.com/yigit/clubr/internal/db"
	appMiddleware "github.com/yigit/clubr/internal/middleware"
	pkgAuth "github.com/yigit/clubr/internal/pkg/auth"
	"github.com/yigit/clubr/internal/pkg/helpers"
	"github.com/yigit/clubr/internal/pkg/logger"
	"github.com/yigit/clubr/internal/pkg/validation"
	"github.com/yigit/clubr/internal/pkg/websocket"
	"github.com/yigit/clubr/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Manager           *session.Manager
	Hub               *websocket.Hub
	Tokens            *pkgAuth.TokenService
	SessionService    appServices.SessionService
	SessionMiddleware *appMiddleware.SessionMiddleware
	Controllers       appRoutes.Controllers
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.FromSettings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// LoadCatalog builds the catalog every session starts from. The postgres
// source is read once and the pool closed again.
func LoadCatalog(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*catalog.Catalog, error) {
	fixtures := seed.NewFixtureSource()

	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		lgr.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.DBName).Msg("Loading catalog from database...")
		database, err := db.NewPostgresDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}
		defer database.Close()

		repo := appRepos.NewCatalogRepository(database.Pool, fixtures, cfg.Catalog.UserEmail, lgr)
		c, err := repo.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog from database: %w", err)
		}
		logCatalog(lgr, cfg.Catalog.Source, c)
		return c, nil
	default:
		c, err := fixtures.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load fixture catalog: %w", err)
		}
		logCatalog(lgr, cfg.Catalog.Source, c)
		return c, nil
	}
}

func logCatalog(lgr zerolog.Logger, source string, c *catalog.Catalog) {
	lgr.Info().
		Str("source", source).
		Int("clubs", len(c.Clubs)).
		Int("posts", len(c.Posts)).
		Int("events", len(c.Events)).
		Int("chats", len(c.Chats)).
		Msg("Catalog loaded")
}

// BuildDependencies initializes the session manager, services and controllers.
func BuildDependencies(cfg *config.Config, base *catalog.Catalog, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Hub = websocket.NewHub(lgr.With().Str("component", "hub").Logger())

	deps.Manager = session.NewManager(base, session.ManagerConfig{
		IdleTTL:       helpers.ParseDuration(cfg.Session.IdleTTL, 2*time.Hour),
		SweepInterval: helpers.ParseDuration(cfg.Session.SweepInterval, 5*time.Minute),
		OnExpire:      deps.Hub.Disconnect,
	}, lgr.With().Str("component", "sessions").Logger())

	deps.Tokens = pkgAuth.NewTokenService(pkgAuth.TokenConfig{
		SecretKey:   cfg.Session.Secret,
		TokenTTL:    helpers.ParseDuration(cfg.Session.TokenTTL, 24*time.Hour),
		TokenIssuer: cfg.Session.Issuer,
	})

	deps.SessionService = appServices.NewSessionService(deps.Manager, deps.Tokens, deps.Hub, lgr)
	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(deps.SessionService)

	deps.Controllers = appRoutes.Controllers{
		Health:  appControllers.NewHealthController(deps.Manager),
		Session: appControllers.NewSessionController(deps.SessionService),
		Club:    appControllers.NewClubController(deps.SessionService),
		Admin:   appControllers.NewAdminController(deps.SessionService),
		Profile: appControllers.NewProfileController(deps.SessionService),
		Chat:    appControllers.NewChatController(deps.SessionService),
		Stream: websocket.NewHandler(deps.Hub, appMiddleware.SessionIDFromContext,
			cfg.Server.AllowedOrigins, lgr.With().Str("component", "stream").Logger()),
	}

	return deps, nil
}

// RegisterValidationRules adds the custom binding rules to gin's validator.
func RegisterValidationRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return validation.RegisterRules(v)
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := RegisterValidationRules(); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	router := gin.New()
	router.Use(
		appMiddleware.Recovery(lgr),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.CORS(cfg.Server.AllowedOrigins),
	)

	appRoutes.SetupRouter(router, deps.Controllers, deps.SessionMiddleware)

	lgr.Info().Msg("Router setup complete")
	return router, nil
}
