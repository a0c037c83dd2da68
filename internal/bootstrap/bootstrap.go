package bootstrap

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/enrollhub/internal/app/auth"
	appControllers "github.com/yigit/enrollhub/internal/app/controllers"
	appRepos "github.com/yigit/enrollhub/internal/app/repositories"
	appRoutes "github.com/yigit/enrollhub/internal/app/routes"
	appServices "github.com/yigit/enrollhub/internal/app/services"
	"github.com/yigit/enrollhub/internal/config"
	"github.com/yigit/enrollhub/internal/db"
	appMiddleware "github.com/yigit/enrollhub/internal/middleware"
	pkgAuth "github.com/yigit/enrollhub/internal/pkg/auth"
	"github.com/yigit/enrollhub/internal/pkg/helpers"
	"github.com/yigit/enrollhub/internal/pkg/logger"
	"github.com/yigit/enrollhub/internal/pkg/validation"
	"github.com/yigit/enrollhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService       // Interface type
	EnrollmentService    appServices.EnrollmentService // Interface type
	UserController       *appControllers.UserController
	EnrollmentController *appControllers.EnrollmentController
	CourseController     *appControllers.CourseController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Store                appRepos.Store
	JWTService           *pkgAuth.JWTService
	AuthzService         *appAuth.AuthorizationService
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// CONFIG_PATH overrides the default configs/config.yaml location.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logCfg := logger.ParseConfig(cfg.Logging.Level, cfg.Logging.Format)
	lgr := logger.Configure(logCfg)
	lgr.Info().Str("logLevel", string(logCfg.Level)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")

	if cfg.UsesFallbackSecret() {
		lgr.Warn().Msg("JWT_SECRET is not set, signing tokens with the insecure fallback secret")
	}
	if cfg.Auth.PasswordMode == config.PasswordModePlain {
		lgr.Warn().Msg("Passwords are compared in plaintext; set AUTH_PASSWORD_MODE=bcrypt to hash them")
	}
	return cfg, lgr, nil
}

// SetupDatabase builds the in-memory database and loads the seed data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.MemoryDB, error) {
	matcher, err := pkgAuth.NewPasswordMatcher(cfg.Auth.PasswordMode)
	if err != nil {
		return nil, err
	}

	seedFn, err := seed.Snapshot(matcher)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to prepare seed data")
		return nil, err
	}

	database, err := db.NewMemoryDB(seedFn)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to create in-memory database")
		return nil, err
	}

	lgr.Info().Str("passwordMode", cfg.Auth.PasswordMode).Msg("In-memory database seeded")
	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.MemoryDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	passwords, err := pkgAuth.NewPasswordMatcher(cfg.Auth.PasswordMode)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize password matcher: %w", err)
	}

	deps.Store = appRepos.NewStore(database)
	deps.AuthzService = appAuth.NewAuthorizationService()

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 5*time.Minute),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Store, deps.JWTService, passwords, lgr)
	deps.EnrollmentService = appServices.NewEnrollmentService(deps.Store, deps.AuthzService, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.UserController = appControllers.NewUserController(deps.AuthService, logger.Component("user_controller"))
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService, logger.Component("enrollment_controller"))
	deps.CourseController = appControllers.NewCourseController(deps.EnrollmentService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterGinRules(); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), appMiddleware.Recovery(lgr))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.EnrollmentController,
		deps.UserController,
		deps.CourseController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router, nil
}
