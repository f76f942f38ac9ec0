package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/gaeliza/match-system/docs"
	"github.com/gaeliza/match-system/internal/api/handler"
	"github.com/gaeliza/match-system/internal/api/middleware"
	"github.com/gaeliza/match-system/internal/core/service"
	mongodb "github.com/gaeliza/match-system/internal/infrastructure/db/mongo"
	redisdb "github.com/gaeliza/match-system/internal/infrastructure/db/redis"
)

// AuthConfig carries the token settings injected at startup.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// ScoreEnqueuer is the scoreboard fan-out dependency built in main (the
// dispatcher), injected here so the router never owns goroutine lifecycles.
type ScoreEnqueuer = service.ScoreEnqueuer

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, scores ScoreEnqueuer, authCfg AuthConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("gaeliza"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	teamRepo := mongodb.NewTeamRepository(db)
	playerRepo := mongodb.NewPlayerRepository(db)
	matchRepo := mongodb.NewMatchRepository(db)
	actionRepo := mongodb.NewActionRepository(db)
	scoreboard := redisdb.NewScoreboard(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, authCfg.JWTSecret, authCfg.TokenTTL)
	teamService := service.NewTeamService(teamRepo, log)
	playerService := service.NewPlayerService(playerRepo, teamRepo, log)
	matchService := service.NewMatchService(matchRepo, teamRepo, scoreboard, log)
	actionService := service.NewActionService(actionRepo, matchRepo, scores, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	teamHandler := handler.NewTeamHandler(teamService)
	playerHandler := handler.NewPlayerHandler(playerService)
	matchHandler := handler.NewMatchHandler(matchService)
	actionHandler := handler.NewActionHandler(actionService)
	authMiddleware := middleware.Auth(authService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authMiddleware)

	// --- Entity routes (bearer-protected) ---
	v1 := e.Group("/v1", authMiddleware)
	v1.POST("/teams", teamHandler.Create)
	v1.GET("/teams", teamHandler.List)
	v1.POST("/players", playerHandler.Create)
	v1.GET("/players", playerHandler.List)
	v1.POST("/matches", matchHandler.Create)
	v1.GET("/matches", matchHandler.List)
	v1.GET("/matches/:id", matchHandler.Get)
	v1.PUT("/matches/:id", matchHandler.Update)
	v1.DELETE("/matches/:id", matchHandler.Delete)
	v1.GET("/matches/:id/summary", matchHandler.Summary)
	v1.GET("/matches/:id/actions", actionHandler.ListByMatch)
	v1.POST("/actions", actionHandler.Record)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
