package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/gatekeep/auth-service/docs"
	"github.com/gatekeep/auth-service/internal/api/handler"
	"github.com/gatekeep/auth-service/internal/api/middleware"
	"github.com/gatekeep/auth-service/internal/core/ports"
)

// Deps carries everything the router needs to wire handlers and middleware.
// All components are constructed once in main and injected here, so tests
// can assemble isolated instances.
type Deps struct {
	Auth      ports.AuthService
	Tokens    middleware.TokenVerifier
	Whitelist ports.Whitelist
	Events    ports.AuthEventSink
	Mongo     *mongo.Database
	Redis     *redis.Client // nil unless the redis whitelist backend is in use
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auth"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	accessHandler := handler.NewAccessHandler(deps.Whitelist, deps.Events)
	tokenAuth := middleware.TokenAuth(deps.Tokens)
	whitelisted := middleware.Whitelisted(deps.Whitelist)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Token-gated routes ---
	e.GET("/welcome", accessHandler.Welcome, tokenAuth)
	e.GET("/whitelistMe", accessHandler.WhitelistMe, tokenAuth)
	e.GET("/welcomeSecret", accessHandler.WelcomeSecret, tokenAuth, whitelisted)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	if deps.Mongo != nil {
		healthHandler := handler.NewHealthHandler()
		readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

		e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
		e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	}

	return e
}
