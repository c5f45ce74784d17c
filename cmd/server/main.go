package main

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/gatekeep/auth-service/internal/api"
	"github.com/gatekeep/auth-service/internal/core/ports"
	"github.com/gatekeep/auth-service/internal/core/service"
	"github.com/gatekeep/auth-service/internal/core/token"
	"github.com/gatekeep/auth-service/internal/infrastructure/config"
	mongodb "github.com/gatekeep/auth-service/internal/infrastructure/db/mongo"
	redisdb "github.com/gatekeep/auth-service/internal/infrastructure/db/redis"
	"github.com/gatekeep/auth-service/internal/infrastructure/memory"
	"github.com/gatekeep/auth-service/internal/infrastructure/queue"
	"github.com/gatekeep/auth-service/pkg/logger"
)

const whitelistBackendRedis = "redis"

// @title        Auth Service API
// @version      1.0
// @description  Email/password registration and login with JWT-gated routes
// @description  and an opt-in token whitelist for elevated access.
// @BasePath     /
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(context.Background())
	if err != nil {
		stdlog.Fatalf("failed to load configuration: %v", err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The user store is mandatory: fail fast, no degraded mode.
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	users := mongodb.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure user indexes")
	}

	var rdb *redis.Client
	var whitelist ports.Whitelist = memory.NewWhitelist()
	if cfg.Whitelist.Backend == whitelistBackendRedis {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = rdb.Close() }()
		whitelist = redisdb.NewWhitelist(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis whitelist backend")
	}

	dispatcher := queue.NewDispatcher(0, log)
	dispatcher.Start(ctx)

	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	authService := service.NewAuthService(users, hasher, tokens, dispatcher, log)

	e := api.NewRouter(api.Deps{
		Auth:      authService,
		Tokens:    tokens,
		Whitelist: whitelist,
		Events:    dispatcher,
		Mongo:     db,
		Redis:     rdb,
		Log:       log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("auth service started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
