package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anylist/anylist-api/internal/api"
	"github.com/anylist/anylist-api/internal/core/service"
	"github.com/anylist/anylist-api/internal/infrastructure/config"
	mongodb "github.com/anylist/anylist-api/internal/infrastructure/db/mongo"
	redisdb "github.com/anylist/anylist-api/internal/infrastructure/db/redis"
	"github.com/anylist/anylist-api/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = mongoClient.Disconnect(ctx) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongodb.NewUserRepository(db)
	itemRepo := mongodb.NewItemRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := itemRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("item indexes failed")
	}

	// --- Core services ---
	codec := service.NewJWTCodec(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)
	authenticator := service.NewAuthenticator(codec, userRepo, log)
	authService := service.NewAuthService(userRepo, codec, throttle, log)
	userService := service.NewUserService(userRepo, log)
	itemService := service.NewItemService(itemRepo, log)
	seedService := service.NewSeedService(userRepo, itemRepo, cfg.Env, log)

	// --- HTTP ---
	e, err := api.NewRouter(api.RouterDeps{
		Authenticator: authenticator,
		AuthService:   authService,
		UserService:   userService,
		ItemService:   itemService,
		SeedService:   seedService,
		Mongo:         db,
		Redis:         rdb,
		Logger:        log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("router build failed")
	}

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("api starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("api stopped")
}
