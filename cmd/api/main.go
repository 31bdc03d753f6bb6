package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/99minutos/identity-service/internal/api"
	"github.com/99minutos/identity-service/internal/api/handler"
	"github.com/99minutos/identity-service/internal/core/service"
	"github.com/99minutos/identity-service/internal/infrastructure/db/mongo"
	"github.com/99minutos/identity-service/internal/infrastructure/db/redis"
	"github.com/99minutos/identity-service/internal/infrastructure/google"
	"github.com/99minutos/identity-service/internal/infrastructure/token"
	"github.com/99minutos/identity-service/internal/pkg/config"
	"github.com/99minutos/identity-service/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

// @title                       Identity Service API
// @version                     1.0
// @description                 Exchanges Google ID tokens for application session tokens.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "identity-service",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	redisClient, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer redisClient.Close()

	userRepo := mongo.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}

	verifier, err := google.New(ctx, cfg.Google.ClientID)
	if err != nil {
		log.Fatal().Err(err).Msg("google verifier init failed")
	}

	issuer, err := token.NewJWTIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("session token issuer misconfigured")
	}

	repo := redis.NewRoleCache(userRepo, redisClient, cfg.Redis.RoleCacheTTL, log)
	authService := service.NewAuthService(repo, verifier, issuer, log)

	e := api.NewRouter(api.Dependencies{
		AuthService: authService,
		TokenParser: issuer,
		Health: map[string]handler.Pinger{
			"mongodb": handler.MongoPinger(mongoClient),
			"redis":   handler.RedisPinger(redisClient),
		},
		Log: log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
