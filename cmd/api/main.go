package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pawfinder/adoption-platform/internal/api"
	"github.com/pawfinder/adoption-platform/internal/infrastructure/auth"
	mongodb "github.com/pawfinder/adoption-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/pawfinder/adoption-platform/internal/infrastructure/db/redis"
	"github.com/pawfinder/adoption-platform/internal/infrastructure/payments"
	"github.com/pawfinder/adoption-platform/internal/pkg/config"
	"github.com/pawfinder/adoption-platform/pkg/logger"
)

// @title        Pet Adoption Platform API
// @version      1.0
// @description  REST API for pet listings, adoption requests and donation campaigns.
// @BasePath     /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	ensureIndexes(ctx, db, log)

	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	provider := payments.NewStripeProvider(cfg.Stripe.SecretKey)

	e := api.NewRouter(db, rdb, verifier, provider, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// ensureIndexes creates the required indexes on startup. Failures are logged
// but do not prevent the server from starting; the uniqueness guarantees they
// back are also enforced with pre-checks at the service layer.
func ensureIndexes(ctx context.Context, db *mongo.Database, log zerolog.Logger) {
	idxCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if err := mongodb.NewPetRepository(db).EnsureIndexes(idxCtx); err != nil {
		log.Warn().Err(err).Msg("pet indexes not created")
	}
	if err := mongodb.NewRequestRepository(db).EnsureIndexes(idxCtx); err != nil {
		log.Warn().Err(err).Msg("adoption request indexes not created")
	}
	if err := mongodb.NewUserRepository(db).EnsureIndexes(idxCtx); err != nil {
		log.Warn().Err(err).Msg("user indexes not created")
	}
}
