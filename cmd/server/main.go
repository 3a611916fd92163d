package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/house-hunter/marketplace-api/internal/api"
	"github.com/house-hunter/marketplace-api/internal/core/service"
	mongostore "github.com/house-hunter/marketplace-api/internal/infrastructure/db/mongo"
	redisstore "github.com/house-hunter/marketplace-api/internal/infrastructure/db/redis"
	"github.com/house-hunter/marketplace-api/internal/infrastructure/queue"
	"github.com/house-hunter/marketplace-api/internal/pkg/config"
	"github.com/house-hunter/marketplace-api/pkg/logger"
	"github.com/house-hunter/marketplace-api/pkg/password"
	"github.com/house-hunter/marketplace-api/pkg/token"
)

const shutdownTimeout = 10 * time.Second

// @title           House Hunter Marketplace API
// @version         1.0
// @description     Rental listing marketplace: accounts, listings, and bookings.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Stores ---
	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// --- Repositories ---
	userRepo := mongostore.NewUserRepository(db)
	houseRepo := mongostore.NewHouseRepository(db)
	bookingRepo := mongostore.NewBookingRepository(db)
	activityRepo := mongostore.NewActivityRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index bootstrap failed")
	}
	if err := houseRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("house index bootstrap failed")
	}

	// --- Activity pipeline ---
	dedup := redisstore.NewDedupChecker(rdb)
	activityService := service.NewActivityService(activityRepo, dedup, log)
	dispatcher := queue.NewDispatcher(0, activityService, log)
	dispatcher.Start(ctx)

	// --- Services ---
	hasher := password.NewHasher(cfg.BcryptCost)
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)
	authService := service.NewAuthService(userRepo, hasher, log)
	houseService := service.NewHouseService(houseRepo, dispatcher, log)
	bookingService := service.NewBookingService(bookingRepo, dispatcher, log)

	e := api.NewRouter(api.Dependencies{
		DB:       db,
		Redis:    rdb,
		Tokens:   tokens,
		Users:    userRepo,
		Auth:     authService,
		Houses:   houseService,
		Bookings: bookingService,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}
