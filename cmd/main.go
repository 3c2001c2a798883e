package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/seguro-calcio/team-manager/cache"
	"github.com/seguro-calcio/team-manager/config"
	"github.com/seguro-calcio/team-manager/db"
	"github.com/seguro-calcio/team-manager/handlers"
	"github.com/seguro-calcio/team-manager/live"
	"github.com/seguro-calcio/team-manager/repositories"
	api "github.com/seguro-calcio/team-manager/routes"
	"github.com/seguro-calcio/team-manager/services"
	"github.com/seguro-calcio/team-manager/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database connection established")

	if err := db.Migrate(dbConn); err != nil {
		logger.Error("failed to migrate schema", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("schema migrated")

	// Cache: Redis when reachable, in-process fallback otherwise.
	var kv cache.KVStore
	if cfg.RedisAddr != "" {
		kv, err = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Warn("redis unreachable, falling back to in-memory cache", slog.Any("error", err))
			kv = cache.NewMemory()
		} else {
			logger.Info("redis cache connected", slog.String("addr", cfg.RedisAddr))
		}
	} else {
		kv = cache.NewMemory()
		logger.Info("using in-memory cache")
	}

	// Photo storage is optional.
	var uploader storage.FileUploader
	if cfg.R2Configured() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Info("photo storage not configured, uploads disabled")
	}

	wsHub := live.NewHub()
	go wsHub.Run()
	logger.Info("WebSocket hub started")

	userRepo := repositories.NewGormUserRepository(dbConn)
	playerRepo := repositories.NewGormPlayerRepository(dbConn)
	matchRepo := repositories.NewGormMatchRepository(dbConn)
	trainingRepo := repositories.NewGormTrainingRepository(dbConn)
	callupRepo := repositories.NewGormCallupRepository(dbConn)
	formationRepo := repositories.NewGormFormationRepository(dbConn)
	settingsRepo := repositories.NewGormSettingsRepository(dbConn)
	logger.Info("repositories initialized")

	authService := services.NewAuthService(userRepo, logger)
	playerService := services.NewPlayerService(playerRepo, uploader, kv, logger)
	matchService := services.NewMatchService(matchRepo, wsHub, kv, logger)
	trainingService := services.NewTrainingService(trainingRepo)
	callupService := services.NewCallupService(callupRepo)
	formationService := services.NewFormationService(formationRepo)
	statsService := services.NewStatsService(playerRepo, matchRepo, trainingRepo, kv, logger)
	settingsService := services.NewSettingsService(settingsRepo)
	adminService := services.NewAdminService(dbConn, kv, logger)
	logger.Info("services initialized")

	bootstrapCtx, cancelBootstrap := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authService.EnsureAdminUser(bootstrapCtx, cfg.AdminUsername, cfg.AdminPassword, cfg.AdminEmail); err != nil {
		cancelBootstrap()
		logger.Error("failed to ensure admin user", slog.Any("error", err))
		os.Exit(1)
	}
	cancelBootstrap()

	router := api.SetupRoutes(api.Handlers{
		Auth:      handlers.NewAuthHandler(authService, cfg.JWTSecretKey),
		Player:    handlers.NewPlayerHandler(playerService),
		Match:     handlers.NewMatchHandler(matchService),
		Training:  handlers.NewTrainingHandler(trainingService),
		Callup:    handlers.NewCallupHandler(callupService),
		Formation: handlers.NewFormationHandler(formationService),
		Stats:     handlers.NewStatsHandler(statsService),
		Settings:  handlers.NewSettingsHandler(settingsService),
		Admin:     handlers.NewAdminHandler(adminService),
		WebSocket: handlers.NewWebSocketHandler(wsHub, matchService),
	}, cfg.JWTSecretKey)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
