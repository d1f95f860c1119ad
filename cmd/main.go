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

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"

	"github.com/Dosada05/prediction-pool/config"
	"github.com/Dosada05/prediction-pool/db"
	"github.com/Dosada05/prediction-pool/handlers"
	"github.com/Dosada05/prediction-pool/live"
	"github.com/Dosada05/prediction-pool/repositories"
	api "github.com/Dosada05/prediction-pool/routes"
	"github.com/Dosada05/prediction-pool/services"
	"github.com/Dosada05/prediction-pool/storage"
)

const shutdownTimeout = 15 * time.Second

// @title Prediction Pool API
// @version 1.0
// @description Scoring, leaderboard and group standings for a football prediction pool.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("primary_team", cfg.PrimaryTeam),
		slog.Int("qualifying_thirds", cfg.QualifyingThirds),
	)

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second, logger)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := db.EnsureSchema(ctx, dbConn); err != nil {
		logger.Error("failed to apply database schema", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database schema ready")

	var uploader storage.FileUploader
	if cfg.R2.Enabled() {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2.AccountID,
			AccessKeyID:     cfg.R2.AccessKeyID,
			SecretAccessKey: cfg.R2.SecretAccessKey,
			BucketName:      cfg.R2.BucketName,
			PublicBaseURL:   cfg.R2.PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized", slog.String("bucket", cfg.R2.BucketName))
	} else {
		logger.Warn("R2 is not configured, leaderboard export is disabled")
	}

	wsHub := live.NewHub(logger)
	go wsHub.Run(ctx)

	userRepo := repositories.NewPostgresUserRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	predictionRepo := repositories.NewPostgresPredictionRepository(dbConn)
	configRepo := repositories.NewPostgresConfigRepository(dbConn)
	historyRepo := repositories.NewPostgresLeaderboardHistoryRepository(dbConn)
	extraBetRepo := repositories.NewPostgresExtraBetRepository(dbConn)
	tx := repositories.NewPostgresTransactor(dbConn, logger)

	configStore := services.NewConfigStore(configRepo, tx, cfg.PrimaryTeam, logger)
	leaderboardService := services.NewLeaderboardService(
		userRepo,
		matchRepo,
		predictionRepo,
		historyRepo,
		configStore,
		tx,
		wsHub,
		logger,
	)
	authService := services.NewAuthService(userRepo, logger)
	userService := services.NewUserService(userRepo, leaderboardService, logger)
	matchService := services.NewMatchService(matchRepo, leaderboardService, wsHub, cfg.PrimaryTeam, logger)
	predictionService := services.NewPredictionService(predictionRepo, matchRepo, logger)
	extraBetService := services.NewExtraBetService(extraBetRepo, matchRepo, tx, logger)
	standingsService := services.NewStandingsService(userRepo, matchRepo, predictionRepo, cfg.QualifyingThirds, logger)
	configService := services.NewConfigService(configStore, configRepo, tx, leaderboardService, wsHub, logger)
	exportService := services.NewExportService(leaderboardService, uploader, logger)
	notificationService := services.NewNotificationService(wsHub, logger)

	router := chi.NewRouter()
	api.SetupRoutes(router, api.Handlers{
		Auth:         handlers.NewAuthHandler(authService, cfg.JWTSecretKey),
		User:         handlers.NewUserHandler(userService),
		Match:        handlers.NewMatchHandler(matchService),
		Prediction:   handlers.NewPredictionHandler(predictionService),
		ExtraBet:     handlers.NewExtraBetHandler(extraBetService),
		Leaderboard:  handlers.NewLeaderboardHandler(leaderboardService, exportService),
		Standings:    handlers.NewStandingsHandler(standingsService),
		Config:       handlers.NewConfigHandler(configService),
		Notification: handlers.NewNotificationHandler(notificationService),
		WebSocket:    handlers.NewWebSocketHandler(wsHub, cfg.CORSAllowedOrigins, logger),
	}, cfg.JWTSecretKey, cfg.CORSAllowedOrigins)

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

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case <-ctx.Done():
		logger.Info("shutdown signal received")

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))
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
