package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maison/backend/config"
	httpDelivery "github.com/maison/backend/internal/delivery/http"
	"github.com/maison/backend/internal/domain"
	"github.com/maison/backend/internal/infrastructure/auth"
	"github.com/maison/backend/internal/infrastructure/cache"
	"github.com/maison/backend/internal/infrastructure/postgres"
	"github.com/maison/backend/internal/infrastructure/resilience"
	"github.com/maison/backend/internal/logger"
	"github.com/maison/backend/internal/usecase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting storefront backend",
		zap.String("version", httpDelivery.Version),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("cache", cfg.Cache.Type))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize infrastructure dependencies
	db, err := postgres.NewConnection(ctx, cfg.Database.DSN, cfg.Database.MigrateOnStart)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(ctx); err != nil {
		return fmt.Errorf("failed to reach database: %w", err)
	}

	cacheRepo, err := newCache(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	defer func() { _ = cacheRepo.Close() }()

	catalogRepo := postgres.NewCatalogRepository(db)
	preferenceRepo := resilience.NewPreferenceRepository(
		postgres.NewPreferenceRepository(db),
		resilience.BreakerConfig{},
		log,
	)

	// Initialize usecase layer
	preferenceService := usecase.NewPreferenceService(
		cacheRepo,
		preferenceRepo,
		usecase.PreferenceServiceConfig{CacheTTL: cfg.Cache.TTL},
		log,
	)
	rankingService := usecase.NewRankingService(
		usecase.RankingConfig{
			Limit:              cfg.Recommendation.Limit,
			EnableDebugLogging: cfg.Recommendation.EnableDebugLogging,
		},
		log,
	)
	recommendationService := usecase.NewRecommendationService(
		catalogRepo,
		preferenceService,
		rankingService,
		usecase.RecommendationServiceConfig{PreferenceTimeout: cfg.Recommendation.PreferenceTimeout},
		log,
	)

	log.Info("recommendations configured",
		zap.Int("limit", rankingService.Limit()),
		zap.Duration("preference_timeout", cfg.Recommendation.PreferenceTimeout),
		zap.Bool("debug", cfg.Recommendation.EnableDebugLogging))

	handler := httpDelivery.NewHandler(
		recommendationService,
		preferenceService,
		usecase.NewCatalogService(catalogRepo),
		log,
	)
	limiter := httpDelivery.NewRateLimiter(cfg.RateLimit.PerIP)
	defer limiter.Stop()

	router := httpDelivery.SetupRouter(cfg, handler, auth.NewJWT(cfg.Auth.JWTSecret), limiter, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

type closableCache interface {
	domain.CacheRepository
	io.Closer
}

func newCache(ctx context.Context, cfg config.CacheConfig) (closableCache, error) {
	switch cfg.Type {
	case "redis":
		c, err := cache.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return c, nil
	default:
		return cache.NewMemoryCache(), nil
	}
}
