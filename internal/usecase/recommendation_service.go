package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/maison/backend/internal/domain"
	"github.com/maison/backend/internal/metrics"
)

// PreferenceReader loads quiz answers for a user
type PreferenceReader interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserPreferences, error)
}

// RecommendationServiceConfig holds configuration for the recommendation service
type RecommendationServiceConfig struct {
	PreferenceTimeout time.Duration
}

// RecommendationService builds the "Recommended for You" rail
type RecommendationService struct {
	catalog           domain.CatalogRepository
	preferences       PreferenceReader
	ranking           *RankingService
	preferenceTimeout time.Duration
	logger            *zap.Logger
}

// NewRecommendationService creates a new recommendation service with dependencies
func NewRecommendationService(
	catalog domain.CatalogRepository,
	preferences PreferenceReader,
	ranking *RankingService,
	config RecommendationServiceConfig,
	logger *zap.Logger,
) *RecommendationService {
	timeout := config.PreferenceTimeout
	if timeout <= 0 {
		timeout = 300 * time.Millisecond
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &RecommendationService{
		catalog:           catalog,
		preferences:       preferences,
		ranking:           ranking,
		preferenceTimeout: timeout,
		logger:            logger.Named("recommendations"),
	}
}

// GetRecommendations returns the ranked rail for a shopper. userID is nil for
// guests. Preferences and catalog load concurrently. Preference lookup
// failures degrade to the fallback ordering; only a catalog failure is
// returned as an error.
func (s *RecommendationService) GetRecommendations(ctx context.Context, userID *uuid.UUID) (*domain.Recommendations, error) {
	var (
		prefs    *domain.UserPreferences
		products []domain.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	if userID != nil {
		g.Go(func() error {
			prefs = s.loadPreferences(gctx, *userID)
			return nil
		})
	}
	g.Go(func() error {
		var err error
		products, err = s.catalog.ListActive(gctx)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	metrics.CatalogSize.Set(float64(len(products)))

	if !prefs.Personalizable() {
		metrics.RecommendationRequests.WithLabelValues(strconv.FormatBool(false)).Inc()
		return &domain.Recommendations{
			Fallback:     s.ranking.Fallback(products),
			Personalized: false,
			Reason:       nil,
		}, nil
	}

	start := time.Now()
	ranked := s.ranking.Rank(products, prefs)
	metrics.RankingDuration.Observe(time.Since(start).Seconds())

	reason := personalizationReason(prefs)
	metrics.RecommendationRequests.WithLabelValues(strconv.FormatBool(true)).Inc()

	return &domain.Recommendations{
		Ranked:       ranked,
		Personalized: true,
		Reason:       &reason,
	}, nil
}

// loadPreferences returns nil whenever preferences cannot be used
func (s *RecommendationService) loadPreferences(ctx context.Context, userID uuid.UUID) *domain.UserPreferences {
	ctx, cancel := context.WithTimeout(ctx, s.preferenceTimeout)
	defer cancel()

	prefs, err := s.preferences.Get(ctx, userID)
	if err == nil {
		return prefs
	}

	reason := "error"
	switch {
	case errors.Is(err, domain.ErrPreferencesNotFound):
		reason = "not_found"
	case errors.Is(err, context.DeadlineExceeded):
		reason = "timeout"
	case errors.Is(err, domain.ErrPreferenceStoreUnavailable):
		reason = "unavailable"
	}
	metrics.PreferenceLookupFailures.WithLabelValues(reason).Inc()

	if reason != "not_found" {
		s.logger.Warn("preference lookup failed, serving fallback",
			zap.Stringer("user_id", userID),
			zap.String("reason", reason),
			zap.Error(err))
	}
	return nil
}

// personalizationReason is the response-level explanation for a scored rail
func personalizationReason(prefs *domain.UserPreferences) string {
	if prefs.FavoriteStyle == "" {
		return "your style preferences"
	}
	return fmt.Sprintf("your %s style", prefs.FavoriteStyle)
}
