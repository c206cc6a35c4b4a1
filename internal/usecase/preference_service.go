package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/maison/backend/internal/domain"
)

// PreferenceServiceConfig holds configuration for the preference service
type PreferenceServiceConfig struct {
	CacheTTL time.Duration
}

// PreferenceService reads and records style-quiz answers with caching
type PreferenceService struct {
	cache    domain.CacheRepository
	repo     domain.PreferenceRepository
	validate *validator.Validate
	cacheTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewPreferenceService creates a new preference service with dependencies
func NewPreferenceService(
	cache domain.CacheRepository,
	repo domain.PreferenceRepository,
	config PreferenceServiceConfig,
	logger *zap.Logger,
) *PreferenceService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &PreferenceService{
		cache:    cache,
		repo:     repo,
		validate: validator.New(),
		cacheTTL: cacheTTL,
		logger:   logger.Named("preferences"),
		now:      time.Now,
	}
}

// Get returns the stored quiz answers for a user.
// Flow: check cache -> preference store -> cache -> return
func (s *PreferenceService) Get(ctx context.Context, userID uuid.UUID) (*domain.UserPreferences, error) {
	cacheKey := preferencesCacheKey(userID)

	if prefs, err := s.getFromCache(ctx, cacheKey); err == nil {
		return prefs, nil
	}

	prefs, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrPreferencesNotFound) || errors.Is(err, domain.ErrPreferenceStoreUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrPreferenceStoreUnavailable, err)
	}

	if err := s.cache.Set(ctx, cacheKey, prefs, s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache preferences", zap.Stringer("user_id", userID), zap.Error(err))
	}

	return prefs, nil
}

// Save validates quiz answers and stores them as the user's completed quiz
func (s *PreferenceService) Save(ctx context.Context, userID uuid.UUID, answers *domain.QuizAnswers) (*domain.UserPreferences, error) {
	if answers == nil {
		return nil, domain.ErrInvalidPreferences
	}
	if err := s.validate.Struct(answers); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPreferences, err)
	}

	prefs := &domain.UserPreferences{
		UserID:           userID,
		FavoriteStyle:    domain.Style(answers.FavoriteStyle),
		ColorPalette:     domain.Palette(answers.ColorPalette),
		PreferredFit:     domain.Fit(answers.PreferredFit),
		WardrobePriority: domain.Priority(answers.WardrobePriority),
		PreferredSize:    answers.PreferredSize,
		HasCompletedQuiz: true,
		UpdatedAt:        s.now().UTC(),
	}

	if err := s.repo.Save(ctx, prefs); err != nil {
		if errors.Is(err, domain.ErrPreferenceStoreUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrPreferenceStoreUnavailable, err)
	}

	if err := s.cache.Delete(ctx, preferencesCacheKey(userID)); err != nil {
		s.logger.Warn("failed to invalidate cached preferences", zap.Stringer("user_id", userID), zap.Error(err))
	}

	s.logger.Info("quiz completed",
		zap.Stringer("user_id", userID),
		zap.String("style", answers.FavoriteStyle),
		zap.String("fit", answers.PreferredFit))

	return prefs, nil
}

// preferencesCacheKey format: "preferences:{user_id}"
func preferencesCacheKey(userID uuid.UUID) string {
	return "preferences:" + userID.String()
}

func (s *PreferenceService) getFromCache(ctx context.Context, key string) (*domain.UserPreferences, error) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var prefs domain.UserPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, domain.ErrCacheMiss
	}
	return &prefs, nil
}
