package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/maison/backend/internal/domain"
)

// BreakerConfig configures the circuit breaker around the preference store
type BreakerConfig struct {
	Name             string
	MaxRequests      uint32        // probes allowed while half-open
	Interval         time.Duration // closed-state counter reset period
	Timeout          time.Duration // open-state duration before half-open
	FailureThreshold uint32        // consecutive failures that trip the breaker
}

// PreferenceRepository guards a domain.PreferenceRepository with a circuit
// breaker. A missing record or a cancelled caller never trips it.
type PreferenceRepository struct {
	next    domain.PreferenceRepository
	breaker *gobreaker.CircuitBreaker[*domain.UserPreferences]
}

var _ domain.PreferenceRepository = (*PreferenceRepository)(nil)

// NewPreferenceRepository wraps next with a circuit breaker
func NewPreferenceRepository(next domain.PreferenceRepository, cfg BreakerConfig, logger *zap.Logger) *PreferenceRepository {
	if cfg.Name == "" {
		cfg.Name = "preference-store"
	}
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = 1
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		// Caller cancellation is not a store failure; deadlines are.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, domain.ErrPreferencesNotFound) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}

	return &PreferenceRepository{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker[*domain.UserPreferences](settings),
	}
}

// State reports the breaker state for health output
func (r *PreferenceRepository) State() string {
	return r.breaker.State().String()
}

func (r *PreferenceRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserPreferences, error) {
	prefs, err := r.breaker.Execute(func() (*domain.UserPreferences, error) {
		return r.next.GetByUserID(ctx, userID)
	})
	return prefs, translate(err)
}

func (r *PreferenceRepository) Save(ctx context.Context, prefs *domain.UserPreferences) error {
	_, err := r.breaker.Execute(func() (*domain.UserPreferences, error) {
		return prefs, r.next.Save(ctx, prefs)
	})
	return translate(err)
}

func translate(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", domain.ErrPreferenceStoreUnavailable, err)
	}
	return err
}
