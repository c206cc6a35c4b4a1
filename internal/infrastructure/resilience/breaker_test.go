package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/maison/backend/internal/domain"
)

type stubPreferenceRepository struct {
	prefs *domain.UserPreferences
	err   error
	calls int
}

func (s *stubPreferenceRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserPreferences, error) {
	s.calls++
	return s.prefs, s.err
}

func (s *stubPreferenceRepository) Save(ctx context.Context, prefs *domain.UserPreferences) error {
	s.calls++
	return s.err
}

func TestPreferenceRepository_PassThrough(t *testing.T) {
	want := &domain.UserPreferences{FavoriteStyle: domain.StyleClassic, HasCompletedQuiz: true}
	stub := &stubPreferenceRepository{prefs: want}
	repo := NewPreferenceRepository(stub, BreakerConfig{}, zaptest.NewLogger(t))

	got, err := repo.GetByUserID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Same(t, want, got)
	assert.NoError(t, repo.Save(context.Background(), want))
	assert.Equal(t, "closed", repo.State())
}

func TestPreferenceRepository_TripsOnConsecutiveFailures(t *testing.T) {
	stub := &stubPreferenceRepository{err: errors.New("connection refused")}
	repo := NewPreferenceRepository(stub, BreakerConfig{FailureThreshold: 2, Timeout: time.Minute}, zaptest.NewLogger(t))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := repo.GetByUserID(ctx, uuid.New())
		assert.EqualError(t, err, "connection refused")
	}
	assert.Equal(t, "open", repo.State())

	_, err := repo.GetByUserID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrPreferenceStoreUnavailable)
	assert.Equal(t, 2, stub.calls, "open breaker must not reach the store")
}

func TestPreferenceRepository_NotFoundDoesNotTrip(t *testing.T) {
	stub := &stubPreferenceRepository{err: domain.ErrPreferencesNotFound}
	repo := NewPreferenceRepository(stub, BreakerConfig{FailureThreshold: 1}, zaptest.NewLogger(t))

	for i := 0; i < 3; i++ {
		_, err := repo.GetByUserID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, domain.ErrPreferencesNotFound)
	}
	assert.Equal(t, "closed", repo.State())
	assert.Equal(t, 3, stub.calls)
}

// ctxRepository answers with the context error, like a driver aborting a query
type ctxRepository struct {
	calls int
}

func (r *ctxRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserPreferences, error) {
	r.calls++
	return nil, ctx.Err()
}

func (r *ctxRepository) Save(ctx context.Context, prefs *domain.UserPreferences) error {
	r.calls++
	return ctx.Err()
}

func TestPreferenceRepository_CallerCancellationDoesNotTrip(t *testing.T) {
	stub := &ctxRepository{}
	repo := NewPreferenceRepository(stub, BreakerConfig{FailureThreshold: 2, Timeout: time.Minute}, zaptest.NewLogger(t))

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < 5; i++ {
		_, err := repo.GetByUserID(cancelled, uuid.New())
		assert.ErrorIs(t, err, context.Canceled)
	}
	assert.Equal(t, "closed", repo.State())

	require.NoError(t, repo.Save(context.Background(), &domain.UserPreferences{UserID: uuid.New()}))
	assert.Equal(t, 6, stub.calls)
}

func TestPreferenceRepository_DeadlineExceededTrips(t *testing.T) {
	stub := &ctxRepository{}
	repo := NewPreferenceRepository(stub, BreakerConfig{FailureThreshold: 2, Timeout: time.Minute}, zaptest.NewLogger(t))

	expired, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	for i := 0; i < 2; i++ {
		_, err := repo.GetByUserID(expired, uuid.New())
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	}
	assert.Equal(t, "open", repo.State())

	err := repo.Save(context.Background(), &domain.UserPreferences{UserID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrPreferenceStoreUnavailable)
}
