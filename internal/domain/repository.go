package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CacheRepository defines the interface for caching operations.
// Values are stored JSON-encoded; Get returns the raw encoding.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// CatalogRepository reads products from the catalog store
type CatalogRepository interface {
	// ListActive returns active products, newest first
	ListActive(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
}

// PreferenceRepository persists style-quiz answers keyed by user
type PreferenceRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*UserPreferences, error)
	Save(ctx context.Context, prefs *UserPreferences) error
}
