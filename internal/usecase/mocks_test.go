package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maison/backend/internal/domain"
)

// MockCacheRepository is a mock implementation of domain.CacheRepository
type MockCacheRepository struct {
	mu          sync.Mutex
	data        map[string][]byte
	getError    error
	setError    error
	deleteError error
	getCalls    int
	setCalls    int
	deleteCalls int
}

func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{
		data: make(map[string][]byte),
	}
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.getError != nil {
		return nil, m.getError
	}
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls++
	if m.setError != nil {
		return m.setError
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = data
	return nil
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteCalls++
	if m.deleteError != nil {
		return m.deleteError
	}
	delete(m.data, key)
	return nil
}

// MockCatalogRepository is a mock implementation of domain.CatalogRepository
type MockCatalogRepository struct {
	products  []domain.Product
	listError error
	getError  error
}

func (m *MockCatalogRepository) ListActive(ctx context.Context) ([]domain.Product, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	active := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active, nil
}

func (m *MockCatalogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	for i := range m.products {
		if m.products[i].ID == id {
			p := m.products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// MockPreferenceRepository is a mock implementation of domain.PreferenceRepository
type MockPreferenceRepository struct {
	mu        sync.Mutex
	prefs     map[uuid.UUID]*domain.UserPreferences
	getError  error
	saveError error
	getCalls  int
	delay     time.Duration
}

func NewMockPreferenceRepository() *MockPreferenceRepository {
	return &MockPreferenceRepository{
		prefs: make(map[uuid.UUID]*domain.UserPreferences),
	}
}

func (m *MockPreferenceRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserPreferences, error) {
	m.mu.Lock()
	m.getCalls++
	delay := m.delay
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getError != nil {
		return nil, m.getError
	}
	prefs, ok := m.prefs[userID]
	if !ok {
		return nil, domain.ErrPreferencesNotFound
	}
	cp := *prefs
	return &cp, nil
}

func (m *MockPreferenceRepository) Save(ctx context.Context, prefs *domain.UserPreferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveError != nil {
		return m.saveError
	}
	cp := *prefs
	m.prefs[prefs.UserID] = &cp
	return nil
}

// fixed reference time for catalog fixtures
var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// newProduct builds an active, non-featured product created daysAgo before baseTime
func newProduct(name, category string, daysAgo int) domain.Product {
	return domain.Product{
		ID:        uuid.New(),
		Name:      name,
		Slug:      name,
		Category:  category,
		Price:     100,
		IsActive:  true,
		CreatedAt: baseTime.AddDate(0, 0, -daysAgo),
	}
}

func colors(names ...string) []domain.ColorVariant {
	variants := make([]domain.ColorVariant, len(names))
	for i, n := range names {
		variants[i] = domain.ColorVariant{Name: n, Value: "#000000"}
	}
	return variants
}

func price(v float64) *float64 {
	return &v
}
