package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maison/backend/internal/domain"
)

func TestCatalogService_ListProducts(t *testing.T) {
	ctx := context.Background()
	catalog := &MockCatalogRepository{products: mixedCatalog()}
	svc := NewCatalogService(catalog)

	t.Run("returns active products from the store", func(t *testing.T) {
		products, err := svc.ListProducts(ctx, false)
		require.NoError(t, err)
		assert.Len(t, products, 3)
	})

	t.Run("filters featured", func(t *testing.T) {
		products, err := svc.ListProducts(ctx, true)
		require.NoError(t, err)
		for _, p := range products {
			assert.True(t, p.IsFeatured, p.Name)
		}
		assert.Len(t, products, 2)
	})

	t.Run("wraps store failures", func(t *testing.T) {
		svc := NewCatalogService(&MockCatalogRepository{listError: errors.New("timeout")})

		_, err := svc.ListProducts(ctx, false)
		assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	})
}

func TestCatalogService_GetProduct(t *testing.T) {
	ctx := context.Background()
	products := mixedCatalog()
	svc := NewCatalogService(&MockCatalogRepository{products: products})

	t.Run("returns active product", func(t *testing.T) {
		got, err := svc.GetProduct(ctx, products[0].ID)
		require.NoError(t, err)
		assert.Equal(t, products[0].Name, got.Name)
	})

	t.Run("hides inactive product", func(t *testing.T) {
		_, err := svc.GetProduct(ctx, products[2].ID)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := svc.GetProduct(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("wraps store failures", func(t *testing.T) {
		svc := NewCatalogService(&MockCatalogRepository{getError: errors.New("timeout")})

		_, err := svc.GetProduct(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	})
}
