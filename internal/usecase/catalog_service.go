package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/maison/backend/internal/domain"
)

// CatalogService exposes read-only catalog queries
type CatalogService struct {
	catalog domain.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalog domain.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// ListProducts returns active products, newest first, optionally only featured ones
func (s *CatalogService) ListProducts(ctx context.Context, featuredOnly bool) ([]domain.Product, error) {
	products, err := s.catalog.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	if !featuredOnly {
		return products, nil
	}

	featured := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.IsFeatured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

// GetProduct returns a single active product
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if !product.IsActive {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}
