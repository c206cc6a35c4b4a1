package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/maison/backend/internal/domain"
)

var _ domain.CatalogRepository = (*CatalogRepository)(nil)

const productColumns = `id, name, slug, description, category, styles, colors,
	price::float8, original_price::float8, is_featured, is_active, created_at`

// rowScanner is satisfied by pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

type CatalogRepository struct {
	db *Connection
}

func NewCatalogRepository(db *Connection) *CatalogRepository {
	return &CatalogRepository{
		db: db,
	}
}

func (r *CatalogRepository) ListActive(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + `
			  FROM products WHERE is_active ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

func (r *CatalogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a product; used by seeding and tests
func (r *CatalogRepository) Create(ctx context.Context, p *domain.Product) error {
	styles, err := json.Marshal(nonNilStyles(p.Styles))
	if err != nil {
		return fmt.Errorf("failed to encode styles: %w", err)
	}
	colors, err := json.Marshal(nonNilColors(p.Colors))
	if err != nil {
		return fmt.Errorf("failed to encode colors: %w", err)
	}

	query := `INSERT INTO products (id, name, slug, description, category, styles, colors,
			  price, original_price, is_featured, is_active, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err = r.db.Exec(ctx, query,
		p.ID, p.Name, p.Slug, p.Description, p.Category, styles, colors,
		p.Price, p.OriginalPrice, p.IsFeatured, p.IsActive, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var (
		p      domain.Product
		styles []byte
		colors []byte
	)

	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Category, &styles, &colors,
		&p.Price, &p.OriginalPrice, &p.IsFeatured, &p.IsActive, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, err
		}
		return domain.Product{}, fmt.Errorf("failed to scan product: %w", err)
	}

	if err := decodeDocuments(&p, styles, colors); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// decodeDocuments fills the JSONB-backed fields of a product
func decodeDocuments(p *domain.Product, styles, colors []byte) error {
	p.Styles = []string{}
	p.Colors = []domain.ColorVariant{}

	if len(styles) > 0 {
		if err := json.Unmarshal(styles, &p.Styles); err != nil {
			return fmt.Errorf("failed to decode styles for product %s: %w", p.ID, err)
		}
	}
	if len(colors) > 0 {
		if err := json.Unmarshal(colors, &p.Colors); err != nil {
			return fmt.Errorf("failed to decode colors for product %s: %w", p.ID, err)
		}
	}
	return nil
}

func nonNilStyles(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilColors(c []domain.ColorVariant) []domain.ColorVariant {
	if c == nil {
		return []domain.ColorVariant{}
	}
	return c
}
