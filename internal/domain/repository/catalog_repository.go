package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Not-found sentinels for catalog records.
var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrPromotionNotFound = errors.New("promotion not found")
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	// FindByID retrieves a single product regardless of its active flag.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves products. When activeOnly is set, inactive products are
	// excluded; when categoryID is non-empty, results are narrowed to that
	// category.
	List(ctx context.Context, categoryID string, activeOnly bool) ([]*entity.Product, error)

	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PromotionRepository defines persistence operations for promotions.
type PromotionRepository interface {
	// List retrieves every promotion, for the admin panel.
	List(ctx context.Context) ([]*entity.Promotion, error)

	// ListActive retrieves promotions whose active flag is set and whose
	// [start, end] window contains the given instant.
	ListActive(ctx context.Context, now time.Time) ([]*entity.Promotion, error)

	Create(ctx context.Context, promotion *entity.Promotion) error
	Update(ctx context.Context, promotion *entity.Promotion) error
	Delete(ctx context.Context, id uuid.UUID) error
}
