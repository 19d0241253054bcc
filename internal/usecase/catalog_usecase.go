package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// CategoryInput defines the data for creating or replacing a category.
type CategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// ProductInput defines the data for creating or replacing a product.
type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	SalePrice   *float64 `json:"sale_price" validate:"omitempty,gte=0"`
	CategoryID  string   `json:"category_id"`
	InStock     bool     `json:"in_stock"`
	IsActive    bool     `json:"is_active"`
	Images      []string `json:"images"`
}

// PromotionInput defines the data for creating or replacing a promotion.
type PromotionInput struct {
	Title           string    `json:"title" validate:"required"`
	Description     string    `json:"description"`
	DiscountPercent float64   `json:"discount_percent" validate:"gte=0,lte=100"`
	StartDate       time.Time `json:"start_date" validate:"required"`
	EndDate         time.Time `json:"end_date" validate:"required"`
	ProductIDs      []string  `json:"product_ids"`
	IsActive        bool      `json:"is_active"`
}

// --- Output DTOs ---

// CategoryView is the external shape of a category.
type CategoryView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewCategoryView maps a domain category to its external view.
func NewCategoryView(category *entity.Category) *CategoryView {
	return &CategoryView{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
	}
}

// ProductView is the external shape of a product.
type ProductView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	SalePrice   *float64  `json:"sale_price"`
	CategoryID  string    `json:"category_id"`
	InStock     bool      `json:"in_stock"`
	IsActive    bool      `json:"is_active"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewProductView maps a domain product to its external view.
func NewProductView(product *entity.Product) *ProductView {
	images := product.Images
	if images == nil {
		images = []string{}
	}

	return &ProductView{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		SalePrice:   product.SalePrice,
		CategoryID:  product.CategoryID,
		InStock:     product.InStock,
		IsActive:    product.IsActive,
		Images:      images,
		CreatedAt:   product.CreatedAt,
	}
}

// PromotionView is the external shape of a promotion.
type PromotionView struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DiscountPercent float64   `json:"discount_percent"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	ProductIDs      []string  `json:"product_ids"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewPromotionView maps a domain promotion to its external view.
func NewPromotionView(promotion *entity.Promotion) *PromotionView {
	productIDs := promotion.ProductIDs
	if productIDs == nil {
		productIDs = []string{}
	}

	return &PromotionView{
		ID:              promotion.ID.String(),
		Title:           promotion.Title,
		Description:     promotion.Description,
		DiscountPercent: promotion.DiscountPercent,
		StartDate:       promotion.StartDate,
		EndDate:         promotion.EndDate,
		ProductIDs:      productIDs,
		IsActive:        promotion.IsActive,
		CreatedAt:       promotion.CreatedAt,
	}
}

// CatalogUsecase defines the interface for catalog browsing and management.
type CatalogUsecase interface {
	// Categories
	ListCategories(ctx context.Context) ([]*CategoryView, error)
	CreateCategory(ctx context.Context, input *CategoryInput) (*CategoryView, error)
	UpdateCategory(ctx context.Context, id string, input *CategoryInput) error
	DeleteCategory(ctx context.Context, id string) error

	// Products. ListProducts with includeInactive=false serves the public
	// storefront; the admin panel passes true.
	ListProducts(ctx context.Context, categoryID string, includeInactive bool) ([]*ProductView, error)
	GetProduct(ctx context.Context, id string) (*ProductView, error)
	CreateProduct(ctx context.Context, input *ProductInput) (*ProductView, error)
	UpdateProduct(ctx context.Context, id string, input *ProductInput) error
	DeleteProduct(ctx context.Context, id string) error

	// Promotions. ListActivePromotions applies the visibility window.
	ListPromotions(ctx context.Context) ([]*PromotionView, error)
	ListActivePromotions(ctx context.Context) ([]*PromotionView, error)
	CreatePromotion(ctx context.Context, input *PromotionInput) (*PromotionView, error)
	UpdatePromotion(ctx context.Context, id string, input *PromotionInput) error
	DeletePromotion(ctx context.Context, id string) error
}
