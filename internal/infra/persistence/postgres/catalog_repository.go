package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements repository.CategoryRepository using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// List retrieves every category.
func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoryMs []model.CategoryModel
	err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&categoryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for i := range categoryMs {
		categories = append(categories, toCategoryDomain(&categoryMs[i]))
	}

	return categories, nil
}

// Create persists a new category.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if err := repo.db.WithContext(ctx).Create(fromCategoryDomain(category)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	return nil
}

// Update overwrites an existing category.
func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{
			"name":        category.Name,
			"description": category.Description,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// Delete removes a category.
func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CategoryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// productRepository implements repository.ProductRepository using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product regardless of its active flag.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// List retrieves products, optionally narrowed to a category and to active
// records only.
func (repo *productRepository) List(ctx context.Context, categoryID string, activeOnly bool) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var productMs []model.ProductModel
	if err := query.Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products, nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := repo.db.WithContext(ctx).Create(fromProductDomain(product)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

// Update overwrites an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"sale_price":  product.SalePrice,
			"category_id": product.CategoryID,
			"in_stock":    product.InStock,
			"is_active":   product.IsActive,
			"images":      encodeStrings(product.Images),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// promotionRepository implements repository.PromotionRepository using GORM.
type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository is the constructor for promotionRepository.
func NewPromotionRepository(db *gorm.DB) repository.PromotionRepository {
	return &promotionRepository{db: db}
}

// List retrieves every promotion, for the admin panel.
func (repo *promotionRepository) List(ctx context.Context) ([]*entity.Promotion, error) {
	var promotionMs []model.PromotionModel
	err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&promotionMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promotions")
	}

	promotions := make([]*entity.Promotion, 0, len(promotionMs))
	for i := range promotionMs {
		promotions = append(promotions, toPromotionDomain(&promotionMs[i]))
	}

	return promotions, nil
}

// ListActive retrieves promotions visible to the public at the given
// instant. Date columns hold RFC3339 text, which compares correctly as
// strings within the same UTC offset, but the window check is done on parsed
// values to stay correct for mixed offsets.
func (repo *promotionRepository) ListActive(ctx context.Context, now time.Time) ([]*entity.Promotion, error) {
	var promotionMs []model.PromotionModel
	err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&promotionMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active promotions")
	}

	promotions := make([]*entity.Promotion, 0, len(promotionMs))
	for i := range promotionMs {
		promotion := toPromotionDomain(&promotionMs[i])
		if promotion.IsCurrentlyActive(now) {
			promotions = append(promotions, promotion)
		}
	}

	return promotions, nil
}

// Create persists a new promotion.
func (repo *promotionRepository) Create(ctx context.Context, promotion *entity.Promotion) error {
	if err := repo.db.WithContext(ctx).Create(fromPromotionDomain(promotion)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create promotion")
	}

	return nil
}

// Update overwrites an existing promotion.
func (repo *promotionRepository) Update(ctx context.Context, promotion *entity.Promotion) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PromotionModel{}).
		Where("id = ?", promotion.ID).
		Updates(map[string]any{
			"title":            promotion.Title,
			"description":      promotion.Description,
			"discount_percent": promotion.DiscountPercent,
			"start_date":       formatTimestamp(promotion.StartDate),
			"end_date":         formatTimestamp(promotion.EndDate),
			"product_ids":      encodeStrings(promotion.ProductIDs),
			"is_active":        promotion.IsActive,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update promotion")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromotionNotFound
	}

	return nil
}

// Delete removes a promotion.
func (repo *promotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PromotionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete promotion")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromotionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   parseTimestamp(data.CreatedAt),
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   formatTimestamp(data.CreatedAt),
	}
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		SalePrice:   data.SalePrice,
		CategoryID:  data.CategoryID,
		InStock:     data.InStock,
		IsActive:    data.IsActive,
		Images:      decodeStrings(data.Images),
		CreatedAt:   parseTimestamp(data.CreatedAt),
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		SalePrice:   data.SalePrice,
		CategoryID:  data.CategoryID,
		InStock:     data.InStock,
		IsActive:    data.IsActive,
		Images:      encodeStrings(data.Images),
		CreatedAt:   formatTimestamp(data.CreatedAt),
	}
}

func toPromotionDomain(data *model.PromotionModel) *entity.Promotion {
	return &entity.Promotion{
		ID:              data.ID,
		Title:           data.Title,
		Description:     data.Description,
		DiscountPercent: data.DiscountPercent,
		StartDate:       parseTimestamp(data.StartDate),
		EndDate:         parseTimestamp(data.EndDate),
		ProductIDs:      decodeStrings(data.ProductIDs),
		IsActive:        data.IsActive,
		CreatedAt:       parseTimestamp(data.CreatedAt),
	}
}

func fromPromotionDomain(data *entity.Promotion) *model.PromotionModel {
	return &model.PromotionModel{
		ID:              data.ID,
		Title:           data.Title,
		Description:     data.Description,
		DiscountPercent: data.DiscountPercent,
		StartDate:       formatTimestamp(data.StartDate),
		EndDate:         formatTimestamp(data.EndDate),
		ProductIDs:      encodeStrings(data.ProductIDs),
		IsActive:        data.IsActive,
		CreatedAt:       formatTimestamp(data.CreatedAt),
	}
}
