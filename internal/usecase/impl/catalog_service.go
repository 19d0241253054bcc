package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	categoryRepo  repository.CategoryRepository
	productRepo   repository.ProductRepository
	promotionRepo repository.PromotionRepository
	logger        *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CategoryRepo  repository.CategoryRepository
	ProductRepo   repository.ProductRepository
	PromotionRepo repository.PromotionRepository
	Logger        *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		categoryRepo:  params.CategoryRepo,
		productRepo:   params.ProductRepo,
		promotionRepo: params.PromotionRepo,
		logger:        params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Categories ---

func (srv *catalogService) ListCategories(ctx context.Context) ([]*usecase.CategoryView, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	views := make([]*usecase.CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, usecase.NewCategoryView(category))
	}

	return views, nil
}

func (srv *catalogService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*usecase.CategoryView, error) {
	category := &entity.Category{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID), slog.String("name", category.Name))

	return usecase.NewCategoryView(category), nil
}

// UpdateCategory replaces the mutable fields of a category. The creation
// timestamp is preserved by the persistence layer.
func (srv *catalogService) UpdateCategory(ctx context.Context, id string, input *usecase.CategoryInput) error {
	categoryID, err := uuid.Parse(id)
	if err != nil {
		return domainerrors.ErrCategoryNotFound
	}

	category := &entity.Category{
		ID:          categoryID,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to update category")
	}

	return nil
}

func (srv *catalogService) DeleteCategory(ctx context.Context, id string) error {
	categoryID, err := uuid.Parse(id)
	if err != nil {
		return domainerrors.ErrCategoryNotFound
	}

	if err := srv.categoryRepo.Delete(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.Any("categoryID", categoryID))

	return nil
}

// --- Products ---

func (srv *catalogService) ListProducts(ctx context.Context, categoryID string, includeInactive bool) ([]*usecase.ProductView, error) {
	products, err := srv.productRepo.List(ctx, categoryID, !includeInactive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	views := make([]*usecase.ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, usecase.NewProductView(product))
	}

	return views, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, id string) (*usecase.ProductView, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return nil, domainerrors.ErrProductNotFound
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return usecase.NewProductView(product), nil
}

func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*usecase.ProductView, error) {
	product := &entity.Product{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		SalePrice:   input.SalePrice,
		CategoryID:  input.CategoryID,
		InStock:     input.InStock,
		IsActive:    input.IsActive,
		Images:      input.Images,
		CreatedAt:   time.Now().UTC(),
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("name", product.Name))

	return usecase.NewProductView(product), nil
}

func (srv *catalogService) UpdateProduct(ctx context.Context, id string, input *usecase.ProductInput) error {
	productID, err := uuid.Parse(id)
	if err != nil {
		return domainerrors.ErrProductNotFound
	}

	product := &entity.Product{
		ID:          productID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		SalePrice:   input.SalePrice,
		CategoryID:  input.CategoryID,
		InStock:     input.InStock,
		IsActive:    input.IsActive,
		Images:      input.Images,
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to update product")
	}

	return nil
}

func (srv *catalogService) DeleteProduct(ctx context.Context, id string) error {
	productID, err := uuid.Parse(id)
	if err != nil {
		return domainerrors.ErrProductNotFound
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID))

	return nil
}

// --- Promotions ---

func (srv *catalogService) ListPromotions(ctx context.Context) ([]*usecase.PromotionView, error) {
	promotions, err := srv.promotionRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promotions")
	}

	views := make([]*usecase.PromotionView, 0, len(promotions))
	for _, promotion := range promotions {
		views = append(views, usecase.NewPromotionView(promotion))
	}

	return views, nil
}

// ListActivePromotions returns the promotions visible to the public page:
// flagged active and whose date window contains the current instant.
func (srv *catalogService) ListActivePromotions(ctx context.Context) ([]*usecase.PromotionView, error) {
	promotions, err := srv.promotionRepo.ListActive(ctx, time.Now().UTC())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active promotions")
	}

	views := make([]*usecase.PromotionView, 0, len(promotions))
	for _, promotion := range promotions {
		views = append(views, usecase.NewPromotionView(promotion))
	}

	return views, nil
}

func (srv *catalogService) CreatePromotion(ctx context.Context, input *usecase.PromotionInput) (*usecase.PromotionView, error) {
	promotion := &entity.Promotion{
		ID:              uuid.New(),
		Title:           input.Title,
		Description:     input.Description,
		DiscountPercent: input.DiscountPercent,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		ProductIDs:      input.ProductIDs,
		IsActive:        input.IsActive,
		CreatedAt:       time.Now().UTC(),
	}

	if err := srv.promotionRepo.Create(ctx, promotion); err != nil {
		return nil, errors.Wrap(err, "failed to create promotion")
	}

	srv.log(ctx).Info("Promotion created", slog.Any("promotionID", promotion.ID), slog.String("title", promotion.Title))

	return usecase.NewPromotionView(promotion), nil
}

func (srv *catalogService) UpdatePromotion(ctx context.Context, id string, input *usecase.PromotionInput) error {
	promotionID, err := uuid.Parse(id)
	if err != nil {
		return domainerrors.ErrPromotionNotFound
	}

	promotion := &entity.Promotion{
		ID:              promotionID,
		Title:           input.Title,
		Description:     input.Description,
		DiscountPercent: input.DiscountPercent,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		ProductIDs:      input.ProductIDs,
		IsActive:        input.IsActive,
	}

	if err := srv.promotionRepo.Update(ctx, promotion); err != nil {
		if errors.Is(err, repository.ErrPromotionNotFound) {
			return domainerrors.ErrPromotionNotFound
		}

		return errors.Wrap(err, "failed to update promotion")
	}

	return nil
}

func (srv *catalogService) DeletePromotion(ctx context.Context, id string) error {
	promotionID, err := uuid.Parse(id)
	if err != nil {
		return domainerrors.ErrPromotionNotFound
	}

	if err := srv.promotionRepo.Delete(ctx, promotionID); err != nil {
		if errors.Is(err, repository.ErrPromotionNotFound) {
			return domainerrors.ErrPromotionNotFound
		}

		return errors.Wrap(err, "failed to delete promotion")
	}

	srv.log(ctx).Info("Promotion deleted", slog.Any("promotionID", promotionID))

	return nil
}
