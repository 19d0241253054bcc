package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogMocks struct {
	categoryRepo  *mockRepo.MockCategoryRepository
	productRepo   *mockRepo.MockProductRepository
	promotionRepo *mockRepo.MockPromotionRepository
}

func newTestCatalogService(t *testing.T) (usecase.CatalogUsecase, catalogMocks) {
	mocks := catalogMocks{
		categoryRepo:  mockRepo.NewMockCategoryRepository(t),
		productRepo:   mockRepo.NewMockProductRepository(t),
		promotionRepo: mockRepo.NewMockPromotionRepository(t),
	}

	svc := NewCatalogService(CatalogServiceParams{
		CategoryRepo:  mocks.categoryRepo,
		ProductRepo:   mocks.productRepo,
		PromotionRepo: mocks.promotionRepo,
		Logger:        discardLogger(),
	})

	return svc, mocks
}

func TestCatalogService_CreateCategory(t *testing.T) {
	svc, mocks := newTestCatalogService(t)
	ctx := context.Background()

	var created *entity.Category
	mocks.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(ctx context.Context, category *entity.Category) {
			created = category
		}).
		Return(nil)

	view, err := svc.CreateCategory(ctx, &usecase.CategoryInput{Name: "מצלמות", Description: "מצלמות אבטחה"})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "מצלמות", view.Name)
}

func TestCatalogService_UpdateCategory_NotFound(t *testing.T) {
	svc, mocks := newTestCatalogService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	mocks.categoryRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Category")).
		Return(repository.ErrCategoryNotFound)

	err := svc.UpdateCategory(ctx, categoryID.String(), &usecase.CategoryInput{Name: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_ListProducts_PublicHidesInactive(t *testing.T) {
	svc, mocks := newTestCatalogService(t)
	ctx := context.Background()

	// The public listing asks the repository for active products only.
	mocks.productRepo.EXPECT().List(ctx, "", true).Return([]*entity.Product{}, nil)

	_, err := svc.ListProducts(ctx, "", false)
	require.NoError(t, err)
}

func TestCatalogService_ListProducts_AdminSeesEverything(t *testing.T) {
	svc, mocks := newTestCatalogService(t)
	ctx := context.Background()

	mocks.productRepo.EXPECT().List(ctx, "cat-1", false).Return([]*entity.Product{}, nil)

	_, err := svc.ListProducts(ctx, "cat-1", true)
	require.NoError(t, err)
}

func TestCatalogService_GetProduct(t *testing.T) {
	svc, mocks := newTestCatalogService(t)
	ctx := context.Background()
	productID := uuid.New()
	product := &entity.Product{ID: productID, Name: "מצלמה", Price: 299.9, Images: []string{"/uploads/a.jpg"}}

	mocks.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)

	view, err := svc.GetProduct(ctx, productID.String())
	require.NoError(t, err)
	assert.Equal(t, "מצלמה", view.Name)
	assert.Equal(t, []string{"/uploads/a.jpg"}, view.Images)
}

func TestCatalogService_GetProduct_MalformedID(t *testing.T) {
	svc, _ := newTestCatalogService(t)

	_, err := svc.GetProduct(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	svc, mocks := newTestCatalogService(t)
	ctx := context.Background()
	productID := uuid.New()

	mocks.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := svc.GetProduct(ctx, productID.String())
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_ListActivePromotions_PassesCurrentInstant(t *testing.T) {
	svc, mocks := newTestCatalogService(t)
	ctx := context.Background()
	before := time.Now().UTC()

	var queriedAt time.Time
	mocks.promotionRepo.EXPECT().
		ListActive(ctx, mock.AnythingOfType("time.Time")).
		Run(func(ctx context.Context, now time.Time) {
			queriedAt = now
		}).
		Return([]*entity.Promotion{}, nil)

	views, err := svc.ListActivePromotions(ctx)
	require.NoError(t, err)
	assert.Empty(t, views)

	after := time.Now().UTC()
	assert.False(t, queriedAt.Before(before))
	assert.False(t, queriedAt.After(after))
}

func TestCatalogService_CreatePromotion(t *testing.T) {
	svc, mocks := newTestCatalogService(t)
	ctx := context.Background()

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var created *entity.Promotion
	mocks.promotionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Promotion")).
		Run(func(ctx context.Context, promotion *entity.Promotion) {
			created = promotion
		}).
		Return(nil)

	view, err := svc.CreatePromotion(ctx, &usecase.PromotionInput{
		Title:           "מבצע קיץ",
		DiscountPercent: 15,
		StartDate:       start,
		EndDate:         end,
		ProductIDs:      []string{"p1", "p2"},
		IsActive:        true,
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, start, created.StartDate)
	assert.Equal(t, []string{"p1", "p2"}, view.ProductIDs)
}

func TestCatalogService_DeletePromotion_NotFound(t *testing.T) {
	svc, mocks := newTestCatalogService(t)
	ctx := context.Background()
	promotionID := uuid.New()

	mocks.promotionRepo.EXPECT().Delete(ctx, promotionID).Return(repository.ErrPromotionNotFound)

	err := svc.DeletePromotion(ctx, promotionID.String())
	assert.ErrorIs(t, err, domainerrors.ErrPromotionNotFound)
}
