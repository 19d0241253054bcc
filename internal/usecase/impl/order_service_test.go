package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestOrderService builds the service with a synchronous dispatcher so
// the notification side effect completes before assertions run.
func newTestOrderService(orderRepo *mockRepo.MockOrderRepository, notifier *mockService.MockNotificationService) *orderService {
	svc := NewOrderService(OrderServiceParams{
		OrderRepo: orderRepo,
		Notifier:  notifier,
		Logger:    discardLogger(),
	}).(*orderService)
	svc.dispatch = func(ctx context.Context, fn func(ctx context.Context)) {
		fn(ctx)
	}

	return svc
}

func testSubmitOrderInput() *usecase.SubmitOrderInput {
	return &usecase.SubmitOrderInput{
		CustomerName:    "דוד כהן",
		CustomerEmail:   "customer@example.com",
		CustomerPhone:   "050-1234567",
		ShippingAddress: "הרצל 1",
		City:            "תל אביב",
		Items: []usecase.OrderItemInput{
			{ProductID: "p1", ProductName: "מצלמת אבטחה", Quantity: 2, Price: 299.90},
		},
		Subtotal:      599.80,
		ShippingCost:  0,
		Total:         599.80,
		PaymentMethod: "bit",
	}
}

func TestOrderService_SubmitOrder_Success(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	notifier := mockService.NewMockNotificationService(t)
	svc := newTestOrderService(orderRepo, notifier)

	ctx := context.Background()

	var persisted *entity.Order
	orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			persisted = order
		}).
		Return(nil)
	notifier.EXPECT().
		SendOrderConfirmation(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	view, err := svc.SubmitOrder(ctx, testSubmitOrderInput())
	require.NoError(t, err)

	require.NotNil(t, persisted)
	assert.Equal(t, entity.OrderStatusPending, persisted.Status, "every new order starts pending")
	assert.Equal(t, entity.PaymentMethodBit, persisted.PaymentMethod)
	assert.Len(t, persisted.Items, 1)
	assert.Equal(t, 599.80, persisted.Total, "client-supplied totals are stored as-is")

	assert.Equal(t, persisted.ID.String(), view.ID)
	assert.Equal(t, "pending", view.Status)
	assert.Equal(t, "bit", view.PaymentMethod)
}

func TestOrderService_SubmitOrder_InvalidPaymentMethod(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	notifier := mockService.NewMockNotificationService(t)
	svc := newTestOrderService(orderRepo, notifier)

	input := testSubmitOrderInput()
	input.PaymentMethod = "paypal"

	_, err := svc.SubmitOrder(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPaymentMethod)
	// Nothing was persisted and nothing was sent.
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "SendOrderConfirmation", mock.Anything, mock.Anything)
}

func TestOrderService_SubmitOrder_NotificationFailureDoesNotSurface(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	notifier := mockService.NewMockNotificationService(t)
	svc := newTestOrderService(orderRepo, notifier)

	ctx := context.Background()

	orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	notifier.EXPECT().
		SendOrderConfirmation(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Return(errors.New("relay unavailable"))

	view, err := svc.SubmitOrder(ctx, testSubmitOrderInput())
	require.NoError(t, err, "a failed notification must not fail the submission")
	assert.Equal(t, "pending", view.Status)
}

func TestOrderService_SubmitOrder_PersistFailureSkipsNotification(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	notifier := mockService.NewMockNotificationService(t)
	svc := newTestOrderService(orderRepo, notifier)

	ctx := context.Background()

	orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(errors.New("insert failed"))

	_, err := svc.SubmitOrder(ctx, testSubmitOrderInput())
	assert.Error(t, err)
	notifier.AssertNotCalled(t, "SendOrderConfirmation", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateStatus_Success(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	notifier := mockService.NewMockNotificationService(t)
	svc := newTestOrderService(orderRepo, notifier)

	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusShipped).Return(nil)

	require.NoError(t, svc.UpdateStatus(ctx, orderID.String(), "shipped"))
}

func TestOrderService_UpdateStatus_AnyMemberTransitionAllowed(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	notifier := mockService.NewMockNotificationService(t)
	svc := newTestOrderService(orderRepo, notifier)

	ctx := context.Background()
	orderID := uuid.New()

	// A delivered order may be moved back to pending; only membership in
	// the enumerated set is enforced.
	orderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusPending).Return(nil)

	require.NoError(t, svc.UpdateStatus(ctx, orderID.String(), "pending"))
}

func TestOrderService_UpdateStatus_InvalidStatus(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	notifier := mockService.NewMockNotificationService(t)
	svc := newTestOrderService(orderRepo, notifier)

	err := svc.UpdateStatus(context.Background(), uuid.New().String(), "archived")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_UpdateStatus_UnknownOrder(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	notifier := mockService.NewMockNotificationService(t)
	svc := newTestOrderService(orderRepo, notifier)

	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusConfirmed).Return(repository.ErrOrderNotFound)

	err := svc.UpdateStatus(ctx, orderID.String(), "confirmed")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_DeleteOrder_MalformedID(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	notifier := mockService.NewMockNotificationService(t)
	svc := newTestOrderService(orderRepo, notifier)

	err := svc.DeleteOrder(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrders(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	notifier := mockService.NewMockNotificationService(t)
	svc := newTestOrderService(orderRepo, notifier)

	ctx := context.Background()
	orders := []*entity.Order{
		{ID: uuid.New(), Status: entity.OrderStatusPending, PaymentMethod: entity.PaymentMethodCash},
		{ID: uuid.New(), Status: entity.OrderStatusShipped, PaymentMethod: entity.PaymentMethodBit},
	}

	orderRepo.EXPECT().List(ctx).Return(orders, nil)

	views, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "pending", views[0].Status)
	assert.Equal(t, "shipped", views[1].Status)
}
