package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	notifier  service.NotificationService
	logger    *slog.Logger

	// dispatch runs the notification side effect after an order is stored.
	// Production uses asyncDispatch; tests substitute a synchronous one.
	dispatch func(ctx context.Context, fn func(ctx context.Context))
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Notifier  service.NotificationService
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		notifier:  params.Notifier,
		logger:    params.Logger,
		dispatch:  asyncDispatch,
	}
}

// asyncDispatch runs fn on its own goroutine, detached from the request
// context so the send outlives the HTTP response.
func asyncDispatch(ctx context.Context, fn func(ctx context.Context)) {
	go fn(context.WithoutCancel(ctx))
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitOrder persists the order first and only then kicks off the email
// notifications. The response reflects the stored order; a notification
// failure is logged and otherwise invisible to the customer.
func (srv *orderService) SubmitOrder(ctx context.Context, input *usecase.SubmitOrderInput) (*usecase.OrderView, error) {
	method := entity.PaymentMethod(input.PaymentMethod)
	if !method.IsValid() {
		return nil, domainerrors.ErrInvalidPaymentMethod
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, entity.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	order := &entity.Order{
		ID:              entity.NewOrderID(),
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		ShippingAddress: input.ShippingAddress,
		City:            input.City,
		Items:           items,
		Subtotal:        input.Subtotal,
		ShippingCost:    input.ShippingCost,
		Total:           input.Total,
		PaymentMethod:   method,
		Notes:           input.Notes,
		Status:          entity.OrderStatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to persist order", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist order")
	}

	srv.log(ctx).Info("Order stored",
		slog.Any("orderID", order.ID),
		slog.String("customer", order.CustomerEmail),
		slog.Float64("total", order.Total))

	logger := srv.log(ctx)
	srv.dispatch(ctx, func(ctx context.Context) {
		if err := srv.notifier.SendOrderConfirmation(ctx, order); err != nil {
			logger.Error("Order confirmation email failed",
				slog.Any("orderID", order.ID),
				slog.Any("error", err))
		}
	})

	return usecase.NewOrderView(order), nil
}

// ListOrders returns every order, newest first.
func (srv *orderService) ListOrders(ctx context.Context) ([]*usecase.OrderView, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	views := make([]*usecase.OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, usecase.NewOrderView(order))
	}

	return views, nil
}

// UpdateStatus sets the order status after checking membership in the
// enumerated set. Any member may be assigned regardless of the current
// status.
func (srv *orderService) UpdateStatus(ctx context.Context, id string, status string) error {
	newStatus := entity.OrderStatus(status)
	if !newStatus.IsValid() {
		return domainerrors.ErrInvalidOrderStatus
	}

	orderID, err := uuid.Parse(id)
	if err != nil {
		return domainerrors.ErrOrderNotFound
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, newStatus); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated", slog.Any("orderID", orderID), slog.String("status", status))

	return nil
}

// DeleteOrder removes an order and its line items.
func (srv *orderService) DeleteOrder(ctx context.Context, id string) error {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return domainerrors.ErrOrderNotFound
	}

	if err := srv.orderRepo.Delete(ctx, orderID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to delete order")
	}

	srv.log(ctx).Info("Order deleted", slog.Any("orderID", orderID))

	return nil
}
