package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// OrderItemInput is a single ordered line as submitted by the checkout.
type OrderItemInput struct {
	ProductID   string  `json:"product_id" validate:"required"`
	ProductName string  `json:"product_name" validate:"required"`
	Quantity    int     `json:"quantity" validate:"gt=0"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// SubmitOrderInput defines the data for a public order submission. Line
// items and totals are trusted as supplied; only shape and non-negativity
// are enforced server-side.
type SubmitOrderInput struct {
	CustomerName    string           `json:"customer_name" validate:"required"`
	CustomerEmail   string           `json:"customer_email" validate:"required,email"`
	CustomerPhone   string           `json:"customer_phone" validate:"required"`
	ShippingAddress string           `json:"shipping_address" validate:"required"`
	City            string           `json:"city"`
	Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	Subtotal        float64          `json:"subtotal" validate:"gte=0"`
	ShippingCost    float64          `json:"shipping_cost" validate:"gte=0"`
	Total           float64          `json:"total" validate:"gte=0"`
	PaymentMethod   string           `json:"payment_method" validate:"required"`
	Notes           string           `json:"notes"`
}

// --- Output DTOs ---

// OrderItemView is the external shape of an ordered line.
type OrderItemView struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// OrderView is the external shape of an order.
type OrderView struct {
	ID              string          `json:"id"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerPhone   string          `json:"customer_phone"`
	ShippingAddress string          `json:"shipping_address"`
	City            string          `json:"city"`
	Items           []OrderItemView `json:"items"`
	Subtotal        float64         `json:"subtotal"`
	ShippingCost    float64         `json:"shipping_cost"`
	Total           float64         `json:"total"`
	PaymentMethod   string          `json:"payment_method"`
	Notes           string          `json:"notes"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// NewOrderView maps a domain order to its external view.
func NewOrderView(order *entity.Order) *OrderView {
	items := make([]OrderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemView{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	return &OrderView{
		ID:              order.ID.String(),
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		CustomerPhone:   order.CustomerPhone,
		ShippingAddress: order.ShippingAddress,
		City:            order.City,
		Items:           items,
		Subtotal:        order.Subtotal,
		ShippingCost:    order.ShippingCost,
		Total:           order.Total,
		PaymentMethod:   order.PaymentMethod.String(),
		Notes:           order.Notes,
		Status:          order.Status.String(),
		CreatedAt:       order.CreatedAt,
	}
}

// OrderUsecase defines the interface for the order workflow.
type OrderUsecase interface {
	// SubmitOrder validates and persists an order, then triggers the
	// confirmation emails as a best-effort side effect. The returned order
	// reflects exactly what was stored; notification failures never surface
	// here.
	SubmitOrder(ctx context.Context, input *SubmitOrderInput) (*OrderView, error)

	// ListOrders returns every order, newest first, for the admin panel.
	ListOrders(ctx context.Context) ([]*OrderView, error)

	// UpdateStatus sets an order's status. The new status only has to be a
	// member of the enumerated set; transitions are unconstrained.
	UpdateStatus(ctx context.Context, id string, status string) error

	// DeleteOrder removes an order.
	DeleteOrder(ctx context.Context, id string) error
}
