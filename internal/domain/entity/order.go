package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the initial state of every submitted order.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed marks an order acknowledged by the store.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusShipped marks an order handed to delivery.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered marks an order received by the customer.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled marks an order that will not be fulfilled.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks membership in the enumerated status set. Transitions between
// statuses are intentionally unconstrained; administrators may set any status
// at any time.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// PaymentMethod represents how the customer intends to pay for an order.
type PaymentMethod string

const (
	// PaymentMethodCash is payment in cash on delivery.
	PaymentMethodCash PaymentMethod = "cash"
	// PaymentMethodBankTransfer is a direct bank transfer.
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	// PaymentMethodBit is a Bit app transfer.
	PaymentMethodBit PaymentMethod = "bit"
	// PaymentMethodCreditCard is payment by credit card.
	PaymentMethodCreditCard PaymentMethod = "credit_card"
)

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is one of the supported methods.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodBit, PaymentMethodCreditCard:
		return true
	default:
		return false
	}
}

// OrderItem is a single ordered line. Product name and unit price are
// snapshotted at submission time so later catalog edits do not rewrite
// order history.
type OrderItem struct {
	ProductID   string  // Catalog id of the ordered product.
	ProductName string  // Product name as displayed at submission time.
	Quantity    int     // Number of units ordered.
	Price       float64 // Unit price at submission time.
}

// Order is a customer purchase submitted through the public checkout.
// Line items and totals are supplied by the client and persisted as-is;
// the server validates shape and non-negativity but does not recompute
// prices against the catalog.
type Order struct {
	ID              uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	City            string
	Items           []OrderItem
	Subtotal        float64
	ShippingCost    float64
	Total           float64
	PaymentMethod   PaymentMethod
	Notes           string
	Status          OrderStatus
	CreatedAt       time.Time
}

// NewOrderID generates a fresh order identifier.
func NewOrderID() uuid.UUID {
	return uuid.New()
}
