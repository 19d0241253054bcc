package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order id matches nothing.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the persistence operations for orders.
type OrderRepository interface {
	// FindByID retrieves a single order with its line items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List retrieves every order, newest first.
	List(ctx context.Context) ([]*entity.Order, error)

	// Create persists a new order together with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// UpdateStatus sets the status field of an existing order.
	// Returns ErrOrderNotFound when the id matches nothing.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// Delete removes an order and its line items.
	// Returns ErrOrderNotFound when the id matches nothing.
	Delete(ctx context.Context, id uuid.UUID) error
}
