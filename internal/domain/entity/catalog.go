package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a browsable grouping of products.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
}

// Product is a catalog item offered for sale. CategoryID references a
// Category by id; the reference is not enforced at the store level, so a
// product may outlive its category.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	SalePrice   *float64 // Discounted price; nil when the product is not on sale.
	CategoryID  string
	InStock     bool
	IsActive    bool
	Images      []string
	CreatedAt   time.Time
}

// Promotion is a time-windowed discount applied to a set of products.
type Promotion struct {
	ID              uuid.UUID
	Title           string
	Description     string
	DiscountPercent float64
	StartDate       time.Time
	EndDate         time.Time
	ProductIDs      []string
	IsActive        bool
	CreatedAt       time.Time
}

// IsCurrentlyActive reports whether the promotion should be publicly
// visible at the given instant: the active flag must be set and the
// instant must fall inside the [StartDate, EndDate] window.
func (p *Promotion) IsCurrentlyActive(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	if now.Before(p.StartDate) || now.After(p.EndDate) {
		return false
	}

	return true
}
