package model

import (
	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName    string    `gorm:"type:varchar(255);not null"`
	CustomerEmail   string    `gorm:"type:varchar(255);not null"`
	CustomerPhone   string    `gorm:"type:varchar(64);not null"`
	ShippingAddress string    `gorm:"type:text"`
	City            string    `gorm:"type:varchar(255)"`
	Subtotal        float64   `gorm:"not null"`
	ShippingCost    float64   `gorm:"not null"`
	Total           float64   `gorm:"not null"`
	PaymentMethod   string    `gorm:"type:varchar(32);not null"`
	Notes           string    `gorm:"type:text"`
	Status          string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt       string    `gorm:"type:varchar(40);not null"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Product name and price are
// snapshots taken at submission time.
type OrderItemModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   string    `gorm:"type:varchar(64);not null"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	Quantity    int       `gorm:"not null"`
	Price       float64   `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
