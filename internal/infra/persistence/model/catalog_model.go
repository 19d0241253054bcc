package model

import (
	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   string    `gorm:"type:varchar(40);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table. Images is a JSON-encoded list
// of URLs; CategoryID is a loose reference with no foreign key constraint.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"not null"`
	SalePrice   *float64
	CategoryID  string `gorm:"type:varchar(64);index"`
	InStock     bool   `gorm:"not null"`
	IsActive    bool   `gorm:"not null;index"`
	Images      string `gorm:"type:text"`
	CreatedAt   string `gorm:"type:varchar(40);not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// PromotionModel mirrors the 'promotions' table. ProductIDs is a
// JSON-encoded set of product ids; StartDate and EndDate share the RFC3339
// text representation used for all timestamps.
type PromotionModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Description     string    `gorm:"type:text"`
	DiscountPercent float64   `gorm:"not null"`
	StartDate       string    `gorm:"type:varchar(40);not null"`
	EndDate         string    `gorm:"type:varchar(40);not null"`
	ProductIDs      string    `gorm:"type:text"`
	IsActive        bool      `gorm:"not null;index"`
	CreatedAt       string    `gorm:"type:varchar(40);not null"`
}

// TableName explicitly sets the table name for GORM.
func (PromotionModel) TableName() string {
	return "promotions"
}
