// Package model contains the GORM persistence models. Timestamps are stored
// as RFC3339 text and converted to time.Time at the mapper boundary, so the
// round trip is lossless to the second.
package model

import (
	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Identifiers are generated by the
// application, not the database.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(16);not null"`
	Approved     bool      `gorm:"not null"`
	CreatedAt    string    `gorm:"type:varchar(40);not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
