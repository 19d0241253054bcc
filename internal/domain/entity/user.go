// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront account. Accounts are created through the public
// signup flow and stay unusable for login until an administrator approves
// them, unless the account carries the admin role.
type User struct {
	ID           uuid.UUID // The unique identifier for the account.
	Email        string    // Login identifier; unique across all accounts.
	PasswordHash string    // Bcrypt hash of the account password. Never exposed outside the store boundary.
	Role         Role      // Either RoleAdmin or RoleUser.
	Approved     bool      // Approval gate flag; false until an admin approves the account.
	CreatedAt    time.Time // Timestamp of when this account was created.
}

// CanLogin reports whether the account may authenticate. Admin accounts
// bypass the approval gate.
func (u *User) CanLogin() bool {
	return u.Role == RoleAdmin || u.Approved
}
