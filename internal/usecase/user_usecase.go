// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to create a new account.
type SignupInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// UserView is the externally visible shape of an account. It never carries
// the password hash.
type UserView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserView maps a domain user to its external view.
func NewUserView(user *entity.User) *UserView {
	return &UserView{
		ID:        user.ID.String(),
		Email:     user.Email,
		Role:      user.Role.String(),
		Approved:  user.Approved,
		CreatedAt: user.CreatedAt,
	}
}

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	User        *UserView `json:"user"`
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer depends on.
type UserUsecase interface {
	// Signup creates a new unapproved customer account.
	Signup(ctx context.Context, input *SignupInput) (*UserView, error)

	// Login verifies credentials and the approval gate, then issues a token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ListUsers returns every account, for the admin panel.
	ListUsers(ctx context.Context) ([]*UserView, error)

	// ApproveUser marks an account as approved.
	ApproveUser(ctx context.Context, id string) (*UserView, error)

	// DeleteUser removes an account.
	DeleteUser(ctx context.Context, id string) error
}
