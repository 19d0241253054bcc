// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when a create would violate email uniqueness.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete
// implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List retrieves every registered user, newest first.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user. Returns ErrDuplicateEmail when the email
	// is already taken.
	Create(ctx context.Context, user *entity.User) error

	// SetApproved flips the approval flag for the given user.
	// Returns ErrUserNotFound when the id matches nothing.
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error

	// Delete removes a user. Returns ErrUserNotFound when the id matches
	// nothing.
	Delete(ctx context.Context, id uuid.UUID) error
}
