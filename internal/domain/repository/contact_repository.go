package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ContactRepository defines persistence operations for contact submissions.
type ContactRepository interface {
	// Create persists a new contact submission.
	Create(ctx context.Context, message *entity.ContactMessage) error

	// List retrieves every contact submission, newest first.
	List(ctx context.Context) ([]*entity.ContactMessage, error)
}
