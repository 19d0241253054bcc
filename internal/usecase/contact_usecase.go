package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// SubmitContactInput defines the data for a public contact form submission.
type SubmitContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// ContactView is the external shape of a stored contact message.
type ContactView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewContactView maps a domain contact message to its external view.
func NewContactView(msg *entity.ContactMessage) *ContactView {
	return &ContactView{
		ID:        msg.ID.String(),
		Name:      msg.Name,
		Email:     msg.Email,
		Phone:     msg.Phone,
		Subject:   msg.Subject,
		Message:   msg.Message,
		Status:    string(msg.Status),
		CreatedAt: msg.CreatedAt,
	}
}

// ContactUsecase defines the interface for contact form intake.
type ContactUsecase interface {
	// SubmitContact stores a contact message and notifies the site owner as
	// a best-effort side effect.
	SubmitContact(ctx context.Context, input *SubmitContactInput) (*ContactView, error)

	// ListMessages returns every stored message, newest first.
	ListMessages(ctx context.Context) ([]*ContactView, error)
}
