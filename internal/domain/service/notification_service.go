package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// Audience selects the rendering of a transactional document. The same
// order data produces two framings: a confirmation for the customer and an
// alert for the store administrator.
type Audience string

const (
	// AudienceCustomer renders the customer-facing confirmation.
	AudienceCustomer Audience = "customer"
	// AudienceAdmin renders the back-office alert.
	AudienceAdmin Audience = "admin"
)

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string // Optional plaintext alternative.
}

// Mailer performs a single best-effort delivery attempt over the outbound
// relay. Missing relay credentials are a valid configuration state and must
// short-circuit to an error without a network call. Implementations never
// retry.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// NotificationService renders and sends transactional email. Callers treat
// every method as best effort: errors are logged by the dispatching
// goroutine and never affect the primary operation's outcome.
type NotificationService interface {
	// SendOrderConfirmation sends the customer confirmation and the admin
	// alert for a freshly persisted order.
	SendOrderConfirmation(ctx context.Context, order *entity.Order) error

	// SendContactNotification forwards a contact submission to the store
	// administrator.
	SendContactNotification(ctx context.Context, message *entity.ContactMessage) error
}
