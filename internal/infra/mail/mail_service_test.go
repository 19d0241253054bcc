package mail

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestMailService(t *testing.T, mailer service.Mailer) service.NotificationService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SMTP.AdminEmail = "owner@example.com"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewMailService(cfg, mailer, logger)
}

func TestMailService_SendOrderConfirmation_BothRecipients(t *testing.T) {
	mailer := mockService.NewMockMailer(t)
	svc := newTestMailService(t, mailer)
	order := testOrder()

	var recipients []string
	mailer.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.Message")).
		Run(func(ctx context.Context, msg *service.Message) {
			recipients = append(recipients, msg.To)
		}).
		Return(nil).
		Twice()

	err := svc.SendOrderConfirmation(context.Background(), order)
	require.NoError(t, err)

	assert.Equal(t, []string{"customer@example.com", "owner@example.com"}, recipients)
}

func TestMailService_SendOrderConfirmation_AdminStillSentAfterCustomerFailure(t *testing.T) {
	mailer := mockService.NewMockMailer(t)
	svc := newTestMailService(t, mailer)
	order := testOrder()

	var recipients []string
	mailer.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.Message")).
		Run(func(ctx context.Context, msg *service.Message) {
			recipients = append(recipients, msg.To)
		}).
		Return(errors.New("relay refused")).
		Twice()

	err := svc.SendOrderConfirmation(context.Background(), order)
	assert.Error(t, err)

	// The customer failure must not prevent the admin attempt.
	assert.Equal(t, []string{"customer@example.com", "owner@example.com"}, recipients)
}

func TestMailService_SendContactNotification(t *testing.T) {
	mailer := mockService.NewMockMailer(t)
	svc := newTestMailService(t, mailer)

	message := &entity.ContactMessage{
		ID:      uuid.New(),
		Name:    "רות",
		Email:   "ruth@example.com",
		Message: "שלום",
	}

	var sent *service.Message
	mailer.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.Message")).
		Run(func(ctx context.Context, msg *service.Message) {
			sent = msg
		}).
		Return(nil).
		Once()

	err := svc.SendContactNotification(context.Background(), message)
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.Equal(t, "owner@example.com", sent.To)
	assert.Contains(t, sent.Subject, "ללא נושא", "missing subject falls back to a placeholder")
}

func TestMailService_SendContactNotification_MailerError(t *testing.T) {
	mailer := mockService.NewMockMailer(t)
	svc := newTestMailService(t, mailer)

	mailer.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.Message")).
		Return(ErrNotConfigured).
		Once()

	err := svc.SendContactNotification(context.Background(), &entity.ContactMessage{Name: "x", Email: "x@example.com", Message: "y"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
