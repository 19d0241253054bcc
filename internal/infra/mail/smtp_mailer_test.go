package mail

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func TestSMTPMailer_Send_NotConfigured(t *testing.T) {
	cfg := &config.Config{}
	cfg.SMTP.Host = "smtp.example.com"
	cfg.SMTP.Port = 587
	// No user or password: the mailer must refuse without dialing.

	mailer := NewSMTPMailer(cfg)
	err := mailer.Send(context.Background(), &service.Message{
		To:      "someone@example.com",
		Subject: "hello",
		HTML:    "<p>hi</p>",
	})

	assert.ErrorIs(t, err, ErrNotConfigured)
}
