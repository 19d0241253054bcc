// Package mail implements the outbound email infrastructure: an SMTP mailer
// and the HTML renderings of the store's transactional messages.
package mail

import (
	"context"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"

	"storefront/config"
	"storefront/internal/domain/service"
)

// ErrNotConfigured is returned when relay credentials are absent. This is a
// valid configuration state, not a fault: callers log and move on without a
// network call ever being attempted.
var ErrNotConfigured = errors.New("smtp credentials not configured")

// smtpMailer delivers messages over a single STARTTLS SMTP attempt.
// It never retries.
type smtpMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config) service.Mailer {
	return &smtpMailer{cfg: cfg.SMTP}
}

// Send performs one delivery attempt. Missing credentials short-circuit to
// ErrNotConfigured before any dial.
func (m *smtpMailer) Send(_ context.Context, msg *service.Message) error {
	if !m.cfg.Configured() {
		return ErrNotConfigured
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.cfg.User)
	mail.SetHeader("To", msg.To)
	mail.SetHeader("Subject", msg.Subject)
	if msg.Text != "" {
		mail.SetBody("text/plain", msg.Text)
		mail.AddAlternative("text/html", msg.HTML)
	} else {
		mail.SetBody("text/html", msg.HTML)
	}

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := dialer.DialAndSend(mail); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	return nil
}
