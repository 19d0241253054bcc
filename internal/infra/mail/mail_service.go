package mail

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/pkg/errors"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// mailService implements service.NotificationService on top of the renderer
// and a Mailer. Every send is a single best-effort attempt; the caller owns
// the decision to swallow errors.
type mailService struct {
	mailer     service.Mailer
	adminEmail string
	logger     *slog.Logger
}

// NewMailService is the constructor for mailService.
func NewMailService(cfg *config.Config, mailer service.Mailer, logger *slog.Logger) service.NotificationService {
	return &mailService{
		mailer:     mailer,
		adminEmail: cfg.SMTP.AdminEmail,
		logger:     logger,
	}
}

// SendOrderConfirmation sends the customer confirmation and the admin alert
// for a freshly persisted order. Both messages are attempted even if the
// first one fails.
func (s *mailService) SendOrderConfirmation(ctx context.Context, order *entity.Order) error {
	var errs []error

	customerHTML, err := RenderOrderEmail(order, service.AudienceCustomer)
	if err != nil {
		errs = append(errs, err)
	} else {
		err = s.mailer.Send(ctx, &service.Message{
			To:      order.CustomerEmail,
			Subject: "אישור הזמנה - חזון מערכות אבטחה",
			HTML:    customerHTML,
		})
		if err != nil {
			errs = append(errs, errors.Wrap(err, "customer confirmation"))
		}
	}

	adminHTML, err := RenderOrderEmail(order, service.AudienceAdmin)
	if err != nil {
		errs = append(errs, err)
	} else {
		err = s.mailer.Send(ctx, &service.Message{
			To:      s.adminEmail,
			Subject: "הזמנה חדשה מ-" + order.CustomerName + " - #" + orderRef(order),
			HTML:    adminHTML,
		})
		if err != nil {
			errs = append(errs, errors.Wrap(err, "admin alert"))
		}
	}

	if len(errs) > 0 {
		return errors.Wrap(stderrors.Join(errs...), "failed to send order emails")
	}

	s.logger.Info("Order confirmation emails sent",
		slog.String("orderID", order.ID.String()),
		slog.String("customerEmail", order.CustomerEmail),
	)

	return nil
}

// SendContactNotification forwards a contact submission to the store
// administrator.
func (s *mailService) SendContactNotification(ctx context.Context, message *entity.ContactMessage) error {
	html, err := RenderContactEmail(message)
	if err != nil {
		return err
	}

	subject := message.Subject
	if subject == "" {
		subject = "ללא נושא"
	}

	err = s.mailer.Send(ctx, &service.Message{
		To:      s.adminEmail,
		Subject: "צור קשר מ-" + message.Name + " - " + subject,
		HTML:    html,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send contact email")
	}

	return nil
}
