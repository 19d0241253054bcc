package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	notifier    service.NotificationService
	logger      *slog.Logger

	dispatch func(ctx context.Context, fn func(ctx context.Context))
}

// ContactServiceParams holds dependencies for contactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	Notifier    service.NotificationService
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		notifier:    params.Notifier,
		logger:      params.Logger,
		dispatch:    asyncDispatch,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitContact stores the submission and forwards it to the store admin as
// a best-effort side effect; the submitter always gets confirmation of the
// stored message.
func (srv *contactService) SubmitContact(ctx context.Context, input *usecase.SubmitContactInput) (*usecase.ContactView, error) {
	message := &entity.ContactMessage{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Subject:   input.Subject,
		Message:   input.Message,
		Status:    entity.ContactStatusNew,
		CreatedAt: time.Now().UTC(),
	}

	if err := srv.contactRepo.Create(ctx, message); err != nil {
		srv.log(ctx).Error("Failed to persist contact message", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist contact message")
	}

	srv.log(ctx).Info("Contact message stored", slog.Any("messageID", message.ID), slog.String("from", message.Email))

	logger := srv.log(ctx)
	srv.dispatch(ctx, func(ctx context.Context) {
		if err := srv.notifier.SendContactNotification(ctx, message); err != nil {
			logger.Error("Contact notification email failed",
				slog.Any("messageID", message.ID),
				slog.Any("error", err))
		}
	})

	return usecase.NewContactView(message), nil
}

// ListMessages returns every stored contact message, newest first.
func (srv *contactService) ListMessages(ctx context.Context) ([]*usecase.ContactView, error) {
	messages, err := srv.contactRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contact messages")
	}

	views := make([]*usecase.ContactView, 0, len(messages))
	for _, message := range messages {
		views = append(views, usecase.NewContactView(message))
	}

	return views, nil
}
