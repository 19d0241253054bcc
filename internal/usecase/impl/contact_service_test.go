package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContactService(contactRepo *mockRepo.MockContactRepository, notifier *mockService.MockNotificationService) *contactService {
	svc := NewContactService(ContactServiceParams{
		ContactRepo: contactRepo,
		Notifier:    notifier,
		Logger:      discardLogger(),
	}).(*contactService)
	svc.dispatch = func(ctx context.Context, fn func(ctx context.Context)) {
		fn(ctx)
	}

	return svc
}

func TestContactService_SubmitContact_Success(t *testing.T) {
	contactRepo := mockRepo.NewMockContactRepository(t)
	notifier := mockService.NewMockNotificationService(t)
	svc := newTestContactService(contactRepo, notifier)

	ctx := context.Background()

	var persisted *entity.ContactMessage
	contactRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ContactMessage")).
		Run(func(ctx context.Context, message *entity.ContactMessage) {
			persisted = message
		}).
		Return(nil)
	notifier.EXPECT().
		SendContactNotification(mock.Anything, mock.AnythingOfType("*entity.ContactMessage")).
		Return(nil)

	view, err := svc.SubmitContact(ctx, &usecase.SubmitContactInput{
		Name:    "רות לוי",
		Email:   "ruth@example.com",
		Message: "אשמח להצעת מחיר.",
	})
	require.NoError(t, err)

	require.NotNil(t, persisted)
	assert.Equal(t, entity.ContactStatusNew, persisted.Status, "submissions always start as new")
	assert.Equal(t, "new", view.Status)
	assert.Equal(t, persisted.ID.String(), view.ID)
}

func TestContactService_SubmitContact_NotificationFailureDoesNotSurface(t *testing.T) {
	contactRepo := mockRepo.NewMockContactRepository(t)
	notifier := mockService.NewMockNotificationService(t)
	svc := newTestContactService(contactRepo, notifier)

	ctx := context.Background()

	contactRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ContactMessage")).Return(nil)
	notifier.EXPECT().
		SendContactNotification(mock.Anything, mock.AnythingOfType("*entity.ContactMessage")).
		Return(errors.New("relay unavailable"))

	_, err := svc.SubmitContact(ctx, &usecase.SubmitContactInput{
		Name:    "רות",
		Email:   "ruth@example.com",
		Message: "שלום",
	})
	require.NoError(t, err)
}

func TestContactService_SubmitContact_PersistFailure(t *testing.T) {
	contactRepo := mockRepo.NewMockContactRepository(t)
	notifier := mockService.NewMockNotificationService(t)
	svc := newTestContactService(contactRepo, notifier)

	ctx := context.Background()

	contactRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ContactMessage")).Return(errors.New("insert failed"))

	_, err := svc.SubmitContact(ctx, &usecase.SubmitContactInput{
		Name:    "רות",
		Email:   "ruth@example.com",
		Message: "שלום",
	})
	assert.Error(t, err)
	notifier.AssertNotCalled(t, "SendContactNotification", mock.Anything, mock.Anything)
}

func TestContactService_ListMessages(t *testing.T) {
	contactRepo := mockRepo.NewMockContactRepository(t)
	notifier := mockService.NewMockNotificationService(t)
	svc := newTestContactService(contactRepo, notifier)

	ctx := context.Background()
	messages := []*entity.ContactMessage{
		{ID: uuid.New(), Name: "א", Status: entity.ContactStatusNew},
		{ID: uuid.New(), Name: "ב", Status: entity.ContactStatusRead},
	}

	contactRepo.EXPECT().List(ctx).Return(messages, nil)

	views, err := svc.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "new", views[0].Status)
	assert.Equal(t, "read", views[1].Status)
}
