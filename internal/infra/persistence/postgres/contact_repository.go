package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contactRepository implements repository.ContactRepository using GORM.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

// Create persists a new contact submission.
func (repo *contactRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	if err := repo.db.WithContext(ctx).Create(fromContactDomain(message)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact message")
	}

	return nil
}

// List retrieves every contact submission, newest first.
func (repo *contactRepository) List(ctx context.Context) ([]*entity.ContactMessage, error) {
	var messageMs []model.ContactMessageModel
	err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&messageMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contact messages")
	}

	messages := make([]*entity.ContactMessage, 0, len(messageMs))
	for i := range messageMs {
		messages = append(messages, toContactDomain(&messageMs[i]))
	}

	return messages, nil
}

// --- Mapper Functions ---

func toContactDomain(data *model.ContactMessageModel) *entity.ContactMessage {
	return &entity.ContactMessage{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Subject:   data.Subject,
		Message:   data.Message,
		Status:    entity.ContactStatus(data.Status),
		CreatedAt: parseTimestamp(data.CreatedAt),
	}
}

func fromContactDomain(data *entity.ContactMessage) *model.ContactMessageModel {
	return &model.ContactMessageModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Subject:   data.Subject,
		Message:   data.Message,
		Status:    string(data.Status),
		CreatedAt: formatTimestamp(data.CreatedAt),
	}
}
