package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// MessageRepository defines the interface for admin message operations
type MessageRepository interface {
	Create(ctx context.Context, message *models.AdminMessage) error
	GetByID(ctx context.Context, id uint) (*models.AdminMessage, error)
	Update(ctx context.Context, message *models.AdminMessage) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, activeOnly bool) ([]models.AdminMessage, error)
}

// messageRepository implements MessageRepository
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new admin message repository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.AdminMessage) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *messageRepository) GetByID(ctx context.Context, id uint) (*models.AdminMessage, error) {
	var message models.AdminMessage
	if err := r.db.WithContext(ctx).First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Message", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &message, nil
}

func (r *messageRepository) Update(ctx context.Context, message *models.AdminMessage) error {
	if err := r.db.WithContext(ctx).Save(message).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *messageRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.AdminMessage{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Message", id)
	}
	return nil
}

func (r *messageRepository) List(ctx context.Context, activeOnly bool) ([]models.AdminMessage, error) {
	query := r.db.WithContext(ctx).Model(&models.AdminMessage{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var messages []models.AdminMessage
	if err := query.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}
