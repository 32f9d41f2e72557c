package repositories

import (
	"context"
	"errors"

	"nightsky.wedding/configs/configslog"
	"nightsky.wedding/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IMessageRepository covers the message board store.
type IMessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	FindAll(ctx context.Context) ([]models.Message, error)
	// UpdateFlags sets the moderation flags; nil means leave unchanged.
	UpdateFlags(ctx context.Context, id string, publish, anonymous *bool) error
}

// MessageRepository implements IMessageRepository on GORM.
type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) IMessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	if message == nil {
		return errors.New("message is nil")
	}
	err := r.db.WithContext(ctx).Create(message).Error
	if err != nil {
		configslog.Log.Error("MessageRepository.Create: DB error", zap.Error(err))
	}
	return err
}

func (r *MessageRepository) FindAll(ctx context.Context) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).Order("submitted_at DESC").Find(&messages).Error
	if err != nil {
		configslog.Log.Error("MessageRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepository) UpdateFlags(ctx context.Context, id string, publish, anonymous *bool) error {
	if id == "" {
		return ErrNotFound
	}
	updates := map[string]interface{}{}
	if publish != nil {
		updates["publish"] = *publish
	}
	if anonymous != nil {
		updates["anonymous"] = *anonymous
	}
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&models.Message{}).Where("message_id = ?", id).Updates(updates)
	if result.Error != nil {
		configslog.Log.Error("MessageRepository.UpdateFlags: DB error", zap.String("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IMessageRepository = (*MessageRepository)(nil)
