package repositories

import (
	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) AppendMessage(m *models.ChatMessage) error {
	result := r.db.Create(m)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to append chat message")
	}
	return nil
}

func (r *ChatRepository) ListMessages(farmerID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	result := r.db.Where("farmer_id = ?", farmerID).Order("id ASC").Find(&messages)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to list chat messages")
	}
	return messages, nil
}
