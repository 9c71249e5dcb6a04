package repository

import (
	"errors"

	"sangam/internal/models"

	"gorm.io/gorm"
)

type ConversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

func (r *ConversationRepository) WithTx(tx *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: tx}
}

func (r *ConversationRepository) Create(c *models.Conversation) error {
	return r.db.Create(c).Error
}

func (r *ConversationRepository) GetByID(id uint) (*models.Conversation, error) {
	var c models.Conversation
	err := r.db.First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetBetween looks up both orderings of the pair so two members converge
// on a single conversation no matter who initiated.
func (r *ConversationRepository) GetBetween(a, b uint) (*models.Conversation, error) {
	var c models.Conversation
	err := r.db.Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ConversationRepository) ListByUserID(userID uint, limit, offset int) ([]models.Conversation, error) {
	var list []models.Conversation
	err := r.db.Where("sender_id = ? OR receiver_id = ?", userID, userID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *ConversationRepository) Exists(id uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.Conversation{}).Where("id = ?", id).Count(&c).Error
	return c > 0, err
}

// Messages

func (r *ConversationRepository) CreateMessage(m *models.Message) error {
	return r.db.Create(m).Error
}

func (r *ConversationRepository) ListMessages(conversationID uint, limit, offset int) ([]models.Message, error) {
	var list []models.Message
	err := r.db.Where("conversation_id = ?", conversationID).Order("created_at ASC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *ConversationRepository) MessageExists(id uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.Message{}).Where("id = ?", id).Count(&c).Error
	return c > 0, err
}
