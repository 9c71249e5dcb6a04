package repository

import (
	"time"

	"sangam/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) WithTx(tx *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: tx}
}

func (r *NotificationRepository) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

func (r *NotificationRepository) ListByRecipient(recipientID uint, limit, offset int) ([]models.Notification, error) {
	var list []models.Notification
	err := r.db.Where("recipient_id = ?", recipientID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *NotificationRepository) CountUnread(recipientID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.Notification{}).Where("recipient_id = ? AND read_at IS NULL", recipientID).Count(&c).Error
	return c, err
}

// MarkRead flips a single notification owned by the recipient. Re-marking
// a read notification is a no-op, not an error.
func (r *NotificationRepository) MarkRead(id, recipientID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ? AND read_at IS NULL", id, recipientID).
		Update("read_at", time.Now()).Error
}

func (r *NotificationRepository) MarkAllRead(recipientID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND read_at IS NULL", recipientID).
		Update("read_at", time.Now()).Error
}
