package repository

import (
	"errors"

	"sangam/internal/domain"
	"sangam/internal/models"

	"gorm.io/gorm"
)

type InterestRepository struct {
	db *gorm.DB
}

func NewInterestRepository(db *gorm.DB) *InterestRepository {
	return &InterestRepository{db: db}
}

// WithTx returns a copy bound to tx so lifecycle writes and their
// notifications commit as one unit.
func (r *InterestRepository) WithTx(tx *gorm.DB) *InterestRepository {
	return &InterestRepository{db: tx}
}

func (r *InterestRepository) Create(in *models.Interest) error {
	return r.db.Create(in).Error
}

func (r *InterestRepository) GetByID(id uint) (*models.Interest, error) {
	var in models.Interest
	err := r.db.First(&in, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &in, nil
}

// GetByPair looks up the exact ordered (sender, receiver) pair. The
// reverse direction is a distinct row.
func (r *InterestRepository) GetByPair(senderID, receiverID uint) (*models.Interest, error) {
	var in models.Interest
	err := r.db.Where("sender_id = ? AND receiver_id = ?", senderID, receiverID).First(&in).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *InterestRepository) UpdateStatus(id uint, status domain.InterestStatus) error {
	return r.db.Model(&models.Interest{}).Where("id = ?", id).Update("status", status).Error
}

// Delete removes the row permanently; the pair becomes free for a new
// interest with a fresh id.
func (r *InterestRepository) Delete(id uint) error {
	return r.db.Delete(&models.Interest{}, id).Error
}

func (r *InterestRepository) ListBySender(senderID uint, limit, offset int) ([]models.Interest, error) {
	var list []models.Interest
	err := r.db.Where("sender_id = ?", senderID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *InterestRepository) ListByReceiver(receiverID uint, limit, offset int) ([]models.Interest, error) {
	var list []models.Interest
	err := r.db.Where("receiver_id = ?", receiverID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *InterestRepository) ListInvolving(userID uint, limit, offset int) ([]models.Interest, error) {
	var list []models.Interest
	err := r.db.Where("sender_id = ? OR receiver_id = ?", userID, userID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

// HasAcceptedBetween reports whether an accepted interest exists between
// the two users in either direction. This is the single source of truth
// for the conversation gate.
func (r *InterestRepository) HasAcceptedBetween(a, b uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.Interest{}).
		Where("status = ?", domain.InterestAccepted).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Count(&c).Error
	return c > 0, err
}

// Exists reports whether the interest row is still present (notifiable
// resolution).
func (r *InterestRepository) Exists(id uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.Interest{}).Where("id = ?", id).Count(&c).Error
	return c > 0, err
}
