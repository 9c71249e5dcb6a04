package repository

import (
	"errors"

	"sangam/internal/models"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) WithTx(tx *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: tx}
}

func (r *FavoriteRepository) Create(f *models.Favorite) error {
	return r.db.Create(f).Error
}

// GetByPair looks up the exact (user, favorite) pair.
func (r *FavoriteRepository) GetByPair(userID, targetID uint) (*models.Favorite, error) {
	var f models.Favorite
	err := r.db.Where("user_id = ? AND favorite_user_id = ?", userID, targetID).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Remove hard-deletes the pair and reports whether a row was found.
func (r *FavoriteRepository) Remove(userID, targetID uint) (bool, error) {
	res := r.db.Where("user_id = ? AND favorite_user_id = ?", userID, targetID).Delete(&models.Favorite{})
	return res.RowsAffected > 0, res.Error
}

func (r *FavoriteRepository) ListByUserID(userID uint, limit, offset int) ([]models.Favorite, error) {
	var list []models.Favorite
	err := r.db.Where("user_id = ?", userID).Preload("FavoriteUser").Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *FavoriteRepository) Exists(id uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.Favorite{}).Where("id = ?", id).Count(&c).Error
	return c > 0, err
}
