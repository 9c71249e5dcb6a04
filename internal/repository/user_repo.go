package repository

import (
	"errors"

	"sangam/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var u models.User
	err := r.db.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetProfile returns the member's profile, nil when none exists yet.
func (r *UserRepository) GetProfile(userID uint) (*models.Profile, error) {
	var p models.Profile
	err := r.db.Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPreference returns the member's partner preference, nil when absent.
// An absent document means "no constraints".
func (r *UserRepository) GetPreference(userID uint) (*models.PartnerPreference, error) {
	var pref models.PartnerPreference
	err := r.db.Where("user_id = ?", userID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// Exists reports whether a live user row exists.
func (r *UserRepository) Exists(id uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&c).Error
	return c > 0, err
}
