package repository

import (
	"time"

	"sangam/internal/domain"
	"sangam/internal/models"

	"gorm.io/gorm"
)

// MatchRepository filters candidate profiles for a member. Results carry
// no ranking or freshness ordering: "suggested" candidates are simply the
// first N rows of the filtered set.
type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// FindCandidates applies the opposite-gender rule plus every non-empty
// preference field as an independent conjunctive predicate. A nil pref
// imposes no constraints. The query is read-only and restartable; callers
// page with limit/offset.
func (r *MatchRepository) FindCandidates(actor *models.Profile, pref *models.PartnerPreference, limit, offset int) ([]models.Profile, error) {
	if actor == nil {
		return []models.Profile{}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	query := r.db.Model(&models.Profile{}).
		Select("profiles.*").
		Joins("INNER JOIN users u ON u.id = profiles.user_id AND u.deleted_at IS NULL").
		Where("profiles.user_id != ?", actor.UserID)

	switch actor.Gender {
	case domain.GenderMale:
		query = query.Where("profiles.gender = ?", domain.GenderFemale)
	case domain.GenderFemale:
		query = query.Where("profiles.gender = ?", domain.GenderMale)
	}

	if pref != nil {
		now := time.Now()
		if pref.MinAge > 0 {
			// someone at least MinAge was born on or before now-MinAge years
			query = query.Where("profiles.date_of_birth <= ?", now.AddDate(-pref.MinAge, 0, 0))
		}
		if pref.MaxAge > 0 {
			// integer age MaxAge lasts until the day before the
			// MaxAge+1 birthday, so the cutoff is MaxAge+1 years back
			query = query.Where("profiles.date_of_birth > ?", now.AddDate(-(pref.MaxAge+1), 0, 0))
		}
		if pref.MinHeightCm > 0 {
			query = query.Where("profiles.height_cm >= ?", pref.MinHeightCm)
		}
		if pref.MaxHeightCm > 0 {
			query = query.Where("profiles.height_cm <= ?", pref.MaxHeightCm)
		}
		if pref.Religion != "" {
			query = query.Where("profiles.religion = ?", pref.Religion)
		}
		if pref.Caste != "" {
			query = query.Where("profiles.caste = ?", pref.Caste)
		}
		if pref.Education != "" {
			query = query.Where("profiles.education = ?", pref.Education)
		}
		if pref.City != "" {
			query = query.Where("profiles.city = ?", pref.City)
		}
		if pref.State != "" {
			query = query.Where("profiles.state = ?", pref.State)
		}
	}

	var list []models.Profile
	err := query.Preload("User").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}
