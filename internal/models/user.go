package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Email       string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	DisplayName string         `gorm:"size:64;not null;default:''" json:"display_name"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Profile    *Profile           `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Preference *PartnerPreference `gorm:"foreignKey:UserID" json:"preference,omitempty"`
}

// Name returns the best display string for notification text.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	if u.Email != "" {
		return u.Email
	}
	return "Someone"
}

// Profile holds the matchable attributes of a member. This core treats it
// as read-only input; profile CRUD lives elsewhere.
type Profile struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	Gender      string     `gorm:"size:16;not null;index" json:"gender"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	HeightCm    int        `json:"height_cm"`
	Religion    string     `gorm:"size:64;index" json:"religion"`
	Caste       string     `gorm:"size:64" json:"caste"`
	Education   string     `gorm:"size:128" json:"education"`
	Profession  string     `gorm:"size:128" json:"profession"`
	City        string     `gorm:"size:64" json:"city"`
	State       string     `gorm:"size:64" json:"state"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Profile) TableName() string {
	return "profiles"
}

// Age returns age in years at t (zero when DOB is unset).
func (p *Profile) Age(t time.Time) int {
	if p.DateOfBirth == nil {
		return 0
	}
	age := t.Year() - p.DateOfBirth.Year()
	if t.YearDay() < p.DateOfBirth.YearDay() {
		age--
	}
	return age
}

// PartnerPreference is a member's optional filter document. A zero or
// empty field imposes no constraint on that dimension.
type PartnerPreference struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	MinAge      int       `json:"min_age"`
	MaxAge      int       `json:"max_age"`
	MinHeightCm int       `json:"min_height_cm"`
	MaxHeightCm int       `json:"max_height_cm"`
	Religion    string    `gorm:"size:64" json:"religion"`
	Caste       string    `gorm:"size:64" json:"caste"`
	Education   string    `gorm:"size:128" json:"education"`
	City        string    `gorm:"size:64" json:"city"`
	State       string    `gorm:"size:64" json:"state"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (PartnerPreference) TableName() string {
	return "partner_preferences"
}
