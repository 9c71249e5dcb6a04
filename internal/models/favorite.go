package models

import "time"

// Favorite bookmarks another member. One row per (user, favorite_user)
// pair, hard-deleted on remove so re-adding works.
type Favorite struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index:idx_fav_pair,unique" json:"user_id"`
	FavoriteUserID uint      `gorm:"not null;index:idx_fav_pair,unique" json:"favorite_user_id"`
	CreatedAt      time.Time `json:"created_at"`

	User         User `gorm:"foreignKey:UserID" json:"-"`
	FavoriteUser User `gorm:"foreignKey:FavoriteUserID" json:"-"`
}

func (Favorite) TableName() string {
	return "favorites"
}
