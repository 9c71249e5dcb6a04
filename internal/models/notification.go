package models

import "time"

// Notification is an append-only side effect of another entity's
// transition. Title, body and metadata are snapshots taken at event time
// and are never rewritten if the referenced entity changes later.
// NotifiableType/NotifiableID form a weak reference; the target may have
// been deleted by the time a reader resolves it.
type Notification struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	RecipientID    uint       `gorm:"not null;index" json:"recipient_id"`
	ActorID        *uint      `gorm:"index" json:"actor_id"`
	NotifiableType string     `gorm:"size:32" json:"notifiable_type"`
	NotifiableID   *uint      `json:"notifiable_id"`
	Type           string     `gorm:"size:50;not null;index" json:"type"`
	Title          string     `gorm:"size:255" json:"title"`
	Body           string     `gorm:"type:text" json:"body"`
	Metadata       string     `gorm:"type:text" json:"metadata"` // JSON snapshot
	ReadAt         *time.Time `json:"read_at"`
	CreatedAt      time.Time  `json:"created_at"`

	Recipient User  `gorm:"foreignKey:RecipientID" json:"-"`
	Actor     *User `gorm:"foreignKey:ActorID" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}

func (n *Notification) IsRead() bool { return n.ReadAt != nil }
