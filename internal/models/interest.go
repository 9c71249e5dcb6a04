package models

import (
	"time"

	"sangam/internal/domain"
)

// Interest is a directional connection request. The ordered
// (sender, receiver) pair is unique; the reverse direction is a distinct
// row. No soft delete: cancel removes the row so the pair can be re-sent
// under a fresh id.
type Interest struct {
	ID         uint                  `gorm:"primaryKey" json:"id"`
	SenderID   uint                  `gorm:"not null;index:idx_interest_pair,unique" json:"sender_id"`
	ReceiverID uint                  `gorm:"not null;index:idx_interest_pair,unique;index" json:"receiver_id"`
	Status     domain.InterestStatus `gorm:"size:20;not null;index" json:"status"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`

	Sender   User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}

func (Interest) TableName() string {
	return "interests"
}

func (i *Interest) IsAccepted() bool { return i.Status == domain.InterestAccepted }
