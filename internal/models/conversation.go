package models

import "time"

// Conversation is keyed by the ordered (sender, receiver) pair at the
// storage level. Lookups check both orderings so two members converge on
// one conversation regardless of who initiated it.
type Conversation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"not null;index:idx_conv_pair,unique" json:"sender_id"`
	ReceiverID uint      `gorm:"not null;index:idx_conv_pair,unique;index" json:"receiver_id"`
	CreatedAt  time.Time `json:"created_at"`

	Sender   User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// Involves reports whether userID is a participant.
func (c *Conversation) Involves(userID uint) bool {
	return c.SenderID == userID || c.ReceiverID == userID
}

// OtherParticipant returns the counterpart of userID (zero if userID is
// not a participant).
func (c *Conversation) OtherParticipant(userID uint) uint {
	switch userID {
	case c.SenderID:
		return c.ReceiverID
	case c.ReceiverID:
		return c.SenderID
	}
	return 0
}

type Message struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ConversationID uint      `gorm:"not null;index" json:"conversation_id"`
	AuthorID       uint      `gorm:"not null;index" json:"author_id"`
	Body           string    `gorm:"type:text;not null" json:"body"`
	CreatedAt      time.Time `json:"created_at"`

	Conversation Conversation `gorm:"foreignKey:ConversationID" json:"-"`
	Author       User         `gorm:"foreignKey:AuthorID" json:"-"`
}

func (Message) TableName() string {
	return "messages"
}
