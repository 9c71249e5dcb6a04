package models

import "time"

type Block struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index:idx_block_pair,unique" json:"user_id"`
	BlockedUserID uint      `gorm:"not null;index:idx_block_pair,unique" json:"blocked_user_id"`
	CreatedAt     time.Time `json:"created_at"`

	User        User `gorm:"foreignKey:UserID" json:"-"`
	BlockedUser User `gorm:"foreignKey:BlockedUserID" json:"-"`
}

func (Block) TableName() string {
	return "blocks"
}

type Report struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ReporterID     uint      `gorm:"not null;index" json:"reporter_id"`
	ReportedUserID uint      `gorm:"not null;index" json:"reported_user_id"`
	Reason         string    `gorm:"size:64;not null" json:"reason"`
	Details        string    `gorm:"type:text" json:"details"`
	CreatedAt      time.Time `json:"created_at"`

	Reporter     User `gorm:"foreignKey:ReporterID" json:"-"`
	ReportedUser User `gorm:"foreignKey:ReportedUserID" json:"-"`
}

func (Report) TableName() string {
	return "reports"
}

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ActorID   uint      `gorm:"index" json:"actor_id"`
	Action    string    `gorm:"size:64;not null;index" json:"action"`
	Entity    string    `gorm:"size:32" json:"entity"`
	EntityID  uint      `json:"entity_id"`
	Detail    string    `gorm:"type:text" json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
