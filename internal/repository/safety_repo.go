package repository

import (
	"sangam/internal/models"

	"gorm.io/gorm"
)

type BlockRepository struct {
	db *gorm.DB
}

func NewBlockRepository(db *gorm.DB) *BlockRepository {
	return &BlockRepository{db: db}
}

func (r *BlockRepository) Create(b *models.Block) error {
	return r.db.Create(b).Error
}

func (r *BlockRepository) IsBlocked(userID, blockedID uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.Block{}).Where("user_id = ? AND blocked_user_id = ?", userID, blockedID).Count(&c).Error
	return c > 0, err
}

func (r *BlockRepository) Remove(userID, blockedID uint) (bool, error) {
	res := r.db.Where("user_id = ? AND blocked_user_id = ?", userID, blockedID).Delete(&models.Block{})
	return res.RowsAffected > 0, res.Error
}

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// WithTx returns a copy bound to tx so a report and its audit row commit
// as one unit.
func (r *ReportRepository) WithTx(tx *gorm.DB) *ReportRepository {
	return &ReportRepository{db: tx}
}

func (r *ReportRepository) Create(rep *models.Report) error {
	return r.db.Create(rep).Error
}

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) WithTx(tx *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: tx}
}

func (r *AuditLogRepository) Record(actorID uint, action, entity string, entityID uint, detail string) error {
	return r.db.Create(&models.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Detail:   detail,
	}).Error
}
