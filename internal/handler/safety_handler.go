package handler

import (
	"net/http"
	"strconv"

	"sangam/internal/domain"
	"sangam/internal/middleware"
	"sangam/internal/models"
	"sangam/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SafetyHandler struct {
	db      *gorm.DB
	blocks  *repository.BlockRepository
	reports *repository.ReportRepository
	audits  *repository.AuditLogRepository
}

func NewSafetyHandler(db *gorm.DB, blocks *repository.BlockRepository, reports *repository.ReportRepository, audits *repository.AuditLogRepository) *SafetyHandler {
	return &SafetyHandler{db: db, blocks: blocks, reports: reports, audits: audits}
}

// Block is idempotent: blocking an already-blocked member returns ok.
func (h *SafetyHandler) Block(c *gin.Context) {
	userID := middleware.GetUserID(c)
	targetID, _ := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if userID == uint(targetID) {
		fail(c, domain.ErrSelfReference)
		return
	}
	blocked, err := h.blocks.IsBlocked(userID, uint(targetID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "block failed"})
		return
	}
	if blocked {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	if err := h.blocks.Create(&models.Block{UserID: userID, BlockedUserID: uint(targetID)}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "block failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "ok"})
}

func (h *SafetyHandler) Unblock(c *gin.Context) {
	userID := middleware.GetUserID(c)
	targetID, _ := strconv.ParseUint(c.Param("user_id"), 10, 64)
	found, err := h.blocks.Remove(userID, uint(targetID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unblock failed"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "code": "not_found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *SafetyHandler) Report(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		ReportedUserID uint   `json:"reported_user_id" binding:"required"`
		Reason         string `json:"reason" binding:"required"`
		Details        string `json:"details"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation_error"})
		return
	}
	if userID == req.ReportedUserID {
		fail(c, domain.ErrSelfReference)
		return
	}
	rep := &models.Report{
		ReporterID:     userID,
		ReportedUserID: req.ReportedUserID,
		Reason:         req.Reason,
		Details:        req.Details,
	}
	// the report and its audit row commit together or not at all
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := h.reports.WithTx(tx).Create(rep); err != nil {
			return err
		}
		return h.audits.WithTx(tx).Record(userID, domain.AuditReportCreated, "report", rep.ID, req.Reason)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"report": rep})
}
