package handler

import (
	"net/http"
	"strconv"

	"sangam/internal/middleware"
	"sangam/internal/service"

	"github.com/gin-gonic/gin"
)

type InterestHandler struct {
	ledger *service.LedgerService
}

func NewInterestHandler(ledger *service.LedgerService) *InterestHandler {
	return &InterestHandler{ledger: ledger}
}

// Create sends an interest. A duplicate submit returns the existing row
// with already_exists=true and 200, never an error.
func (h *InterestHandler) Create(c *gin.Context) {
	senderID := middleware.GetUserID(c)
	var req struct {
		ReceiverID uint `json:"receiver_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation_error"})
		return
	}
	in, existed, err := h.ledger.Send(senderID, req.ReceiverID)
	if err != nil {
		fail(c, err)
		return
	}
	status := http.StatusCreated
	if existed {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"interest": in, "already_exists": existed})
}

func (h *InterestHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	box := service.InterestBox(c.DefaultQuery("box", "all"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.ledger.List(userID, box, limit, offset)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"interests": list})
}

func (h *InterestHandler) Accept(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	in, err := h.ledger.Accept(uint(id), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"interest": in})
}

func (h *InterestHandler) Reject(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	in, err := h.ledger.Reject(uint(id), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"interest": in})
}

func (h *InterestHandler) Cancel(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.ledger.Cancel(uint(id), userID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
