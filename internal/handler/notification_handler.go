package handler

import (
	"net/http"
	"strconv"

	"sangam/internal/middleware"
	"sangam/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifications *service.NotificationService
}

func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List returns the member's notifications with an unread count. Each row
// carries its weak reference resolved at read time; a deleted target
// degrades to "unknown".
func (h *NotificationHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, unread, err := h.notifications.List(userID, limit, offset)
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]gin.H, len(list))
	for i, n := range list {
		entry := gin.H{
			"id":         n.ID,
			"type":       n.Type,
			"title":      n.Title,
			"body":       n.Body,
			"actor_id":   n.ActorID,
			"metadata":   n.Metadata,
			"read":       n.IsRead(),
			"created_at": n.CreatedAt,
		}
		if status := h.notifications.ResolveNotifiable(&n); status != "" {
			entry["notifiable"] = gin.H{
				"kind":   n.NotifiableType,
				"id":     n.NotifiableID,
				"status": status,
			}
		}
		out[i] = entry
	}
	c.JSON(http.StatusOK, gin.H{"notifications": out, "unread_count": unread})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.notifications.MarkRead(uint(id), userID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if err := h.notifications.MarkAllRead(userID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
