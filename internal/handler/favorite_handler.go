package handler

import (
	"net/http"
	"strconv"

	"sangam/internal/middleware"
	"sangam/internal/service"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favorites *service.FavoriteService
}

func NewFavoriteHandler(favorites *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

// Add bookmarks a member. A duplicate add returns the existing row with
// already_exists=true and 200, never an error.
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID := middleware.GetUserID(c)
	targetID, _ := strconv.ParseUint(c.Param("user_id"), 10, 64)
	f, existed, err := h.favorites.Add(userID, uint(targetID))
	if err != nil {
		fail(c, err)
		return
	}
	status := http.StatusCreated
	if existed {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"favorite": f, "already_exists": existed})
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID := middleware.GetUserID(c)
	targetID, _ := strconv.ParseUint(c.Param("user_id"), 10, 64)
	found, err := h.favorites.Remove(userID, uint(targetID))
	if err != nil {
		fail(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "code": "not_found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *FavoriteHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.favorites.List(userID, limit, offset)
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]gin.H, len(list))
	for i, f := range list {
		out[i] = gin.H{
			"id":               f.ID,
			"favorite_user_id": f.FavoriteUserID,
			"display_name":     f.FavoriteUser.Name(),
			"created_at":       f.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, gin.H{"favorites": out})
}
