package handler

import (
	"net/http"
	"strconv"
	"time"

	"sangam/config"
	"sangam/internal/middleware"
	"sangam/internal/models"
	"sangam/internal/repository"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchRepo *repository.MatchRepository
	userRepo  *repository.UserRepository
	cfg       *config.MatchingConfig
}

func NewMatchHandler(matchRepo *repository.MatchRepository, userRepo *repository.UserRepository, cfg *config.MatchingConfig) *MatchHandler {
	return &MatchHandler{matchRepo: matchRepo, userRepo: userRepo, cfg: cfg}
}

// List returns candidates for the acting member with their preference
// document applied. A member without a profile gets an empty list, not an
// error.
func (h *MatchHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit > h.cfg.MaxPageSize {
		limit = h.cfg.MaxPageSize
	}
	h.respond(c, userID, limit, offset)
}

// Suggested returns the first N of the filtered sequence. There is no
// ranking behind this shelf.
func (h *MatchHandler) Suggested(c *gin.Context) {
	userID := middleware.GetUserID(c)
	h.respond(c, userID, h.cfg.SuggestedLimit, 0)
}

func (h *MatchHandler) respond(c *gin.Context, userID uint, limit, offset int) {
	profile, err := h.userRepo.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "match lookup failed"})
		return
	}
	pref, err := h.userRepo.GetPreference(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "match lookup failed"})
		return
	}
	list, err := h.matchRepo.FindCandidates(profile, pref, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "match lookup failed"})
		return
	}
	now := time.Now()
	out := make([]gin.H, len(list))
	for i, p := range list {
		out[i] = candidateView(&p, now)
	}
	c.JSON(http.StatusOK, gin.H{"candidates": out})
}

func candidateView(p *models.Profile, now time.Time) gin.H {
	return gin.H{
		"user_id":      p.UserID,
		"display_name": p.User.Name(),
		"gender":       p.Gender,
		"age":          p.Age(now),
		"height_cm":    p.HeightCm,
		"religion":     p.Religion,
		"caste":        p.Caste,
		"education":    p.Education,
		"profession":   p.Profession,
		"city":         p.City,
		"state":        p.State,
	}
}
