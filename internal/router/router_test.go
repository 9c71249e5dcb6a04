package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sangam/config"
	"sangam/internal/auth"
	"sangam/internal/database"
	"sangam/internal/domain"
	"sangam/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type RouterSuite struct {
	suite.Suite
	db      *gorm.DB
	cfg     *config.Config
	engine  *gin.Engine
	a, b, c *models.User
}

func (s *RouterSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.Require().NoError(database.AutoMigrate(db))
	s.db = db
	s.cfg = &config.Config{
		Server: config.ServerConfig{Env: "test"},
		JWT: config.JWTConfig{
			AccessSecret: "test-secret",
			AccessExpiry: time.Hour,
			Issuer:       "sangam-test",
		},
		Matching: config.MatchingConfig{SuggestedLimit: 10, MaxPageSize: 50},
	}
	s.engine = Setup(s.cfg, db)
	s.a = s.seedUser("asha@example.com", "Asha")
	s.b = s.seedUser("bharat@example.com", "Bharat")
	s.c = s.seedUser("chitra@example.com", "Chitra")
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) seedUser(email, name string) *models.User {
	u := &models.User{Email: email, DisplayName: name}
	s.Require().NoError(s.db.Create(u).Error)
	return u
}

func (s *RouterSuite) do(user *models.User, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	token, err := auth.GenerateAccessToken(&s.cfg.JWT, user.ID, user.Email)
	s.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *RouterSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (s *RouterSuite) TestAuthRequired() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/matches", nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RouterSuite) TestInterestToConversationFlow() {
	// A sends an interest to B
	w := s.do(s.a, http.MethodPost, "/api/v1/interests", gin.H{"receiver_id": s.b.ID})
	s.Require().Equal(http.StatusCreated, w.Code)
	created := s.decode(w)
	interestID := uint(created["interest"].(map[string]interface{})["id"].(float64))

	// duplicate submit is a non-error carrying the existing record
	w = s.do(s.a, http.MethodPost, "/api/v1/interests", gin.H{"receiver_id": s.b.ID})
	s.Require().Equal(http.StatusOK, w.Code)
	s.True(s.decode(w)["already_exists"].(bool))

	// B sees it in the received box and got notified
	w = s.do(s.b, http.MethodGet, "/api/v1/me/interests?box=received", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Len(s.decode(w)["interests"].([]interface{}), 1)

	w = s.do(s.b, http.MethodGet, "/api/v1/me/notifications", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	notifs := s.decode(w)
	s.Equal(float64(1), notifs["unread_count"].(float64))

	// messaging before acceptance is gated
	w = s.do(s.a, http.MethodPost, "/api/v1/conversations", gin.H{"user_id": s.b.ID})
	s.Require().Equal(http.StatusForbidden, w.Code)
	s.Equal("not_connected", s.decode(w)["code"])

	// only B may accept
	w = s.do(s.a, http.MethodPost, fmt.Sprintf("/api/v1/interests/%d/accept", interestID), nil)
	s.Require().Equal(http.StatusForbidden, w.Code)

	w = s.do(s.b, http.MethodPost, fmt.Sprintf("/api/v1/interests/%d/accept", interestID), nil)
	s.Require().Equal(http.StatusOK, w.Code)

	// A now holds an interest_accepted notification
	w = s.do(s.a, http.MethodGet, "/api/v1/me/notifications", nil)
	list := s.decode(w)["notifications"].([]interface{})
	s.Require().NotEmpty(list)
	s.Equal(domain.NotifInterestAccepted, list[0].(map[string]interface{})["type"])

	// the gate opens
	w = s.do(s.a, http.MethodPost, "/api/v1/conversations", gin.H{"user_id": s.b.ID})
	s.Require().Equal(http.StatusCreated, w.Code)
	convID := uint(s.decode(w)["conversation"].(map[string]interface{})["id"].(float64))

	// empty message body fails validation
	w = s.do(s.a, http.MethodPost, fmt.Sprintf("/api/v1/conversations/%d/messages", convID), gin.H{"body": "  "})
	s.Require().Equal(http.StatusBadRequest, w.Code)
	s.Equal("validation_error", s.decode(w)["code"])

	w = s.do(s.a, http.MethodPost, fmt.Sprintf("/api/v1/conversations/%d/messages", convID), gin.H{"body": "namaste"})
	s.Require().Equal(http.StatusCreated, w.Code)

	// an outsider cannot read the thread
	w = s.do(s.c, http.MethodGet, fmt.Sprintf("/api/v1/conversations/%d/messages", convID), nil)
	s.Require().Equal(http.StatusForbidden, w.Code)

	// mark-all-read zeroes the unread count
	w = s.do(s.b, http.MethodPut, "/api/v1/me/notifications/read-all", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	w = s.do(s.b, http.MethodGet, "/api/v1/me/notifications", nil)
	s.Equal(float64(0), s.decode(w)["unread_count"].(float64))
}

func (s *RouterSuite) TestSelfInterestRejected() {
	w := s.do(s.a, http.MethodPost, "/api/v1/interests", gin.H{"receiver_id": s.a.ID})
	s.Require().Equal(http.StatusUnprocessableEntity, w.Code)
	s.Equal("self_reference", s.decode(w)["code"])
}

func (s *RouterSuite) TestFavoriteEndpoints() {
	w := s.do(s.a, http.MethodPost, fmt.Sprintf("/api/v1/favorites/%d", s.b.ID), nil)
	s.Require().Equal(http.StatusCreated, w.Code)

	// duplicate add is a non-error carrying the existing record
	w = s.do(s.a, http.MethodPost, fmt.Sprintf("/api/v1/favorites/%d", s.b.ID), nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.True(s.decode(w)["already_exists"].(bool))

	w = s.do(s.a, http.MethodGet, "/api/v1/me/favorites", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Len(s.decode(w)["favorites"].([]interface{}), 1)

	w = s.do(s.a, http.MethodDelete, fmt.Sprintf("/api/v1/favorites/%d", s.b.ID), nil)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.do(s.a, http.MethodDelete, fmt.Sprintf("/api/v1/favorites/%d", s.b.ID), nil)
	s.Require().Equal(http.StatusNotFound, w.Code)
}

func (s *RouterSuite) TestReportCarriesItsAuditRow() {
	w := s.do(s.a, http.MethodPost, "/api/v1/reports", gin.H{"reported_user_id": s.b.ID, "reason": "spam"})
	s.Require().Equal(http.StatusCreated, w.Code)
	reportID := uint(s.decode(w)["report"].(map[string]interface{})["id"].(float64))

	var audits []models.AuditLog
	s.Require().NoError(s.db.Where("action = ?", domain.AuditReportCreated).Find(&audits).Error)
	s.Require().Len(audits, 1)
	s.Equal(s.a.ID, audits[0].ActorID)
	s.Equal(reportID, audits[0].EntityID)
}

func (s *RouterSuite) TestMatchesForActorWithoutProfile() {
	w := s.do(s.a, http.MethodGet, "/api/v1/matches", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Empty(s.decode(w)["candidates"])
}
