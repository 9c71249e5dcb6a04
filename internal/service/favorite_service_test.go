package service

import (
	"testing"

	"sangam/internal/domain"
	"sangam/internal/models"
	"sangam/internal/repository"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type FavoriteSuite struct {
	suite.Suite
	db        *gorm.DB
	favorites *FavoriteService
	a, b      *models.User
}

func (s *FavoriteSuite) SetupTest() {
	s.db = newTestDB(s.T())
	favRepo := repository.NewFavoriteRepository(s.db)
	users := repository.NewUserRepository(s.db)
	notifier := NewNotificationService(repository.NewNotificationRepository(s.db))
	s.favorites = NewFavoriteService(s.db, favRepo, users, notifier)
	s.a = seedUser(s.T(), s.db, "asha@example.com", "Asha")
	s.b = seedUser(s.T(), s.db, "bharat@example.com", "Bharat")
}

func TestFavoriteSuite(t *testing.T) {
	suite.Run(t, new(FavoriteSuite))
}

func (s *FavoriteSuite) TestAdd() {
	var firstID uint

	s.Run("creates row and notifies the target", func() {
		f, existed, err := s.favorites.Add(s.a.ID, s.b.ID)
		s.Require().NoError(err)
		s.False(existed)
		s.Equal(s.b.ID, f.FavoriteUserID)
		firstID = f.ID

		var notifs []models.Notification
		s.Require().NoError(s.db.Where("recipient_id = ? AND type = ?", s.b.ID, domain.NotifFavorited).Find(&notifs).Error)
		s.Require().Len(notifs, 1)
		s.Contains(notifs[0].Body, "Asha")
	})

	s.Run("duplicate pair is a no-op returning the existing row", func() {
		f, existed, err := s.favorites.Add(s.a.ID, s.b.ID)
		s.Require().NoError(err)
		s.True(existed)
		s.Equal(firstID, f.ID)

		var c int64
		s.Require().NoError(s.db.Model(&models.Favorite{}).Count(&c).Error)
		s.Equal(int64(1), c)
		// no second notification either
		var notifs []models.Notification
		s.Require().NoError(s.db.Where("recipient_id = ? AND type = ?", s.b.ID, domain.NotifFavorited).Find(&notifs).Error)
		s.Len(notifs, 1)
	})

	s.Run("self reference fails", func() {
		_, _, err := s.favorites.Add(s.a.ID, s.a.ID)
		s.Require().ErrorIs(err, domain.ErrSelfReference)
	})

	s.Run("unknown target fails with not found", func() {
		_, _, err := s.favorites.Add(s.a.ID, 9999)
		s.Require().ErrorIs(err, domain.ErrNotFound)
	})
}

func (s *FavoriteSuite) TestRemove() {
	s.Run("reports found and actually deletes", func() {
		_, _, err := s.favorites.Add(s.a.ID, s.b.ID)
		s.Require().NoError(err)
		found, err := s.favorites.Remove(s.a.ID, s.b.ID)
		s.Require().NoError(err)
		s.True(found)
	})

	s.Run("removing an absent pair is not an error", func() {
		found, err := s.favorites.Remove(s.a.ID, s.b.ID)
		s.Require().NoError(err)
		s.False(found)
	})

	s.Run("pair is re-added fresh after removal", func() {
		_, existed, err := s.favorites.Add(s.a.ID, s.b.ID)
		s.Require().NoError(err)
		s.False(existed)
		_, err = s.favorites.Remove(s.a.ID, s.b.ID)
		s.Require().NoError(err)
		_, existed, err = s.favorites.Add(s.a.ID, s.b.ID)
		s.Require().NoError(err)
		s.False(existed)
	})
}

func (s *FavoriteSuite) TestList() {
	_, _, err := s.favorites.Add(s.a.ID, s.b.ID)
	s.Require().NoError(err)
	list, err := s.favorites.List(s.a.ID, 20, 0)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("Bharat", list[0].FavoriteUser.Name())
}
