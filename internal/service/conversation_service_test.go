package service

import (
	"testing"

	"sangam/internal/domain"
	"sangam/internal/models"
	"sangam/internal/repository"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ConversationSuite struct {
	suite.Suite
	db            *gorm.DB
	conversations *ConversationService
	ledger        *LedgerService
	a, b, c       *models.User
}

func (s *ConversationSuite) SetupTest() {
	s.db = newTestDB(s.T())
	interests := repository.NewInterestRepository(s.db)
	users := repository.NewUserRepository(s.db)
	notifier := NewNotificationService(repository.NewNotificationRepository(s.db))
	s.ledger = NewLedgerService(s.db, interests, users, repository.NewAuditLogRepository(s.db), notifier)
	s.conversations = NewConversationService(s.db, repository.NewConversationRepository(s.db), interests, users, notifier)
	s.a = seedUser(s.T(), s.db, "asha@example.com", "Asha")
	s.b = seedUser(s.T(), s.db, "bharat@example.com", "Bharat")
	s.c = seedUser(s.T(), s.db, "chitra@example.com", "Chitra")
}

func TestConversationSuite(t *testing.T) {
	suite.Run(t, new(ConversationSuite))
}

// connect establishes an accepted interest from x to y.
func (s *ConversationSuite) connect(x, y uint) {
	in, _, err := s.ledger.Send(x, y)
	s.Require().NoError(err)
	_, err = s.ledger.Accept(in.ID, y)
	s.Require().NoError(err)
}

func (s *ConversationSuite) TestGetOrCreate() {
	s.Run("fails without an accepted interest", func() {
		_, _, err := s.conversations.GetOrCreate(s.a.ID, s.b.ID)
		s.Require().ErrorIs(err, domain.ErrNotConnected)
	})

	s.Run("pending interest is not enough", func() {
		_, _, err := s.ledger.Send(s.a.ID, s.b.ID)
		s.Require().NoError(err)
		_, _, err = s.conversations.GetOrCreate(s.a.ID, s.b.ID)
		s.Require().ErrorIs(err, domain.ErrNotConnected)
	})

	s.Run("succeeds after acceptance, in either direction", func() {
		s.connect(s.a.ID, s.b.ID)
		conv, created, err := s.conversations.GetOrCreate(s.a.ID, s.b.ID)
		s.Require().NoError(err)
		s.True(created)
		s.Equal(s.a.ID, conv.SenderID)

		// counterpart initiating converges on the same conversation
		same, created, err := s.conversations.GetOrCreate(s.b.ID, s.a.ID)
		s.Require().NoError(err)
		s.False(created)
		s.Equal(conv.ID, same.ID)
	})

	s.Run("self reference fails", func() {
		_, _, err := s.conversations.GetOrCreate(s.a.ID, s.a.ID)
		s.Require().ErrorIs(err, domain.ErrSelfReference)
	})

	s.Run("cancelling the accepted interest does not revoke the conversation", func() {
		in, _, err := s.ledger.Send(s.a.ID, s.b.ID)
		s.Require().NoError(err)
		_, err = s.ledger.Accept(in.ID, s.b.ID)
		s.Require().NoError(err)
		conv, _, err := s.conversations.GetOrCreate(s.a.ID, s.b.ID)
		s.Require().NoError(err)
		s.Require().NoError(s.ledger.Cancel(in.ID, s.a.ID))

		// existing conversation stays usable
		_, err = s.conversations.SendMessage(conv.ID, s.a.ID, "still here")
		s.Require().NoError(err)
	})
}

func (s *ConversationSuite) TestSendMessage() {
	s.connect(s.a.ID, s.b.ID)
	conv, _, err := s.conversations.GetOrCreate(s.a.ID, s.b.ID)
	s.Require().NoError(err)

	s.Run("persists and notifies the other participant", func() {
		m, err := s.conversations.SendMessage(conv.ID, s.a.ID, "namaste")
		s.Require().NoError(err)
		s.Equal("namaste", m.Body)

		var notifs []models.Notification
		s.Require().NoError(s.db.Where("recipient_id = ? AND type = ?", s.b.ID, domain.NotifNewMessage).Find(&notifs).Error)
		s.Require().Len(notifs, 1)
		s.Equal(s.a.ID, *notifs[0].ActorID)
	})

	s.Run("empty body fails validation", func() {
		_, err := s.conversations.SendMessage(conv.ID, s.a.ID, "   ")
		s.Require().ErrorIs(err, domain.ErrValidation)
	})

	s.Run("non-participant is rejected", func() {
		_, err := s.conversations.SendMessage(conv.ID, s.c.ID, "let me in")
		s.Require().ErrorIs(err, domain.ErrNotAuthorized)
	})

	s.Run("missing conversation is not found", func() {
		_, err := s.conversations.SendMessage(4242, s.a.ID, "hello?")
		s.Require().ErrorIs(err, domain.ErrNotFound)
	})
}

func (s *ConversationSuite) TestListMessages() {
	s.connect(s.a.ID, s.b.ID)
	conv, _, err := s.conversations.GetOrCreate(s.a.ID, s.b.ID)
	s.Require().NoError(err)
	_, err = s.conversations.SendMessage(conv.ID, s.a.ID, "first")
	s.Require().NoError(err)
	_, err = s.conversations.SendMessage(conv.ID, s.b.ID, "second")
	s.Require().NoError(err)

	list, err := s.conversations.ListMessages(conv.ID, s.b.ID, 50, 0)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("first", list[0].Body)

	_, err = s.conversations.ListMessages(conv.ID, s.c.ID, 50, 0)
	s.Require().ErrorIs(err, domain.ErrNotAuthorized)
}
