package service

import (
	"errors"
	"strings"

	"sangam/internal/domain"
	"sangam/internal/models"
	"sangam/internal/repository"

	"gorm.io/gorm"
)

// ConversationService is the gate in front of direct messaging. The
// accepted-interest precondition lives here and nowhere else; every entry
// point (get-or-create, list, post) passes through it.
type ConversationService struct {
	db            *gorm.DB
	conversations *repository.ConversationRepository
	interests     *repository.InterestRepository
	users         *repository.UserRepository
	notifier      *NotificationService
}

func NewConversationService(db *gorm.DB, conversations *repository.ConversationRepository, interests *repository.InterestRepository, users *repository.UserRepository, notifier *NotificationService) *ConversationService {
	return &ConversationService{db: db, conversations: conversations, interests: interests, users: users, notifier: notifier}
}

// GetOrCreate returns the conversation between the two members, creating
// it lazily with the initiator as sender. Fails with ErrNotConnected
// unless an accepted interest exists between them in either direction.
func (s *ConversationService) GetOrCreate(initiatorID, counterpartID uint) (*models.Conversation, bool, error) {
	if initiatorID == counterpartID {
		return nil, false, domain.ErrSelfReference
	}
	connected, err := s.interests.HasAcceptedBetween(initiatorID, counterpartID)
	if err != nil {
		return nil, false, err
	}
	if !connected {
		return nil, false, domain.ErrNotConnected
	}
	if conv, err := s.conversations.GetBetween(initiatorID, counterpartID); err != nil {
		return nil, false, err
	} else if conv != nil {
		return conv, false, nil
	}
	conv := &models.Conversation{SenderID: initiatorID, ReceiverID: counterpartID}
	err = s.conversations.Create(conv)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		existing, ferr := s.conversations.GetBetween(initiatorID, counterpartID)
		if ferr != nil {
			return nil, false, ferr
		}
		if existing == nil {
			// duplicate reported but no longer readable
			return nil, false, domain.ErrAlreadyExists
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return conv, true, nil
}

// SendMessage persists the message and notifies the other participant in
// one transaction. The author must be a participant and the body must be
// non-empty.
func (s *ConversationService) SendMessage(conversationID, authorID uint, body string) (*models.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, domain.ErrValidation
	}
	conv, err := s.conversations.GetByID(conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, domain.ErrNotFound
	}
	if !conv.Involves(authorID) {
		return nil, domain.ErrNotAuthorized
	}
	author, err := s.users.GetByID(authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, domain.ErrNotFound
	}
	m := &models.Message{ConversationID: conv.ID, AuthorID: authorID, Body: body}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.conversations.WithTx(tx).CreateMessage(m); err != nil {
			return err
		}
		return s.notifier.NewMessage(tx, conv, m, author)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListMessages returns a page of messages, oldest first; participants
// only.
func (s *ConversationService) ListMessages(conversationID, requesterID uint, limit, offset int) ([]models.Message, error) {
	conv, err := s.conversations.GetByID(conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, domain.ErrNotFound
	}
	if !conv.Involves(requesterID) {
		return nil, domain.ErrNotAuthorized
	}
	return s.conversations.ListMessages(conversationID, limit, offset)
}

// ListConversations returns the member's conversations.
func (s *ConversationService) ListConversations(userID uint, limit, offset int) ([]models.Conversation, error) {
	return s.conversations.ListByUserID(userID, limit, offset)
}
