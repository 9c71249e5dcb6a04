package service

import (
	"encoding/json"

	"sangam/internal/domain"
	"sangam/internal/models"
	"sangam/internal/repository"

	"gorm.io/gorm"
)

// NotifiableStatus is the read-time resolution of a notification's weak
// {kind, id} reference.
const (
	NotifiableOK      = "ok"
	NotifiableUnknown = "unknown"
)

// ResolverFunc reports whether the referenced entity still exists.
type ResolverFunc func(id uint) (bool, error)

// NotificationService is the side-effect dispatcher. The emit methods are
// only called by the ledger, registry and gate inside their own
// transactions; external callers never create notifications directly.
// Title, body and metadata snapshot the actor's state at event time and
// are never rewritten.
type NotificationService struct {
	repo      *repository.NotificationRepository
	resolvers map[string]ResolverFunc
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo, resolvers: make(map[string]ResolverFunc)}
}

// RegisterResolver wires a per-kind existence check used when a reader
// resolves the weak reference.
func (s *NotificationService) RegisterResolver(kind string, fn ResolverFunc) {
	s.resolvers[kind] = fn
}

func (s *NotificationService) notify(tx *gorm.DB, n *models.Notification, metadata map[string]interface{}) error {
	if metadata != nil {
		b, _ := json.Marshal(metadata)
		n.Metadata = string(b)
	}
	return s.repo.WithTx(tx).Create(n)
}

// InterestReceived notifies the receiver that actor sent them an interest.
func (s *NotificationService) InterestReceived(tx *gorm.DB, in *models.Interest, actor *models.User) error {
	id := in.ID
	return s.notify(tx, &models.Notification{
		RecipientID:    in.ReceiverID,
		ActorID:        &in.SenderID,
		NotifiableType: domain.NotifiableInterest,
		NotifiableID:   &id,
		Type:           domain.NotifInterestReceived,
		Title:          "New interest",
		Body:           actor.Name() + " has expressed interest in your profile",
	}, map[string]interface{}{"interest_id": in.ID, "actor_id": in.SenderID, "actor_name": actor.Name()})
}

// InterestAccepted notifies the original sender that actor accepted.
func (s *NotificationService) InterestAccepted(tx *gorm.DB, in *models.Interest, actor *models.User) error {
	id := in.ID
	return s.notify(tx, &models.Notification{
		RecipientID:    in.SenderID,
		ActorID:        &in.ReceiverID,
		NotifiableType: domain.NotifiableInterest,
		NotifiableID:   &id,
		Type:           domain.NotifInterestAccepted,
		Title:          "Interest accepted",
		Body:           actor.Name() + " accepted your interest",
	}, map[string]interface{}{"interest_id": in.ID, "actor_id": in.ReceiverID, "actor_name": actor.Name()})
}

// Favorited notifies the bookmarked member.
func (s *NotificationService) Favorited(tx *gorm.DB, f *models.Favorite, actor *models.User) error {
	id := f.ID
	return s.notify(tx, &models.Notification{
		RecipientID:    f.FavoriteUserID,
		ActorID:        &f.UserID,
		NotifiableType: domain.NotifiableFavorite,
		NotifiableID:   &id,
		Type:           domain.NotifFavorited,
		Title:          "New admirer",
		Body:           actor.Name() + " added you to their favorites",
	}, map[string]interface{}{"favorite_id": f.ID, "actor_id": f.UserID, "actor_name": actor.Name()})
}

// NewMessage notifies the conversation's other participant.
func (s *NotificationService) NewMessage(tx *gorm.DB, conv *models.Conversation, m *models.Message, actor *models.User) error {
	id := m.ID
	return s.notify(tx, &models.Notification{
		RecipientID:    conv.OtherParticipant(m.AuthorID),
		ActorID:        &m.AuthorID,
		NotifiableType: domain.NotifiableMessage,
		NotifiableID:   &id,
		Type:           domain.NotifNewMessage,
		Title:          "New message",
		Body:           actor.Name() + " sent you a message",
	}, map[string]interface{}{"conversation_id": conv.ID, "message_id": m.ID, "actor_id": m.AuthorID, "actor_name": actor.Name()})
}

// List returns the recipient's notifications plus their unread count.
func (s *NotificationService) List(recipientID uint, limit, offset int) ([]models.Notification, int64, error) {
	list, err := s.repo.ListByRecipient(recipientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.repo.CountUnread(recipientID)
	if err != nil {
		return nil, 0, err
	}
	return list, unread, nil
}

// MarkRead is idempotent; marking an already-read or absent notification
// is a no-op.
func (s *NotificationService) MarkRead(id, recipientID uint) error {
	return s.repo.MarkRead(id, recipientID)
}

func (s *NotificationService) MarkAllRead(recipientID uint) error {
	return s.repo.MarkAllRead(recipientID)
}

// ResolveNotifiable resolves the weak reference. A missing target, an
// unregistered kind, or a resolver failure degrade to "unknown" rather
// than erroring; a notification without a reference resolves to "".
func (s *NotificationService) ResolveNotifiable(n *models.Notification) string {
	if n.NotifiableType == "" || n.NotifiableID == nil {
		return ""
	}
	fn, ok := s.resolvers[n.NotifiableType]
	if !ok {
		return NotifiableUnknown
	}
	exists, err := fn(*n.NotifiableID)
	if err != nil || !exists {
		return NotifiableUnknown
	}
	return NotifiableOK
}
