package service

import (
	"errors"
	"fmt"

	"sangam/internal/domain"
	"sangam/internal/models"
	"sangam/internal/repository"

	"gorm.io/gorm"
)

// InterestBox selects which side of the ledger to list.
type InterestBox string

const (
	BoxSent     InterestBox = "sent"
	BoxReceived InterestBox = "received"
	BoxAll      InterestBox = "all"
)

// LedgerService owns the Interest lifecycle: create, accept, reject,
// cancel. It is the only writer of interest rows, and every transition
// that emits a notification commits both in one transaction.
type LedgerService struct {
	db        *gorm.DB
	interests *repository.InterestRepository
	users     *repository.UserRepository
	audits    *repository.AuditLogRepository
	notifier  *NotificationService
}

func NewLedgerService(db *gorm.DB, interests *repository.InterestRepository, users *repository.UserRepository, audits *repository.AuditLogRepository, notifier *NotificationService) *LedgerService {
	return &LedgerService{db: db, interests: interests, users: users, audits: audits, notifier: notifier}
}

// Send creates a pending interest from sender to receiver. A duplicate of
// the exact ordered pair is not an error: the existing row comes back with
// existed=true, whether it was caught by the pre-check or by the unique
// index during a concurrent double-submit. The reverse-direction pair is a
// distinct row and is never touched.
func (s *LedgerService) Send(senderID, receiverID uint) (*models.Interest, bool, error) {
	if senderID == receiverID {
		return nil, false, domain.ErrSelfReference
	}
	receiverExists, err := s.users.Exists(receiverID)
	if err != nil {
		return nil, false, err
	}
	if !receiverExists {
		return nil, false, domain.ErrNotFound
	}
	if existing, err := s.interests.GetByPair(senderID, receiverID); err != nil {
		return nil, false, err
	} else if existing != nil {
		return existing, true, nil
	}

	sender, err := s.users.GetByID(senderID)
	if err != nil {
		return nil, false, err
	}
	if sender == nil {
		return nil, false, domain.ErrNotFound
	}

	in := &models.Interest{SenderID: senderID, ReceiverID: receiverID, Status: domain.InterestPending}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.interests.WithTx(tx).Create(in); err != nil {
			return err
		}
		return s.notifier.InterestReceived(tx, in, sender)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// lost a double-submit race; converge on the pre-check outcome
		existing, ferr := s.interests.GetByPair(senderID, receiverID)
		if ferr != nil {
			return nil, false, ferr
		}
		if existing == nil {
			// duplicate reported but no longer readable
			return nil, false, domain.ErrAlreadyExists
		}
		return existing, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return in, false, nil
}

// Accept transitions the interest to accepted. Only the receiver may
// accept, and the sender is notified in the same transaction.
func (s *LedgerService) Accept(id, actorID uint) (*models.Interest, error) {
	return s.transition(id, actorID, domain.InterestAccepted)
}

// Reject transitions the interest to rejected. No notification is emitted.
func (s *LedgerService) Reject(id, actorID uint) (*models.Interest, error) {
	return s.transition(id, actorID, domain.InterestRejected)
}

func (s *LedgerService) transition(id, actorID uint, status domain.InterestStatus) (*models.Interest, error) {
	in, err := s.interests.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in == nil {
		return nil, domain.ErrNotFound
	}
	if in.ReceiverID != actorID {
		return nil, domain.ErrNotAuthorized
	}
	actor, err := s.users.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrNotFound
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.interests.WithTx(tx).UpdateStatus(in.ID, status); err != nil {
			return err
		}
		in.Status = status
		if in.IsAccepted() {
			return s.notifier.InterestAccepted(tx, in, actor)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return in, nil
}

// Cancel hard-deletes the interest regardless of its current status. Only
// the sender may cancel. Cancelling an accepted interest does not revoke
// an already-created conversation.
func (s *LedgerService) Cancel(id, actorID uint) error {
	in, err := s.interests.GetByID(id)
	if err != nil {
		return err
	}
	if in == nil {
		return domain.ErrNotFound
	}
	if in.SenderID != actorID {
		return domain.ErrNotAuthorized
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.interests.WithTx(tx).Delete(in.ID); err != nil {
			return err
		}
		detail := fmt.Sprintf("receiver=%d status=%s", in.ReceiverID, in.Status)
		return s.audits.WithTx(tx).Record(actorID, domain.AuditInterestCancelled, "interest", in.ID, detail)
	})
}

// List returns the actor's interests filtered by box.
func (s *LedgerService) List(actorID uint, box InterestBox, limit, offset int) ([]models.Interest, error) {
	switch box {
	case BoxSent:
		return s.interests.ListBySender(actorID, limit, offset)
	case BoxReceived:
		return s.interests.ListByReceiver(actorID, limit, offset)
	case BoxAll, "":
		return s.interests.ListInvolving(actorID, limit, offset)
	default:
		return nil, domain.ErrValidation
	}
}
