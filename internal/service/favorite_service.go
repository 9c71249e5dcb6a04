package service

import (
	"errors"

	"sangam/internal/domain"
	"sangam/internal/models"
	"sangam/internal/repository"

	"gorm.io/gorm"
)

// FavoriteService owns the favorite registry: pair-unique bookmarks with a
// self-reference guard.
type FavoriteService struct {
	db        *gorm.DB
	favorites *repository.FavoriteRepository
	users     *repository.UserRepository
	notifier  *NotificationService
}

func NewFavoriteService(db *gorm.DB, favorites *repository.FavoriteRepository, users *repository.UserRepository, notifier *NotificationService) *FavoriteService {
	return &FavoriteService{db: db, favorites: favorites, users: users, notifier: notifier}
}

// Add bookmarks target for user and notifies target in the same
// transaction. A duplicate pair is not an error: the existing row comes
// back with existed=true, whether it was caught by the pre-check or by
// the unique index during a concurrent double-submit.
func (s *FavoriteService) Add(userID, targetID uint) (*models.Favorite, bool, error) {
	if userID == targetID {
		return nil, false, domain.ErrSelfReference
	}
	targetExists, err := s.users.Exists(targetID)
	if err != nil {
		return nil, false, err
	}
	if !targetExists {
		return nil, false, domain.ErrNotFound
	}
	if existing, err := s.favorites.GetByPair(userID, targetID); err != nil {
		return nil, false, err
	} else if existing != nil {
		return existing, true, nil
	}

	actor, err := s.users.GetByID(userID)
	if err != nil {
		return nil, false, err
	}
	if actor == nil {
		return nil, false, domain.ErrNotFound
	}

	f := &models.Favorite{UserID: userID, FavoriteUserID: targetID}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.favorites.WithTx(tx).Create(f); err != nil {
			return err
		}
		return s.notifier.Favorited(tx, f, actor)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// lost a double-submit race; converge on the pre-check outcome
		existing, ferr := s.favorites.GetByPair(userID, targetID)
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
	return f, false, nil
}

// Remove is idempotent and reports whether the pair was found; the
// boundary may map not-found to a 404.
func (s *FavoriteService) Remove(userID, targetID uint) (bool, error) {
	return s.favorites.Remove(userID, targetID)
}

func (s *FavoriteService) List(userID uint, limit, offset int) ([]models.Favorite, error) {
	return s.favorites.ListByUserID(userID, limit, offset)
}
