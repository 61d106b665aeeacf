package memory

import (
	"context"
	"strings"

	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/store"
)

// UserStore implements store.UserStore on a DB.
type UserStore struct {
	db *DB
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a user store backed by db.
func NewUserStore(db *DB) *UserStore {
	return &UserStore{db: db}
}

// Create implements store.UserStore.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if user.HashedPassword == "" {
		return store.NewStoreError("user", "create", "missing password hash",
			storeValidation(domain.ErrEmptyHashedPassword))
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.find(user.Username); ok {
		return store.ErrUsernameExists
	}

	s.db.nextUserID++
	user.ID = s.db.nextUserID
	user.CreatedAt = s.db.now()
	stored := *user
	stored.Password = ""
	s.db.users[user.ID] = stored
	return nil
}

// GetByUsername implements store.UserStore.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	u, ok := s.find(username)
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &u, nil
}

// ExistsByUsername implements store.UserStore.
func (s *UserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	_, ok := s.find(username)
	return ok, nil
}

func (s *UserStore) find(username string) (domain.User, bool) {
	username = strings.TrimSpace(username)
	for _, u := range s.db.users {
		if strings.EqualFold(u.Username, username) {
			return u, true
		}
	}
	return domain.User{}, false
}
