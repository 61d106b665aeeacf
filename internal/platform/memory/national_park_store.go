package memory

import (
	"context"

	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/store"
)

// NationalParkStore implements store.NationalParkStore on a DB.
type NationalParkStore struct {
	db *DB
}

var _ store.NationalParkStore = (*NationalParkStore)(nil)

// NewNationalParkStore creates a park store backed by db.
func NewNationalParkStore(db *DB) *NationalParkStore {
	return &NationalParkStore{db: db}
}

// List implements store.NationalParkStore.
func (s *NationalParkStore) List(ctx context.Context) ([]*domain.NationalPark, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	out := make([]*domain.NationalPark, 0, len(s.db.parks))
	for _, id := range sortedIDs(s.db.parks) {
		p := s.db.parks[id]
		out = append(out, &p)
	}
	return out, nil
}

// GetByID implements store.NationalParkStore.
func (s *NationalParkStore) GetByID(ctx context.Context, id int64) (*domain.NationalPark, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	p, ok := s.db.parks[id]
	if !ok {
		return nil, store.ErrNationalParkNotFound
	}
	return &p, nil
}

// Create implements store.NationalParkStore.
func (s *NationalParkStore) Create(ctx context.Context, park *domain.NationalPark) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := park.Validate(); err != nil {
		return store.NewStoreError("national park", "create", "validation failed", storeValidation(err))
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if s.nameTaken(park.Name, 0) {
		return store.ErrNationalParkExists
	}

	s.db.nextParkID++
	park.ID = s.db.nextParkID
	park.CreatedAt = s.db.now()
	s.db.parks[park.ID] = *park
	return nil
}

// Update implements store.NationalParkStore.
func (s *NationalParkStore) Update(ctx context.Context, park *domain.NationalPark) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := park.Validate(); err != nil {
		return store.NewStoreError("national park", "update", "validation failed", storeValidation(err))
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	existing, ok := s.db.parks[park.ID]
	if !ok {
		return store.ErrNationalParkNotFound
	}
	if s.nameTaken(park.Name, park.ID) {
		return store.ErrNationalParkExists
	}

	park.CreatedAt = existing.CreatedAt
	s.db.parks[park.ID] = *park
	return nil
}

// Delete implements store.NationalParkStore. The park's trails are removed too.
func (s *NationalParkStore) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.parks[id]; !ok {
		return store.ErrNationalParkNotFound
	}
	delete(s.db.parks, id)
	for trailID, t := range s.db.trails {
		if t.NationalParkID == id {
			delete(s.db.trails, trailID)
		}
	}
	return nil
}

// ExistsByName implements store.NationalParkStore.
func (s *NationalParkStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return s.nameTaken(name, 0), nil
}

// ExistsByID implements store.NationalParkStore.
func (s *NationalParkStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	_, ok := s.db.parks[id]
	return ok, nil
}

// nameTaken reports whether another park than exceptID uses name. Callers hold mu.
func (s *NationalParkStore) nameTaken(name string, exceptID int64) bool {
	for id, p := range s.db.parks {
		if id != exceptID && sameName(p.Name, name) {
			return true
		}
	}
	return false
}
