package memory

import (
	"context"
	"fmt"

	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/store"
)

// TrailStore implements store.TrailStore on a DB.
type TrailStore struct {
	db *DB
}

var _ store.TrailStore = (*TrailStore)(nil)

// NewTrailStore creates a trail store backed by db.
func NewTrailStore(db *DB) *TrailStore {
	return &TrailStore{db: db}
}

// List implements store.TrailStore.
func (s *TrailStore) List(ctx context.Context) ([]*domain.Trail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	out := make([]*domain.Trail, 0, len(s.db.trails))
	for _, id := range sortedIDs(s.db.trails) {
		out = append(out, s.db.withPark(s.db.trails[id]))
	}
	return out, nil
}

// ListByNationalPark implements store.TrailStore.
func (s *TrailStore) ListByNationalPark(ctx context.Context, parkID int64) ([]*domain.Trail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	if _, ok := s.db.parks[parkID]; !ok {
		return nil, store.ErrNationalParkNotFound
	}

	out := make([]*domain.Trail, 0)
	for _, id := range sortedIDs(s.db.trails) {
		if t := s.db.trails[id]; t.NationalParkID == parkID {
			out = append(out, s.db.withPark(t))
		}
	}
	return out, nil
}

// GetByID implements store.TrailStore.
func (s *TrailStore) GetByID(ctx context.Context, id int64) (*domain.Trail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	t, ok := s.db.trails[id]
	if !ok {
		return nil, store.ErrTrailNotFound
	}
	return s.db.withPark(t), nil
}

// Create implements store.TrailStore.
func (s *TrailStore) Create(ctx context.Context, trail *domain.Trail) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := trail.Validate(); err != nil {
		return store.NewStoreError("trail", "create", "validation failed", storeValidation(err))
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.parks[trail.NationalParkID]; !ok {
		return store.ErrNationalParkNotFound
	}
	if s.nameTaken(trail.Name, 0) {
		return store.ErrTrailExists
	}

	s.db.nextTrailID++
	trail.ID = s.db.nextTrailID
	trail.CreatedAt = s.db.now()
	stored := *trail
	stored.NationalPark = nil
	s.db.trails[trail.ID] = stored
	return nil
}

// Update implements store.TrailStore.
func (s *TrailStore) Update(ctx context.Context, trail *domain.Trail) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := trail.Validate(); err != nil {
		return store.NewStoreError("trail", "update", "validation failed", storeValidation(err))
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	existing, ok := s.db.trails[trail.ID]
	if !ok {
		return store.ErrTrailNotFound
	}
	if _, ok := s.db.parks[trail.NationalParkID]; !ok {
		return store.ErrNationalParkNotFound
	}
	if s.nameTaken(trail.Name, trail.ID) {
		return store.ErrTrailExists
	}

	trail.CreatedAt = existing.CreatedAt
	stored := *trail
	stored.NationalPark = nil
	s.db.trails[trail.ID] = stored
	return nil
}

// Delete implements store.TrailStore.
func (s *TrailStore) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.trails[id]; !ok {
		return store.ErrTrailNotFound
	}
	delete(s.db.trails, id)
	return nil
}

// ExistsByName implements store.TrailStore.
func (s *TrailStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return s.nameTaken(name, 0), nil
}

// ExistsByID implements store.TrailStore.
func (s *TrailStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	_, ok := s.db.trails[id]
	return ok, nil
}

func (s *TrailStore) nameTaken(name string, exceptID int64) bool {
	for id, t := range s.db.trails {
		if id != exceptID && sameName(t.Name, name) {
			return true
		}
	}
	return false
}

// storeValidation wraps a domain validation failure as an invalid entity while
// keeping the field details reachable through errors.As.
func storeValidation(err error) error {
	return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
}
