package mocks

import (
	"context"

	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/store"
)

// MockTrailStore implements store.TrailStore for testing
type MockTrailStore struct {
	ListFn               func(ctx context.Context) ([]*domain.Trail, error)
	ListByNationalParkFn func(ctx context.Context, parkID int64) ([]*domain.Trail, error)
	GetByIDFn            func(ctx context.Context, id int64) (*domain.Trail, error)
	CreateFn             func(ctx context.Context, trail *domain.Trail) error
	UpdateFn             func(ctx context.Context, trail *domain.Trail) error
	DeleteFn             func(ctx context.Context, id int64) error
	ExistsByNameFn       func(ctx context.Context, name string) (bool, error)
	ExistsByIDFn         func(ctx context.Context, id int64) (bool, error)
}

var _ store.TrailStore = (*MockTrailStore)(nil)

// List implements the TrailStore interface
func (m *MockTrailStore) List(ctx context.Context) ([]*domain.Trail, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []*domain.Trail{}, nil
}

// ListByNationalPark implements the TrailStore interface
func (m *MockTrailStore) ListByNationalPark(ctx context.Context, parkID int64) ([]*domain.Trail, error) {
	if m.ListByNationalParkFn != nil {
		return m.ListByNationalParkFn(ctx, parkID)
	}
	return []*domain.Trail{}, nil
}

// GetByID implements the TrailStore interface
func (m *MockTrailStore) GetByID(ctx context.Context, id int64) (*domain.Trail, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrTrailNotFound
}

// Create implements the TrailStore interface
func (m *MockTrailStore) Create(ctx context.Context, trail *domain.Trail) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, trail)
	}
	return nil
}

// Update implements the TrailStore interface
func (m *MockTrailStore) Update(ctx context.Context, trail *domain.Trail) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, trail)
	}
	return nil
}

// Delete implements the TrailStore interface
func (m *MockTrailStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// ExistsByName implements the TrailStore interface
func (m *MockTrailStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.ExistsByNameFn != nil {
		return m.ExistsByNameFn(ctx, name)
	}
	return false, nil
}

// ExistsByID implements the TrailStore interface
func (m *MockTrailStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if m.ExistsByIDFn != nil {
		return m.ExistsByIDFn(ctx, id)
	}
	return false, nil
}
