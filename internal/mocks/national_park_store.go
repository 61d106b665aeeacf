package mocks

import (
	"context"

	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/store"
)

// MockNationalParkStore implements store.NationalParkStore for testing
type MockNationalParkStore struct {
	ListFn         func(ctx context.Context) ([]*domain.NationalPark, error)
	GetByIDFn      func(ctx context.Context, id int64) (*domain.NationalPark, error)
	CreateFn       func(ctx context.Context, park *domain.NationalPark) error
	UpdateFn       func(ctx context.Context, park *domain.NationalPark) error
	DeleteFn       func(ctx context.Context, id int64) error
	ExistsByNameFn func(ctx context.Context, name string) (bool, error)
	ExistsByIDFn   func(ctx context.Context, id int64) (bool, error)
}

var _ store.NationalParkStore = (*MockNationalParkStore)(nil)

// List implements the NationalParkStore interface
func (m *MockNationalParkStore) List(ctx context.Context) ([]*domain.NationalPark, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []*domain.NationalPark{}, nil
}

// GetByID implements the NationalParkStore interface
func (m *MockNationalParkStore) GetByID(ctx context.Context, id int64) (*domain.NationalPark, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrNationalParkNotFound
}

// Create implements the NationalParkStore interface
func (m *MockNationalParkStore) Create(ctx context.Context, park *domain.NationalPark) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, park)
	}
	return nil
}

// Update implements the NationalParkStore interface
func (m *MockNationalParkStore) Update(ctx context.Context, park *domain.NationalPark) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, park)
	}
	return nil
}

// Delete implements the NationalParkStore interface
func (m *MockNationalParkStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// ExistsByName implements the NationalParkStore interface
func (m *MockNationalParkStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.ExistsByNameFn != nil {
		return m.ExistsByNameFn(ctx, name)
	}
	return false, nil
}

// ExistsByID implements the NationalParkStore interface
func (m *MockNationalParkStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if m.ExistsByIDFn != nil {
		return m.ExistsByIDFn(ctx, id)
	}
	return false, nil
}
