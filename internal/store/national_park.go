package store

import (
	"context"

	"github.com/phrazzld/parky-api/internal/domain"
)

// NationalParkStore defines the interface for national park persistence.
type NationalParkStore interface {
	// List returns every park, ordered by ID.
	List(ctx context.Context) ([]*domain.NationalPark, error)

	// GetByID retrieves a park by its ID.
	// Returns ErrNationalParkNotFound if the park does not exist.
	GetByID(ctx context.Context, id int64) (*domain.NationalPark, error)

	// Create stores a new park and sets its ID and CreatedAt.
	// Returns ErrNationalParkExists if the name is taken.
	Create(ctx context.Context, park *domain.NationalPark) error

	// Update replaces every mutable field of the park identified by park.ID.
	// Returns ErrNationalParkNotFound if the park does not exist and
	// ErrNationalParkExists if the new name belongs to another park.
	Update(ctx context.Context, park *domain.NationalPark) error

	// Delete removes the park and, by cascade, its trails.
	// Returns ErrNationalParkNotFound if the park does not exist.
	Delete(ctx context.Context, id int64) error

	// ExistsByName reports whether a park with the given name exists.
	// The comparison is case-insensitive.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// ExistsByID reports whether a park with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
