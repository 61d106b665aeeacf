package store

import (
	"context"

	"github.com/phrazzld/parky-api/internal/domain"
)

// TrailStore defines the interface for trail persistence.
// Reads populate Trail.NationalPark with the owning park.
type TrailStore interface {
	// List returns every trail, ordered by ID.
	List(ctx context.Context) ([]*domain.Trail, error)

	// ListByNationalPark returns the trails of one park, ordered by ID.
	// Returns ErrNationalParkNotFound if the park does not exist; a park
	// without trails yields an empty, non-nil slice.
	ListByNationalPark(ctx context.Context, parkID int64) ([]*domain.Trail, error)

	// GetByID retrieves a trail by its ID.
	// Returns ErrTrailNotFound if the trail does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Trail, error)

	// Create stores a new trail and sets its ID and CreatedAt.
	// Returns ErrTrailExists if the name is taken and ErrNationalParkNotFound
	// if the referenced park does not exist.
	Create(ctx context.Context, trail *domain.Trail) error

	// Update replaces every mutable field of the trail identified by trail.ID.
	// Returns ErrTrailNotFound, ErrTrailExists or ErrNationalParkNotFound.
	Update(ctx context.Context, trail *domain.Trail) error

	// Delete removes a trail.
	// Returns ErrTrailNotFound if the trail does not exist.
	Delete(ctx context.Context, id int64) error

	// ExistsByName reports whether a trail with the given name exists.
	// The comparison is case-insensitive.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// ExistsByID reports whether a trail with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
