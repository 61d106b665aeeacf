package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/store"
)

// nationalParkRow is the scan target for the national_parks table.
type nationalParkRow struct {
	ID          int64        `db:"id"`
	Name        string       `db:"name"`
	State       string       `db:"state"`
	Picture     string       `db:"picture"`
	Established sql.NullTime `db:"established"`
	CreatedAt   time.Time    `db:"created_at"`
}

func (r nationalParkRow) toDomain() *domain.NationalPark {
	park := &domain.NationalPark{
		ID:        r.ID,
		Name:      r.Name,
		State:     r.State,
		Picture:   r.Picture,
		CreatedAt: r.CreatedAt.UTC(),
	}
	if r.Established.Valid {
		established := r.Established.Time.UTC()
		park.Established = &established
	}
	return park
}

// trailRow is the scan target for a trail joined with its park. The park
// columns are aliased "park.<column>".
type trailRow struct {
	ID             int64             `db:"id"`
	Name           string            `db:"name"`
	Distance       float64           `db:"distance"`
	Difficulty     domain.Difficulty `db:"difficulty"`
	NationalParkID int64             `db:"national_park_id"`
	CreatedAt      time.Time         `db:"created_at"`
	Park           nationalParkRow   `db:"park"`
}

func (r trailRow) toDomain() *domain.Trail {
	return &domain.Trail{
		ID:             r.ID,
		Name:           r.Name,
		Distance:       r.Distance,
		Difficulty:     r.Difficulty,
		NationalParkID: r.NationalParkID,
		CreatedAt:      r.CreatedAt.UTC(),
		NationalPark:   r.Park.toDomain(),
	}
}

type userRow struct {
	ID             int64       `db:"id"`
	Username       string      `db:"username"`
	HashedPassword string      `db:"hashed_password"`
	Role           domain.Role `db:"role"`
	CreatedAt      time.Time   `db:"created_at"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:             r.ID,
		Username:       r.Username,
		HashedPassword: r.HashedPassword,
		Role:           r.Role,
		CreatedAt:      r.CreatedAt.UTC(),
	}
}

// nullDate converts an optional date to a DATE parameter.
func nullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// storeValidation wraps a domain validation failure as an invalid entity while
// keeping the field details reachable through errors.As.
func storeValidation(entity, operation string, err error) error {
	return store.NewStoreError(entity, operation, "validation failed",
		fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
}
