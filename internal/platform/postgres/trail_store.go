package postgres

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/platform/logger"
	"github.com/phrazzld/parky-api/internal/store"
)

// trailSelect reads trails together with their park. sqlx maps the quoted
// "park.*" aliases onto trailRow.Park.
const trailSelect = `
	SELECT t.id, t.name, t.distance, t.difficulty, t.national_park_id, t.created_at,
		p.id AS "park.id", p.name AS "park.name", p.state AS "park.state",
		p.picture AS "park.picture", p.established AS "park.established",
		p.created_at AS "park.created_at"
	FROM trails t
	JOIN national_parks p ON p.id = t.national_park_id
`

// PostgresTrailStore implements store.TrailStore on PostgreSQL.
type PostgresTrailStore struct {
	db     DBTX
	logger *slog.Logger
}

var _ store.TrailStore = (*PostgresTrailStore)(nil)

// NewPostgresTrailStore creates a trail store using db. If logger is nil,
// slog.Default() is used.
func NewPostgresTrailStore(db DBTX, logger *slog.Logger) *PostgresTrailStore {
	if db == nil {
		// ALLOW-PANIC: constructor requires a database handle
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresTrailStore{
		db:     db,
		logger: logger.With(slog.String("component", "trail_store")),
	}
}

// List implements store.TrailStore.
func (s *PostgresTrailStore) List(ctx context.Context) ([]*domain.Trail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	trails, err := s.selectTrails(ctx, trailSelect+` ORDER BY t.id`)
	if err != nil {
		log.Error("failed to list trails", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return trails, nil
}

// ListByNationalPark implements store.TrailStore.
func (s *PostgresTrailStore) ListByNationalPark(ctx context.Context, parkID int64) ([]*domain.Trail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var parkExists bool
	if err := sqlx.GetContext(ctx, s.db, &parkExists,
		`SELECT EXISTS (SELECT 1 FROM national_parks WHERE id = $1)`, parkID); err != nil {
		log.Error("failed to check national park", slog.String("error", err.Error()), slog.Int64("park_id", parkID))
		return nil, MapError(err)
	}
	if !parkExists {
		return nil, store.ErrNationalParkNotFound
	}

	trails, err := s.selectTrails(ctx, trailSelect+` WHERE t.national_park_id = $1 ORDER BY t.id`, parkID)
	if err != nil {
		log.Error("failed to list trails in national park",
			slog.String("error", err.Error()),
			slog.Int64("park_id", parkID))
		return nil, MapError(err)
	}
	return trails, nil
}

// GetByID implements store.TrailStore.
func (s *PostgresTrailStore) GetByID(ctx context.Context, id int64) (*domain.Trail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var row trailRow
	if err := sqlx.GetContext(ctx, s.db, &row, trailSelect+` WHERE t.id = $1`, id); err != nil {
		mapped := trailErrors.mapEntityError(err)
		if mapped == store.ErrTrailNotFound {
			log.Debug("trail not found", slog.Int64("trail_id", id))
		} else {
			log.Error("failed to get trail", slog.String("error", err.Error()), slog.Int64("trail_id", id))
		}
		return nil, mapped
	}
	return row.toDomain(), nil
}

// Create implements store.TrailStore. A missing park surfaces as a foreign key
// violation and is reported as store.ErrNationalParkNotFound.
func (s *PostgresTrailStore) Create(ctx context.Context, trail *domain.Trail) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := trail.Validate(); err != nil {
		log.Warn("trail validation failed during create", slog.String("error", err.Error()))
		return storeValidation("trail", "create", err)
	}

	query := `
		INSERT INTO trails (name, distance, difficulty, national_park_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	row := s.db.QueryRowxContext(ctx, query,
		trail.Name, trail.Distance, string(trail.Difficulty), trail.NationalParkID)
	if err := row.Scan(&trail.ID, &trail.CreatedAt); err != nil {
		mapped := trailErrors.mapEntityError(err)
		switch mapped {
		case store.ErrTrailExists, store.ErrNationalParkNotFound:
			log.Debug("trail create rejected",
				slog.String("reason", mapped.Error()),
				slog.String("name", trail.Name),
				slog.Int64("park_id", trail.NationalParkID))
		default:
			log.Error("failed to create trail", slog.String("error", err.Error()))
		}
		return mapped
	}
	trail.CreatedAt = trail.CreatedAt.UTC()

	log.Info("trail created",
		slog.Int64("trail_id", trail.ID),
		slog.Int64("park_id", trail.NationalParkID))
	return nil
}

// Update implements store.TrailStore.
func (s *PostgresTrailStore) Update(ctx context.Context, trail *domain.Trail) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := trail.Validate(); err != nil {
		log.Warn("trail validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("trail_id", trail.ID))
		return storeValidation("trail", "update", err)
	}

	query := `
		UPDATE trails
		SET name = $1, distance = $2, difficulty = $3, national_park_id = $4
		WHERE id = $5
		RETURNING created_at
	`
	row := s.db.QueryRowxContext(ctx, query,
		trail.Name, trail.Distance, string(trail.Difficulty), trail.NationalParkID, trail.ID)
	if err := row.Scan(&trail.CreatedAt); err != nil {
		mapped := trailErrors.mapEntityError(err)
		switch mapped {
		case store.ErrTrailNotFound, store.ErrTrailExists, store.ErrNationalParkNotFound:
			log.Debug("trail update rejected",
				slog.String("reason", mapped.Error()),
				slog.Int64("trail_id", trail.ID))
		default:
			log.Error("failed to update trail",
				slog.String("error", err.Error()),
				slog.Int64("trail_id", trail.ID))
		}
		return mapped
	}
	trail.CreatedAt = trail.CreatedAt.UTC()

	log.Info("trail updated", slog.Int64("trail_id", trail.ID))
	return nil
}

// Delete implements store.TrailStore.
func (s *PostgresTrailStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM trails WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete trail", slog.String("error", err.Error()), slog.Int64("trail_id", id))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrTrailNotFound); err != nil {
		return err
	}

	log.Info("trail deleted", slog.Int64("trail_id", id))
	return nil
}

// ExistsByName implements store.TrailStore.
func (s *PostgresTrailStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM trails WHERE lower(name) = lower($1))`
	if err := sqlx.GetContext(ctx, s.db, &exists, query, name); err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// ExistsByID implements store.TrailStore.
func (s *PostgresTrailStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM trails WHERE id = $1)`
	if err := sqlx.GetContext(ctx, s.db, &exists, query, id); err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

func (s *PostgresTrailStore) selectTrails(ctx context.Context, query string, args ...any) ([]*domain.Trail, error) {
	var rows []trailRow
	if err := sqlx.SelectContext(ctx, s.db, &rows, query, args...); err != nil {
		return nil, err
	}
	trails := make([]*domain.Trail, 0, len(rows))
	for _, r := range rows {
		trails = append(trails, r.toDomain())
	}
	return trails, nil
}
