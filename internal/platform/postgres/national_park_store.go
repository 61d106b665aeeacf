package postgres

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/platform/logger"
	"github.com/phrazzld/parky-api/internal/store"
)

const nationalParkColumns = `id, name, state, picture, established, created_at`

// PostgresNationalParkStore implements store.NationalParkStore on PostgreSQL.
type PostgresNationalParkStore struct {
	db     DBTX
	logger *slog.Logger
}

var _ store.NationalParkStore = (*PostgresNationalParkStore)(nil)

// NewPostgresNationalParkStore creates a park store using db, which may be a
// connection pool or a transaction. If logger is nil, slog.Default() is used.
func NewPostgresNationalParkStore(db DBTX, logger *slog.Logger) *PostgresNationalParkStore {
	if db == nil {
		// ALLOW-PANIC: constructor requires a database handle
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresNationalParkStore{
		db:     db,
		logger: logger.With(slog.String("component", "national_park_store")),
	}
}

// List implements store.NationalParkStore.
func (s *PostgresNationalParkStore) List(ctx context.Context) ([]*domain.NationalPark, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var rows []nationalParkRow
	query := `SELECT ` + nationalParkColumns + ` FROM national_parks ORDER BY id`
	if err := sqlx.SelectContext(ctx, s.db, &rows, query); err != nil {
		log.Error("failed to list national parks", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	parks := make([]*domain.NationalPark, 0, len(rows))
	for _, r := range rows {
		parks = append(parks, r.toDomain())
	}
	return parks, nil
}

// GetByID implements store.NationalParkStore.
func (s *PostgresNationalParkStore) GetByID(ctx context.Context, id int64) (*domain.NationalPark, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var row nationalParkRow
	query := `SELECT ` + nationalParkColumns + ` FROM national_parks WHERE id = $1`
	if err := sqlx.GetContext(ctx, s.db, &row, query, id); err != nil {
		mapped := parkErrors.mapEntityError(err)
		if mapped == store.ErrNationalParkNotFound {
			log.Debug("national park not found", slog.Int64("park_id", id))
		} else {
			log.Error("failed to get national park",
				slog.String("error", err.Error()),
				slog.Int64("park_id", id))
		}
		return nil, mapped
	}
	return row.toDomain(), nil
}

// Create implements store.NationalParkStore.
func (s *PostgresNationalParkStore) Create(ctx context.Context, park *domain.NationalPark) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := park.Validate(); err != nil {
		log.Warn("national park validation failed during create", slog.String("error", err.Error()))
		return storeValidation("national park", "create", err)
	}

	query := `
		INSERT INTO national_parks (name, state, picture, established)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	row := s.db.QueryRowxContext(ctx, query, park.Name, park.State, park.Picture, nullDate(park.Established))
	if err := row.Scan(&park.ID, &park.CreatedAt); err != nil {
		mapped := parkErrors.mapEntityError(err)
		if mapped == store.ErrNationalParkExists {
			log.Debug("national park name already taken", slog.String("name", park.Name))
		} else {
			log.Error("failed to create national park", slog.String("error", err.Error()))
		}
		return mapped
	}
	park.CreatedAt = park.CreatedAt.UTC()

	log.Info("national park created", slog.Int64("park_id", park.ID))
	return nil
}

// Update implements store.NationalParkStore.
func (s *PostgresNationalParkStore) Update(ctx context.Context, park *domain.NationalPark) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := park.Validate(); err != nil {
		log.Warn("national park validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("park_id", park.ID))
		return storeValidation("national park", "update", err)
	}

	query := `
		UPDATE national_parks
		SET name = $1, state = $2, picture = $3, established = $4
		WHERE id = $5
		RETURNING created_at
	`
	row := s.db.QueryRowxContext(ctx, query,
		park.Name, park.State, park.Picture, nullDate(park.Established), park.ID)
	if err := row.Scan(&park.CreatedAt); err != nil {
		mapped := parkErrors.mapEntityError(err)
		switch mapped {
		case store.ErrNationalParkNotFound, store.ErrNationalParkExists:
			log.Debug("national park update rejected",
				slog.String("reason", mapped.Error()),
				slog.Int64("park_id", park.ID))
		default:
			log.Error("failed to update national park",
				slog.String("error", err.Error()),
				slog.Int64("park_id", park.ID))
		}
		return mapped
	}
	park.CreatedAt = park.CreatedAt.UTC()

	log.Info("national park updated", slog.Int64("park_id", park.ID))
	return nil
}

// Delete implements store.NationalParkStore. Trails go with the park through
// the ON DELETE CASCADE foreign key.
func (s *PostgresNationalParkStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM national_parks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete national park",
			slog.String("error", err.Error()),
			slog.Int64("park_id", id))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrNationalParkNotFound); err != nil {
		return err
	}

	log.Info("national park deleted", slog.Int64("park_id", id))
	return nil
}

// ExistsByName implements store.NationalParkStore.
func (s *PostgresNationalParkStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM national_parks WHERE lower(name) = lower($1))`
	if err := sqlx.GetContext(ctx, s.db, &exists, query, name); err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// ExistsByID implements store.NationalParkStore.
func (s *PostgresNationalParkStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM national_parks WHERE id = $1)`
	if err := sqlx.GetContext(ctx, s.db, &exists, query, id); err != nil {
		return false, MapError(err)
	}
	return exists, nil
}
