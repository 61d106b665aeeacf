package postgres

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/platform/logger"
	"github.com/phrazzld/parky-api/internal/store"
)

// PostgresUserStore implements store.UserStore on PostgreSQL.
type PostgresUserStore struct {
	db     DBTX
	logger *slog.Logger
}

var _ store.UserStore = (*PostgresUserStore)(nil)

// NewPostgresUserStore creates a user store using db. If logger is nil,
// slog.Default() is used.
func NewPostgresUserStore(db DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		// ALLOW-PANIC: constructor requires a database handle
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Create implements store.UserStore. Only the password hash is persisted.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user.HashedPassword == "" {
		return storeValidation("user", "create", domain.NewValidationError(
			"password", domain.ErrEmptyHashedPassword.Error(), domain.ErrEmptyHashedPassword))
	}

	query := `
		INSERT INTO users (username, hashed_password, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	row := s.db.QueryRowxContext(ctx, query, user.Username, user.HashedPassword, string(user.Role))
	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		mapped := userErrors.mapEntityError(err)
		if mapped == store.ErrUsernameExists {
			log.Debug("username already taken")
		} else {
			log.Error("failed to create user", slog.String("error", err.Error()))
		}
		return mapped
	}
	user.CreatedAt = user.CreatedAt.UTC()
	user.Password = ""

	log.Info("user created", slog.Int64("user_id", user.ID), slog.String("role", string(user.Role)))
	return nil
}

// GetByUsername implements store.UserStore.
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var row userRow
	query := `
		SELECT id, username, hashed_password, role, created_at
		FROM users
		WHERE lower(username) = lower($1)
	`
	if err := sqlx.GetContext(ctx, s.db, &row, query, username); err != nil {
		mapped := userErrors.mapEntityError(err)
		if mapped != store.ErrUserNotFound {
			log.Error("failed to get user", slog.String("error", err.Error()))
		}
		return nil, mapped
	}
	return row.toDomain(), nil
}

// ExistsByUsername implements store.UserStore.
func (s *PostgresUserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE lower(username) = lower($1))`
	if err := sqlx.GetContext(ctx, s.db, &exists, query, username); err != nil {
		return false, MapError(err)
	}
	return exists, nil
}
