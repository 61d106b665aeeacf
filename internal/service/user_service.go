package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/service/auth"
	"github.com/phrazzld/parky-api/internal/store"
)

// AuthResult is the outcome of a successful authentication.
type AuthResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// PasswordService hashes and verifies passwords.
type PasswordService interface {
	auth.PasswordHasher
	auth.PasswordVerifier
}

// UserService provides account operations.
type UserService interface {
	// Register creates a user with role User.
	// Returns a *domain.ValidationError for bad input and store.ErrUsernameExists
	// when the username is taken.
	Register(ctx context.Context, username, password string) (*domain.User, error)

	// CreateAdmin creates a user with role Admin. It is only reachable from the CLI.
	CreateAdmin(ctx context.Context, username, password string) (*domain.User, error)

	// Authenticate checks the credentials and issues an access token.
	// Returns ErrInvalidCredentials when the username is unknown or the password is wrong.
	Authenticate(ctx context.Context, username, password string) (*AuthResult, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore  store.UserStore
	passwords  PasswordService
	jwtService auth.JWTService
	logger     *slog.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	passwords PasswordService,
	jwtService auth.JWTService,
	logger *slog.Logger,
) *UserServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		userStore:  userStore,
		passwords:  passwords,
		jwtService: jwtService,
		logger:     logger.With("component", "user_service"),
	}
}

// Register creates a regular user.
func (s *UserServiceImpl) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return s.create(ctx, username, password, domain.RoleUser)
}

// CreateAdmin creates an administrator.
func (s *UserServiceImpl) CreateAdmin(ctx context.Context, username, password string) (*domain.User, error) {
	return s.create(ctx, username, password, domain.RoleAdmin)
}

func (s *UserServiceImpl) create(
	ctx context.Context,
	username, password string,
	role domain.Role,
) (*domain.User, error) {
	user, err := domain.NewUser(username, password, role)
	if err != nil {
		s.logger.Debug("rejected user registration",
			"error", err,
			"username", username)
		return nil, err
	}

	exists, err := s.userStore.ExistsByUsername(ctx, user.Username)
	if err != nil {
		s.logger.Error("failed to check username availability",
			"error", err,
			"username", user.Username)
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		s.logger.Debug("attempted to register existing username",
			"username", user.Username)
		return nil, store.ErrUsernameExists
	}

	hash, err := s.passwords.Hash(user.Password)
	if err != nil {
		s.logger.Error("failed to hash password",
			"error", err,
			"username", user.Username)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.HashedPassword = hash
	user.Password = ""

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.Debug("username taken concurrently",
				"username", user.Username)
			return nil, err
		}
		s.logger.Error("failed to save user",
			"error", err,
			"username", user.Username)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created",
		"user_id", user.ID,
		"username", user.Username,
		"role", user.Role)

	return user, nil
}

// Authenticate verifies credentials and issues a token.
func (s *UserServiceImpl) Authenticate(
	ctx context.Context,
	username, password string,
) (*AuthResult, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("authentication failed: unknown username",
				"username", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to load user for authentication",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := s.passwords.Compare(user.HashedPassword, password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			s.logger.Warn("password comparison failed",
				"error", err,
				"user_id", user.ID)
		}
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID, user.Role)
	if err != nil {
		s.logger.Error("failed to issue token",
			"error", err,
			"user_id", user.ID)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	claims, err := s.jwtService.ValidateToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("issued token did not validate: %w", err)
	}

	s.logger.Debug("user authenticated",
		"user_id", user.ID,
		"token_id", claims.ID)

	return &AuthResult{
		User:      user,
		Token:     token,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}
