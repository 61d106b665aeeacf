package auth

import (
	"context"
	"time"

	"github.com/phrazzld/parky-api/internal/domain"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the user and role.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, userID int64, role domain.Role) (string, error)

	// ValidateToken validates the provided access token string and extracts the claims.
	// Returns the claims if the token is valid, or one of ErrInvalidToken,
	// ErrExpiredToken, ErrTokenNotYetValid, ErrWrongTokenType or ErrInvalidRoleClaim.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the application view of a validated token.
type Claims struct {
	// UserID is the identifier of the user the token was issued for.
	UserID int64 `json:"uid,omitempty"`

	// Role is the user's role at the time the token was issued.
	Role domain.Role `json:"role,omitempty"`

	// TokenType indicates the purpose of the token. Only "access" is issued.
	TokenType string `json:"type,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}

// IsAdmin reports whether the token was issued to an administrator.
func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == domain.RoleAdmin
}
