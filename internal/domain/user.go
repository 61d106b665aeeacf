package domain

import (
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Role is the authorization level of a user.
type Role string

// Known roles.
const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// Password limits. bcrypt ignores input past 72 bytes.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
	MaxUsernameLength = 64
)

// Common validation errors for users
var (
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrInvalidUsername     = errors.New("username may only contain letters, digits, '.', '-' and '_'")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// ParseRole resolves a role name case-insensitively.
func ParseRole(s string) (Role, error) {
	switch {
	case strings.EqualFold(s, string(RoleAdmin)):
		return RoleAdmin, nil
	case strings.EqualFold(s, string(RoleUser)):
		return RoleUser, nil
	default:
		return "", ErrInvalidRole
	}
}

// User is an account that can authenticate against the API.
type User struct {
	ID             int64
	Username       string
	Password       string // plaintext, only set while registering
	HashedPassword string
	Role           Role
	CreatedAt      time.Time
}

// NewUser creates a user with the given credentials and role. The caller is
// responsible for hashing the password before the user is stored.
func NewUser(username, password string, role Role) (*User, error) {
	user := &User{
		Username:  strings.TrimSpace(username),
		Password:  password,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the user's fields. Either a plaintext or a hashed password
// must be present.
func (u *User) Validate() error {
	if err := ValidateUsername(u.Username); err != nil {
		return NewValidationError("username", err.Error(), err)
	}

	if u.Password != "" {
		if err := ValidatePassword(u.Password); err != nil {
			return NewValidationError("password", err.Error(), err)
		}
	} else if u.HashedPassword == "" {
		return NewValidationError("password", ErrEmptyHashedPassword.Error(), ErrEmptyHashedPassword)
	}

	if u.Role != RoleAdmin && u.Role != RoleUser {
		return NewValidationError("role", "must be Admin or User", ErrInvalidRole)
	}

	return nil
}

// IsAdmin reports whether the user holds the Admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidateUsername checks a username's shape.
func ValidateUsername(username string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return ErrInvalidUsername
	}
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' && r != '-' && r != '_' {
			return ErrInvalidUsername
		}
	}
	return nil
}

// ValidatePassword checks a plaintext password's length. The minimum counts
// characters; the maximum counts bytes, bcrypt's input limit.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}
