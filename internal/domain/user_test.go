package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("  ranger_1 ", "correct-horse", RoleUser)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.Username != "ranger_1" {
		t.Errorf("Expected trimmed username ranger_1, got %q", user.Username)
	}

	if user.Role != RoleUser {
		t.Errorf("Expected role %s, got %s", RoleUser, user.Role)
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	_, err = NewUser("", "correct-horse", RoleUser)
	if !errors.Is(err, ErrEmptyUsername) {
		t.Errorf("Expected error %v, got %v", ErrEmptyUsername, err)
	}

	_, err = NewUser("has space", "correct-horse", RoleUser)
	if !errors.Is(err, ErrInvalidUsername) {
		t.Errorf("Expected error %v, got %v", ErrInvalidUsername, err)
	}

	_, err = NewUser("ranger", "short", RoleUser)
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooShort, err)
	}

	_, err = NewUser("ranger", strings.Repeat("a", MaxPasswordLength+1), RoleUser)
	if !errors.Is(err, ErrPasswordTooLong) {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooLong, err)
	}

	_, err = NewUser("ranger", "correct-horse", Role("Superuser"))
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("Expected error %v, got %v", ErrInvalidRole, err)
	}
}

func TestUserValidate(t *testing.T) {
	stored := User{
		ID:             7,
		Username:       "admin",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
		Role:           RoleAdmin,
	}

	if err := stored.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	if !stored.IsAdmin() {
		t.Error("Expected admin user to report IsAdmin")
	}

	noSecret := stored
	noSecret.HashedPassword = ""
	if err := noSecret.Validate(); !errors.Is(err, ErrEmptyHashedPassword) {
		t.Errorf("Expected error %v, got %v", ErrEmptyHashedPassword, err)
	}

	var vErr *ValidationError
	if !errors.As(noSecret.Validate(), &vErr) {
		t.Fatal("Expected a *ValidationError")
	}
	if vErr.Fields[0].Field != "password" {
		t.Errorf("Expected field password, got %s", vErr.Fields[0].Field)
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"Admin", RoleAdmin, false},
		{"admin", RoleAdmin, false},
		{"USER", RoleUser, false},
		{"owner", "", true},
	}

	for _, tc := range tests {
		got, err := ParseRole(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidRole) {
				t.Errorf("ParseRole(%q): expected ErrInvalidRole, got %v", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseRole(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
	}
}
