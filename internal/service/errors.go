package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for them with errors.Is().
var (
	// ErrInvalidCredentials indicates an unknown username or a wrong password.
	// Callers cannot tell the two cases apart.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
