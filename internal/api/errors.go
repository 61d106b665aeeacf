package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/parky-api/internal/api/shared"
	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/service"
	"github.com/phrazzld/parky-api/internal/service/auth"
	"github.com/phrazzld/parky-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidDifficulty),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, shared.ErrEmptyBody):
		return http.StatusBadRequest

	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrInvalidRoleClaim),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"
	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID"
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDifficulty),
		errors.Is(err, store.ErrInvalidEntity):
		return "Validation error"

	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrInvalidRoleClaim):
		return "Invalid token"
	case errors.Is(err, domain.ErrUnauthorized):
		return "Insufficient permissions"

	case errors.Is(err, store.ErrTrailNotFound):
		return "Trail not found"
	case errors.Is(err, store.ErrNationalParkNotFound):
		return "National park not found"
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrTrailExists):
		return "A trail with this name already exists"
	case errors.Is(err, store.ErrNationalParkExists):
		return "A national park with this name already exists"
	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"
	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the error response for err. Validation failures carry
// their field details. For server errors the fallback message, when given,
// replaces the generic one.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMsg string) {
	writeAPIError(w, r, err, MapErrorToStatusCode(err), fallbackMsg)
}

func writeAPIError(w http.ResponseWriter, r *http.Request, err error, status int, fallbackMsg string) {
	msg := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallbackMsg != "" {
		msg = fallbackMsg
	}

	var opts []shared.ResponseOption
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) && len(vErr.Fields) > 0 {
		opts = append(opts, shared.WithDetails(vErr.Fields))
	}
	if status == http.StatusForbidden {
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, status, msg, err, opts...)
}

// duplicateStatus is the status answered for name collisions on create and update.
type duplicateStatus int

// statusFor applies the configured duplicate status to err's default mapping.
func (d duplicateStatus) statusFor(err error) int {
	if errors.Is(err, store.ErrDuplicate) && d != 0 {
		return int(d)
	}
	return MapErrorToStatusCode(err)
}

// handle writes the error response for err with the duplicate override applied.
func (d duplicateStatus) handle(w http.ResponseWriter, r *http.Request, err error, fallbackMsg string) {
	writeAPIError(w, r, err, d.statusFor(err), fallbackMsg)
}
