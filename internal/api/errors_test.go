package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/parky-api/internal/api/shared"
	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/service"
	"github.com/phrazzld/parky-api/internal/service/auth"
	"github.com/phrazzld/parky-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.NewValidationError("name", "is required", nil), http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"empty body", shared.ErrEmptyBody, http.StatusBadRequest},
		{"invalid entity", fmt.Errorf("insert: %w", store.ErrInvalidEntity), http.StatusBadRequest},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", domain.ErrUnauthorized, http.StatusForbidden},
		{"trail not found", store.ErrTrailNotFound, http.StatusNotFound},
		{"wrapped park not found", fmt.Errorf("get: %w", store.ErrNationalParkNotFound), http.StatusNotFound},
		{"trail exists", store.ErrTrailExists, http.StatusConflict},
		{"store error wrapping duplicate", store.NewStoreError("trail", "create", "unique", store.ErrTrailExists), http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, "Trail not found", GetSafeErrorMessage(store.ErrTrailNotFound))
	assert.Equal(t, "National park not found", GetSafeErrorMessage(store.ErrNationalParkNotFound))
	assert.Equal(t, "Username already exists", GetSafeErrorMessage(store.ErrUsernameExists))
	assert.Equal(t, "Validation error", GetSafeErrorMessage(domain.NewValidationError("x", "y", nil)))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))

	internal := errors.New("pq: password authentication failed for user admin")
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(internal))
}

func TestHandleAPIError(t *testing.T) {
	t.Run("validation details", func(t *testing.T) {
		rr := httptest.NewRecorder()
		err := &domain.ValidationError{
			Err: domain.ErrValidation,
			Fields: []domain.FieldError{
				{Field: "name", Message: "is required"},
				{Field: "distance", Message: "must not be negative"},
			},
		}

		HandleAPIError(rr, httptest.NewRequest(http.MethodPost, "/", nil), err, "")

		require.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeError(t, rr)
		assert.Equal(t, "Validation error", resp.Error)
		assert.Equal(t, err.Fields, resp.Details)
	})

	t.Run("fallback message for server errors", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleAPIError(rr, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("secret"), "Failed to list trails")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Failed to list trails", decodeError(t, rr).Error)
		assert.NotContains(t, rr.Body.String(), "secret")
	})

	t.Run("fallback ignored for client errors", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleAPIError(rr, httptest.NewRequest(http.MethodGet, "/", nil), store.ErrTrailNotFound, "Failed to get trail")

		assert.Equal(t, "Trail not found", decodeError(t, rr).Error)
	})
}

func TestDuplicateStatus(t *testing.T) {
	assert.Equal(t, http.StatusConflict, duplicateStatus(0).statusFor(store.ErrTrailExists))
	assert.Equal(t, http.StatusNotFound, duplicateStatus(http.StatusNotFound).statusFor(store.ErrTrailExists))
	assert.Equal(t, http.StatusInternalServerError, duplicateStatus(http.StatusNotFound).statusFor(errors.New("x")))
}

func TestGetPathID(t *testing.T) {
	id, err := getPathID(newRequest(http.MethodGet, "/", "", map[string]string{"id": "12"}), "id")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, raw := range []string{"", "0", "-1", "1.5", "abc", "99999999999999999999"} {
		_, err := getPathID(newRequest(http.MethodGet, "/", "", map[string]string{"id": raw}), "id")
		assert.ErrorIs(t, err, domain.ErrInvalidID, "raw=%q", raw)
	}
}
