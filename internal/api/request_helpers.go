package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/parky-api/internal/api/shared"
	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/platform/logger"
)

// getPathID extracts a positive integer ID from the URL path parameters.
//
// Returns:
//   - (id, nil): The parsed ID if valid
//   - (0, error): A *domain.ValidationError wrapping domain.ErrInvalidID otherwise
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "must be a positive integer", domain.ErrInvalidID)
	}

	return id, nil
}

// handlePathID extracts the path ID and writes a 400 response if it is invalid.
// The boolean reports whether the caller may continue.
func handlePathID(w http.ResponseWriter, r *http.Request, paramName string) (int64, bool) {
	id, err := getPathID(r, paramName)
	if err != nil {
		logger.FromContext(r.Context()).Debug("invalid path parameter",
			slog.String("param_name", paramName),
			slog.String("value", chi.URLParam(r, paramName)))
		HandleAPIError(w, r, err, "")
		return 0, false
	}
	return id, true
}

// decodeAndValidate decodes the JSON body into req and validates it, writing a
// 400 response on failure. The boolean reports whether the caller may continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	return decodeBody(w, r, req) && validateBody(w, r, req)
}

func decodeBody(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	err := shared.DecodeJSON(r, req)
	switch {
	case err == nil:
		return true
	case errors.Is(err, shared.ErrEmptyBody):
		HandleAPIError(w, r, err, "")
	case errors.Is(err, domain.ErrInvalidDifficulty):
		HandleAPIError(w, r,
			domain.NewValidationError("difficulty", difficultyMessage, domain.ErrInvalidDifficulty), "")
	default:
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
	}
	return false
}

func validateBody(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}
	return true
}

// checkBodyID writes a 400 response when the body's ID differs from the path's.
func checkBodyID(w http.ResponseWriter, r *http.Request, pathID, bodyID int64) bool {
	if pathID != bodyID {
		HandleAPIError(w, r,
			domain.NewValidationError("id", "must match the id in the path", domain.ErrInvalidID), "")
		return false
	}
	return true
}

const difficultyMessage = "must be one of Easy, Moderate, Difficult"
