package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/parky-api/internal/api/shared"
	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/stretchr/testify/require"
)

// newRequest builds a request carrying chi URL params, as the router would.
func newRequest(method, target, body string, params map[string]string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var resp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp
}

func samplePark() *domain.NationalPark {
	established := time.Date(1872, 3, 1, 0, 0, 0, 0, time.UTC)
	return &domain.NationalPark{
		ID:          1,
		Name:        "Yellowstone",
		State:       "Wyoming",
		Picture:     "https://example.com/yellowstone.jpg",
		Established: &established,
		CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func sampleTrail() *domain.Trail {
	return &domain.Trail{
		ID:             7,
		Name:           "Ridge Loop",
		Distance:       4.2,
		Difficulty:     domain.DifficultyModerate,
		NationalParkID: 1,
		NationalPark:   samplePark(),
		CreatedAt:      time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}
