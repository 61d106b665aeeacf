package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/mocks"
	"github.com/phrazzld/parky-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNationalParkHandler_ListFirstNationalPark(t *testing.T) {
	t.Run("returns only the first park", func(t *testing.T) {
		second := samplePark()
		second.ID, second.Name = 2, "Yosemite"
		h := NewNationalParkHandler(&mocks.MockNationalParkStore{
			ListFn: func(ctx context.Context) ([]*domain.NationalPark, error) {
				return []*domain.NationalPark{samplePark(), second}, nil
			},
		})

		rr := httptest.NewRecorder()
		h.ListFirstNationalPark(rr, newRequest(http.MethodGet, "/api/v2/nationalparks", "", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var got NationalParkResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "Yellowstone", got.Name)
		assert.Equal(t, "1872-03-01", got.Established)
	})

	t.Run("no parks", func(t *testing.T) {
		h := NewNationalParkHandler(&mocks.MockNationalParkStore{})

		rr := httptest.NewRecorder()
		h.ListFirstNationalPark(rr, newRequest(http.MethodGet, "/api/v2/nationalparks", "", nil))

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		h := NewNationalParkHandler(&mocks.MockNationalParkStore{
			ListFn: func(ctx context.Context) ([]*domain.NationalPark, error) { return nil, errors.New("boom") },
		})

		rr := httptest.NewRecorder()
		h.ListFirstNationalPark(rr, newRequest(http.MethodGet, "/api/v2/nationalparks", "", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestNationalParkHandler_ListAndGet(t *testing.T) {
	parks := &mocks.MockNationalParkStore{
		ListFn: func(ctx context.Context) ([]*domain.NationalPark, error) {
			return []*domain.NationalPark{samplePark()}, nil
		},
		GetByIDFn: func(ctx context.Context, id int64) (*domain.NationalPark, error) {
			if id == 1 {
				return samplePark(), nil
			}
			return nil, store.ErrNationalParkNotFound
		},
	}
	h := NewNationalParkHandler(parks)

	rr := httptest.NewRecorder()
	h.ListNationalParks(rr, newRequest(http.MethodGet, "/api/v1/nationalparks", "", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var list []NationalParkResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rr = httptest.NewRecorder()
	h.GetNationalPark(rr, newRequest(http.MethodGet, "/api/v1/nationalparks/1", "", map[string]string{"id": "1"}))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.GetNationalPark(rr, newRequest(http.MethodGet, "/api/v1/nationalparks/2", "", map[string]string{"id": "2"}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "National park not found", decodeError(t, rr).Error)
}

func TestNationalParkHandler_CreateNationalPark(t *testing.T) {
	validBody := `{"name":"Glacier","state":"Montana","picture":"/img/glacier.png","established":"1910-05-11"}`

	t.Run("created", func(t *testing.T) {
		var stored *domain.NationalPark
		h := NewNationalParkHandler(&mocks.MockNationalParkStore{
			CreateFn: func(ctx context.Context, park *domain.NationalPark) error {
				stored = park
				park.ID = 3
				return nil
			},
		})

		rr := httptest.NewRecorder()
		h.CreateNationalPark(rr, newRequest(http.MethodPost, "/api/v1/nationalparks", validBody, nil))

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		assert.Equal(t, "/api/v1/nationalparks/3", rr.Header().Get("Location"))
		require.NotNil(t, stored.Established)
		assert.Equal(t, 1910, stored.Established.Year())

		var got NationalParkResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, int64(3), got.ID)
		assert.Equal(t, "1910-05-11", got.Established)
	})

	tests := []struct {
		name       string
		body       string
		exists     bool
		legacy     bool
		wantStatus int
		wantField  string
	}{
		{name: "missing state", body: `{"name":"Glacier"}`, wantStatus: http.StatusBadRequest, wantField: "state"},
		{
			name:       "bad date",
			body:       `{"name":"Glacier","state":"Montana","established":"May 1910"}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "established",
		},
		{
			name:       "future date",
			body:       `{"name":"Glacier","state":"Montana","established":"2999-01-01"}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "established",
		},
		{name: "duplicate", body: validBody, exists: true, wantStatus: http.StatusConflict},
		{name: "duplicate legacy", body: validBody, exists: true, legacy: true, wantStatus: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			created := false
			h := NewNationalParkHandler(&mocks.MockNationalParkStore{
				ExistsByNameFn: func(ctx context.Context, name string) (bool, error) { return tc.exists, nil },
				CreateFn: func(ctx context.Context, park *domain.NationalPark) error {
					created = true
					return nil
				},
			}, WithLegacyDuplicateStatus(tc.legacy))

			rr := httptest.NewRecorder()
			h.CreateNationalPark(rr, newRequest(http.MethodPost, "/api/v1/nationalparks", tc.body, nil))

			require.Equal(t, tc.wantStatus, rr.Code, rr.Body.String())
			assert.False(t, created)
			if tc.wantField != "" {
				resp := decodeError(t, rr)
				require.NotEmpty(t, resp.Details)
				assert.Equal(t, tc.wantField, resp.Details[0].Field)
			}
		})
	}
}

func TestNationalParkHandler_UpdateNationalPark(t *testing.T) {
	validBody := `{"id":1,"name":"Yellowstone","state":"Wyoming"}`

	tests := []struct {
		name       string
		pathID     string
		body       string
		updateErr  error
		wantStatus int
	}{
		{name: "updated", pathID: "1", body: validBody, wantStatus: http.StatusNoContent},
		{name: "id mismatch", pathID: "2", body: validBody, wantStatus: http.StatusBadRequest},
		{name: "missing", pathID: "1", body: validBody, updateErr: store.ErrNationalParkNotFound, wantStatus: http.StatusNotFound},
		{name: "name taken", pathID: "1", body: validBody, updateErr: store.ErrNationalParkExists, wantStatus: http.StatusConflict},
		{name: "store failure", pathID: "1", body: validBody, updateErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewNationalParkHandler(&mocks.MockNationalParkStore{
				UpdateFn: func(ctx context.Context, park *domain.NationalPark) error { return tc.updateErr },
			})

			rr := httptest.NewRecorder()
			h.UpdateNationalPark(rr, newRequest(http.MethodPatch, "/api/v1/nationalparks/"+tc.pathID, tc.body,
				map[string]string{"id": tc.pathID}))

			assert.Equal(t, tc.wantStatus, rr.Code, rr.Body.String())
		})
	}
}

func TestNationalParkHandler_DeleteNationalPark(t *testing.T) {
	h := NewNationalParkHandler(&mocks.MockNationalParkStore{
		DeleteFn: func(ctx context.Context, id int64) error {
			if id == 1 {
				return nil
			}
			return store.ErrNationalParkNotFound
		},
	})

	rr := httptest.NewRecorder()
	h.DeleteNationalPark(rr, newRequest(http.MethodDelete, "/api/v1/nationalparks/1", "", map[string]string{"id": "1"}))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	h.DeleteNationalPark(rr, newRequest(http.MethodDelete, "/api/v1/nationalparks/2", "", map[string]string{"id": "2"}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
