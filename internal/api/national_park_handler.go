package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/parky-api/internal/api/shared"
	"github.com/phrazzld/parky-api/internal/platform/logger"
	"github.com/phrazzld/parky-api/internal/store"
)

// NationalParkHandler handles national-park-related HTTP requests
type NationalParkHandler struct {
	parks store.NationalParkStore
	handlerOptions
}

// NewNationalParkHandler creates a new NationalParkHandler
func NewNationalParkHandler(parks store.NationalParkStore, opts ...HandlerOption) *NationalParkHandler {
	return &NationalParkHandler{
		parks:          parks,
		handlerOptions: newHandlerOptions("national_park_handler", opts),
	}
}

func (h *NationalParkHandler) log(r *http.Request) *slog.Logger {
	return logger.FromContextOrDefault(r.Context(), h.logger)
}

// ListFirstNationalPark handles GET /api/v2/nationalparks. It answers with the
// first park of the collection only, or 204 when there are none.
func (h *NationalParkHandler) ListFirstNationalPark(w http.ResponseWriter, r *http.Request) {
	parks, err := h.parks.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list national parks")
		return
	}

	if len(parks) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, nationalParkToResponse(parks[0]))
}

// ListNationalParks handles GET /api/v1/nationalparks
func (h *NationalParkHandler) ListNationalParks(w http.ResponseWriter, r *http.Request) {
	parks, err := h.parks.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list national parks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, nationalParksToResponse(parks))
}

// GetNationalPark handles GET /api/v1/nationalparks/{id}
func (h *NationalParkHandler) GetNationalPark(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	park, err := h.parks.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get national park")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, nationalParkToResponse(park))
}

// CreateNationalPark handles POST /api/v1/nationalparks
func (h *NationalParkHandler) CreateNationalPark(w http.ResponseWriter, r *http.Request) {
	var req CreateNationalParkRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	park, err := req.toDomain(0)
	if err == nil {
		err = park.Validate()
	}
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	ctx := r.Context()

	exists, err := h.parks.ExistsByName(ctx, park.Name)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create national park")
		return
	}
	if exists {
		h.log(r).Debug("rejected duplicate park name", slog.String("name", park.Name))
		h.duplicates.handle(w, r, store.ErrNationalParkExists, "")
		return
	}

	if err := h.parks.Create(ctx, park); err != nil {
		h.duplicates.handle(w, r, err, "Failed to create national park")
		return
	}

	h.log(r).Info("national park created", slog.Int64("park_id", park.ID))

	w.Header().Set("Location", fmt.Sprintf("/api/v1/nationalparks/%d", park.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, nationalParkToResponse(park))
}

// UpdateNationalPark handles PATCH /api/v1/nationalparks/{id}. The body
// replaces every mutable field of the park.
func (h *NationalParkHandler) UpdateNationalPark(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateNationalParkRequest
	if !decodeBody(w, r, &req) || !checkBodyID(w, r, id, req.ID) || !validateBody(w, r, &req) {
		return
	}

	park, err := req.toDomain(id)
	if err == nil {
		err = park.Validate()
	}
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.parks.Update(r.Context(), park); err != nil {
		h.duplicates.handle(w, r, err, "Failed to update national park")
		return
	}

	h.log(r).Info("national park updated", slog.Int64("park_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// DeleteNationalPark handles DELETE /api/v1/nationalparks/{id}. The park's
// trails are deleted with it.
func (h *NationalParkHandler) DeleteNationalPark(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.parks.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete national park")
		return
	}

	h.log(r).Info("national park deleted", slog.Int64("park_id", id))
	w.WriteHeader(http.StatusNoContent)
}
