package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/parky-api/internal/api/shared"
	"github.com/phrazzld/parky-api/internal/platform/logger"
	"github.com/phrazzld/parky-api/internal/store"
)

// TrailHandler handles trail-related HTTP requests
type TrailHandler struct {
	trails store.TrailStore
	parks  store.NationalParkStore
	handlerOptions
}

// NewTrailHandler creates a new TrailHandler
func NewTrailHandler(trails store.TrailStore, parks store.NationalParkStore, opts ...HandlerOption) *TrailHandler {
	return &TrailHandler{
		trails:         trails,
		parks:          parks,
		handlerOptions: newHandlerOptions("trail_handler", opts),
	}
}

func (h *TrailHandler) log(r *http.Request) *slog.Logger {
	return logger.FromContextOrDefault(r.Context(), h.logger)
}

// ListTrails handles GET /api/v1/trails
func (h *TrailHandler) ListTrails(w http.ResponseWriter, r *http.Request) {
	trails, err := h.trails.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list trails")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, trailsToResponse(trails))
}

// GetTrail handles GET /api/v1/trails/{id}
func (h *TrailHandler) GetTrail(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	trail, err := h.trails.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get trail")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, trailToResponse(trail))
}

// ListTrailsInNationalPark handles GET /api/v1/trails/trailsInNationalPark/{parkId}
func (h *TrailHandler) ListTrailsInNationalPark(w http.ResponseWriter, r *http.Request) {
	parkID, ok := handlePathID(w, r, "parkId")
	if !ok {
		return
	}

	trails, err := h.trails.ListByNationalPark(r.Context(), parkID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list trails")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, trailsToResponse(trails))
}

// CreateTrail handles POST /api/v1/trails
func (h *TrailHandler) CreateTrail(w http.ResponseWriter, r *http.Request) {
	var req CreateTrailRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	trail := req.toDomain(0)
	if err := trail.Validate(); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	ctx := r.Context()
	log := h.log(r)

	exists, err := h.trails.ExistsByName(ctx, trail.Name)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create trail")
		return
	}
	if exists {
		log.Debug("rejected duplicate trail name", slog.String("name", trail.Name))
		h.duplicates.handle(w, r, store.ErrTrailExists, "")
		return
	}

	parkExists, err := h.parks.ExistsByID(ctx, trail.NationalParkID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create trail")
		return
	}
	if !parkExists {
		HandleAPIError(w, r, store.ErrNationalParkNotFound, "")
		return
	}

	if err := h.trails.Create(ctx, trail); err != nil {
		h.duplicates.handle(w, r, err, "Failed to create trail")
		return
	}

	log.Info("trail created",
		slog.Int64("trail_id", trail.ID),
		slog.Int64("park_id", trail.NationalParkID))

	// Re-read so the response carries the owning park.
	created, err := h.trails.GetByID(ctx, trail.ID)
	if err != nil {
		log.Warn("created trail could not be re-read", slog.Int64("trail_id", trail.ID), slog.Any("error", err))
		created = trail
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/trails/%d", created.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, trailToResponse(created))
}

// UpdateTrail handles PATCH /api/v1/trails/{id}. The body replaces every
// mutable field of the trail.
func (h *TrailHandler) UpdateTrail(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateTrailRequest
	if !decodeBody(w, r, &req) || !checkBodyID(w, r, id, req.ID) || !validateBody(w, r, &req) {
		return
	}

	trail := req.toDomain(id)
	if err := trail.Validate(); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.trails.Update(r.Context(), trail); err != nil {
		h.duplicates.handle(w, r, err, "Failed to update trail")
		return
	}

	h.log(r).Info("trail updated", slog.Int64("trail_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTrail handles DELETE /api/v1/trails/{id}
func (h *TrailHandler) DeleteTrail(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	ctx := r.Context()
	exists, err := h.trails.ExistsByID(ctx, id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete trail")
		return
	}
	if !exists {
		HandleAPIError(w, r, store.ErrTrailNotFound, "")
		return
	}

	// Delete still reports ErrTrailNotFound if the row went away in between.
	if err := h.trails.Delete(ctx, id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete trail")
		return
	}

	h.log(r).Info("trail deleted", slog.Int64("trail_id", id))
	w.WriteHeader(http.StatusNoContent)
}
