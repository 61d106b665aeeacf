package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/parky-api/internal/api"
	apiMiddleware "github.com/phrazzld/parky-api/internal/api/middleware"
	"github.com/phrazzld/parky-api/internal/domain"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(app.metrics.Middleware)
	r.Use(middleware.Recoverer)

	opts := []api.HandlerOption{
		api.WithLogger(app.logger),
		api.WithLegacyDuplicateStatus(app.config.API.LegacyDuplicateStatus),
	}
	trailHandler := api.NewTrailHandler(app.stores.trails, app.stores.parks, opts...)
	parkHandler := api.NewNationalParkHandler(app.stores.parks, opts...)
	userHandler := api.NewUserHandler(app.userService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/trails", func(r chi.Router) {
			r.Get("/", trailHandler.ListTrails)
			r.Post("/", trailHandler.CreateTrail)
			r.Get("/trailsInNationalPark/{parkId}", trailHandler.ListTrailsInNationalPark)
			r.Patch("/{id}", trailHandler.UpdateTrail)
			r.Delete("/{id}", trailHandler.DeleteTrail)

			r.With(authMiddleware.Authenticate, apiMiddleware.RequireRole(domain.RoleAdmin)).
				Get("/{id}", trailHandler.GetTrail)
		})

		r.Route("/nationalparks", func(r chi.Router) {
			r.Get("/", parkHandler.ListNationalParks)
			r.Get("/{id}", parkHandler.GetNationalPark)

			// Park administration
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Use(apiMiddleware.RequireRole(domain.RoleAdmin))
				r.Post("/", parkHandler.CreateNationalPark)
				r.Patch("/{id}", parkHandler.UpdateNationalPark)
				r.Delete("/{id}", parkHandler.DeleteNationalPark)
			})
		})

		r.Post("/users/register", userHandler.Register)
		r.Post("/users/authenticate", userHandler.Authenticate)
	})

	r.Route("/api/v2", func(r chi.Router) {
		r.Get("/nationalparks", parkHandler.ListFirstNationalPark)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	return r
}
