package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/rs/cors"

	"github.com/baechuer/hbnb-service/internal/application/catalog"
	"github.com/baechuer/hbnb-service/internal/application/search"
	"github.com/baechuer/hbnb-service/internal/config"
	"github.com/baechuer/hbnb-service/internal/metrics"
	"github.com/baechuer/hbnb-service/internal/transport/http/handlers"
	mw "github.com/baechuer/hbnb-service/internal/transport/http/middleware"
	"github.com/baechuer/hbnb-service/internal/transport/http/response"
)

// Handlers groups every HTTP handler the API mounts.
type Handlers struct {
	States    *handlers.StatesHandler
	Cities    *handlers.CitiesHandler
	Amenities *handlers.AmenitiesHandler
	Users     *handlers.UsersHandler
	Places    *handlers.PlacesHandler
	Search    *handlers.SearchHandler
	Index     *handlers.IndexHandler
	Health    *handlers.HealthHandler
}

func NewHandlers(svc *catalog.Service, resolver *search.Resolver, health *handlers.HealthHandler) Handlers {
	if health == nil {
		health = handlers.NewHealthHandler(nil)
	}
	return Handlers{
		States:    handlers.NewStatesHandler(svc),
		Cities:    handlers.NewCitiesHandler(svc),
		Amenities: handlers.NewAmenitiesHandler(svc),
		Users:     handlers.NewUsersHandler(svc),
		Places:    handlers.NewPlacesHandler(svc),
		Search:    handlers.NewSearchHandler(resolver),
		Index:     handlers.NewIndexHandler(svc),
		Health:    health,
	}
}

// New builds the API router. A nil limiter falls back to an in-process
// per-IP limiter when rate limiting is enabled.
func New(h Handlers, limiter mw.Limiter, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.SecurityHeaders)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(mw.AccessLog)
	r.Use(mw.Metrics)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", mw.HeaderXRequestID},
		ExposedHeaders: []string{mw.HeaderXRequestID},
		MaxAge:         3600,
	}).Handler)

	r.NotFound(response.NotFound)
	r.MethodNotAllowed(response.MethodNotAllowed)

	r.Get("/healthz", h.Health.Healthz)
	r.Get("/readyz", h.Health.Readyz)
	r.Handle("/metrics", metrics.MetricsHandler())

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RLEnabled {
			if limiter != nil {
				r.Use(mw.RateLimitByIP(limiter, cfg.RLLimit, cfg.RLWindow))
			} else {
				r.Use(httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow))
			}
		}

		r.Get("/status", h.Index.Status)
		r.Get("/stats", h.Index.Stats)

		r.Route("/states", func(r chi.Router) {
			r.Get("/", h.States.List)
			r.Post("/", h.States.Create)
			r.Route("/{state_id}", func(r chi.Router) {
				r.Get("/", h.States.Get)
				r.Put("/", h.States.Update)
				r.Delete("/", h.States.Delete)
				r.Get("/cities", h.Cities.ListByState)
				r.Post("/cities", h.Cities.Create)
			})
		})

		r.Route("/cities/{city_id}", func(r chi.Router) {
			r.Get("/", h.Cities.Get)
			r.Put("/", h.Cities.Update)
			r.Delete("/", h.Cities.Delete)
			r.Get("/places", h.Places.ListByCity)
			r.Post("/places", h.Places.Create)
		})

		r.Route("/amenities", func(r chi.Router) {
			r.Get("/", h.Amenities.List)
			r.Post("/", h.Amenities.Create)
			r.Get("/{amenity_id}", h.Amenities.Get)
			r.Put("/{amenity_id}", h.Amenities.Update)
			r.Delete("/{amenity_id}", h.Amenities.Delete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.Users.List)
			r.Post("/", h.Users.Create)
			r.Get("/{user_id}", h.Users.Get)
			r.Put("/{user_id}", h.Users.Update)
			r.Delete("/{user_id}", h.Users.Delete)
		})

		r.Route("/places/{place_id}", func(r chi.Router) {
			r.Get("/", h.Places.Get)
			r.Put("/", h.Places.Update)
			r.Delete("/", h.Places.Delete)
			r.Get("/amenities", h.Places.ListAmenities)
			r.Post("/amenities/{amenity_id}", h.Places.LinkAmenity)
			r.Delete("/amenities/{amenity_id}", h.Places.UnlinkAmenity)
		})

		r.Post("/places_search", h.Search.PlacesSearch)
	})

	return r
}
