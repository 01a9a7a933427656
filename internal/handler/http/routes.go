package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the router. Feature groups are mounted exactly once, here:
// requests to a group that was not mounted fall through to chi's 404.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes that are always available
	router.Get("/", h.root)
	router.Get("/healthcheck", h.healthcheck)
	router.Get("/items/{id}", h.getItem)
	router.Get("/version", h.getServerVersion)

	if h.authorizer.Enabled() {
		router.Route("/v1/protected", func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.readProtected)
			r.Get("/data", h.readProtectedData)
		})
		h.logger.Info().Msg("bearer token authentication configured: protected routes mounted")
	} else {
		h.logger.Info().Msg("no API keys configured: protected routes not mounted")
	}

	if h.services.Users != nil {
		router.Route("/v1/users", func(r chi.Router) {
			r.Post("/", h.createUser)
			r.Get("/", h.listUsers)
			r.Get("/{id}", h.getUser)
		})
		h.logger.Info().Msg("database configured: user routes mounted")
	} else {
		h.logger.Info().Msg("no database configured: user routes not mounted")
	}

	return router
}
