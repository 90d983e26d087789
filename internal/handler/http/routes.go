package http

import (
	"net/http"

	"github.com/MKhiriev/socialix/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// gzipLevel is the compression level for JSON responses.
const gzipLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, h.withMetrics, withCORS)
	router.Use(middleware.Timeout(h.settings.RequestTimeout))
	router.Use(middleware.Compress(gzipLevel, "application/json"))

	router.Get("/health", health)
	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/signin", h.signIn)
			r.Post("/login", h.login)
			r.Get("/version", h.getServerVersion)
		})

		// routes behind the auth gate
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/logout", h.logout)
			r.Get("/me", h.me)
			r.Get("/user/{id}", h.getUserDetails)
			r.Put("/user/follow/{id}", h.followUser)
			r.Put("/update-profile", h.updateProfile)
			r.Get("/users/search/{query}", h.searchUsers)
			r.Get("/users", h.listUsers)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func health(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
