package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", traceIDHeader},
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// authentication routes
	router.Group(func(r chi.Router) {
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
	})

	// administrative routes
	router.Group(func(r chi.Router) {
		r.Get("/api/users", h.listUsers)
		r.Put("/api/user/{userID}", h.updateUser)
		r.Get("/api/blocked-ips", h.listBlockedIPs)
		r.Delete("/api/blocked-ips", h.clearBlockedIPs)
		r.Get("/api/stats", h.stats)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
