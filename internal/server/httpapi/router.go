package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", s.handleRoot)

	r.Route("/api", func(api chi.Router) {
		// ---------------- Public ----------------
		api.Get("/health", s.handleHealth)
		api.Post("/send-code", s.handleSendCode)
		api.Post("/login", s.handleLogin)

		// ---------------- Authenticated ----------------
		api.Group(func(priv chi.Router) {
			priv.Use(s.requireAuth)

			priv.Get("/verify-token", s.handleVerifyToken)

			priv.Route("/activities", func(ar chi.Router) {
				ar.Get("/", s.handleListActivities)
				ar.Post("/", s.handleCreateActivity)
				ar.Get("/{id}", s.handleGetActivity)
				ar.Delete("/{id}", s.handleDeleteActivity)
			})
		})
	})

	return r
}
