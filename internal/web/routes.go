package web

import (
	"github.com/go-chi/chi/v5"

	"github.com/imgprint/imgprint/internal/web/handlers"
)

func (s *Server) setupRoutes() {
	hashHandler := handlers.NewHashHandler(s.config, s.log)
	compareHandler := handlers.NewCompareHandler(s.config, s.log)

	// Health check
	s.router.Get("/api/v1/health", handlers.HealthCheck)

	// API routes
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/hash", hashHandler.Hash)
		r.Post("/compare", compareHandler.Compare)
	})
}
