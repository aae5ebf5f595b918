package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arsw-lab/blueprints-core/internal/auth"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// Health check (no auth required)
	r.Get("/health", s.handleHealth)

	// Auth endpoints (no auth required)
	r.Post("/auth/login", s.handleLogin)

	// Protected blueprint routes. The auth stage verifies the bearer token;
	// each group then declares the scope its operations require.
	r.Route("/api/blueprints", func(r chi.Router) {
		r.Use(s.authMiddleware)

		// Retrieval operations
		r.Group(func(r chi.Router) {
			r.Use(s.requireScope(auth.ScopeRead))

			r.Get("/", s.handleListBlueprints)
			r.Get("/{author}", s.handleListByAuthor)
			r.Get("/{author}/{name}", s.handleGetBlueprint)
		})

		// Mutation operations
		r.Group(func(r chi.Router) {
			r.Use(s.requireScope(auth.ScopeWrite))

			r.Post("/", s.handleCreateBlueprint)
			r.Put("/{author}/{name}/points", s.handleAddPoint)
			r.Delete("/{author}/{name}", s.handleDeleteBlueprint)
		})
	})

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}
