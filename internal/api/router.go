package api

import (
	"net/http"
	"travelpins/internal/api/handlers"
	"travelpins/internal/services"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers only see the PinService, never a concrete store.
func NewRouter(pins *services.PinService) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware, loggingMiddleware)

	pinHandler := &handlers.PinHandler{Pins: pins}

	r.Get("/health", handlers.Health)
	r.Route("/pins", func(r chi.Router) {
		r.Post("/", pinHandler.Create)
		r.Get("/", pinHandler.List)
		r.Get("/{pinID}", pinHandler.Get)
		r.Get("/{pinID}/navigation", pinHandler.Navigation)
	})

	return r
}
