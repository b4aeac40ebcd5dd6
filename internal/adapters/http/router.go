// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskboard-sync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskboard-sync/internal/adapters/http/middleware"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. requestTimeout bounds
// every board route except the event stream.
func NewRouter(
	boardHandler *handlers.BoardHandler,
	dragHandler *handlers.DragHandler,
	eventsHandler *handlers.EventsHandler,
	healthHandler *handlers.HealthHandler,
	requestTimeout time.Duration,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1/boards/{"+handlers.ParamWorkspaceID+"}", func(r chi.Router) {
		r.Get("/events", eventsHandler.Stream)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(requestTimeout))

			r.Get("/", boardHandler.GetBoard)
			r.Post("/refresh", boardHandler.RefreshBoard)
			r.Put("/tasks/{"+handlers.ParamTaskID+"}", boardHandler.UpsertTask)
			r.Delete("/tasks/{"+handlers.ParamTaskID+"}", boardHandler.DeleteTask)
			r.Post("/moves", boardHandler.MoveTask)

			r.Get("/drag", dragHandler.GetState)
			r.Put("/drag/zones", dragHandler.SetZones)
			r.Post("/drag/events", dragHandler.HandleEvent)
		})
	})

	return r
}
