package routes

import (
	"net/http"

	"github.com/sushantshrestha/health-assistant/internal/api/handlers"
	"github.com/sushantshrestha/health-assistant/internal/api/middleware"
	"github.com/sushantshrestha/health-assistant/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	planHandler *handlers.PlanHandler
	metrics     *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(planHandler *handlers.PlanHandler, metrics *observability.Metrics) *Router {
	return &Router{
		mux:         http.NewServeMux(),
		planHandler: planHandler,
		metrics:     metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	r.mux.HandleFunc("GET /{$}", r.planHandler.Root)
	r.mux.HandleFunc("POST /treatment-plan", r.planHandler.GeneratePlan)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	if r.metrics != nil {
		handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	}
	handler = middleware.CORSMiddleware(handler)

	return handler
}
