package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/advisorlabs/course-advisor/internal/api/handlers"
	"github.com/advisorlabs/course-advisor/internal/api/middleware"
	"github.com/advisorlabs/course-advisor/internal/telemetry"
)

// Router wraps mux.Router to add more functionality
type Router struct {
	*mux.Router
	middleware []mux.MiddlewareFunc
	endpoint   string
}

// NewRouter creates and configures a new router with all dependencies
func NewRouter(
	advisorHandler *handlers.AdvisorHandler,
	endpoint string,
) *Router {
	r := &Router{
		Router: mux.NewRouter(),
		middleware: []mux.MiddlewareFunc{
			middleware.Logging,
			telemetry.Middleware,
		},
		endpoint: endpoint,
	}

	r.setup()
	r.registerRoutes(advisorHandler)

	return r
}

// setup configures the base router with middleware and common settings
func (r *Router) setup() {
	// Match on the encoded path: career names like "AI / ML Engineer"
	// carry an escaped slash that must not split the path variable.
	r.UseEncodedPath()

	for _, m := range r.middleware {
		r.Use(m)
	}
}

// registerRoutes registers all application routes
func (r *Router) registerRoutes(
	advisorHandler *handlers.AdvisorHandler,
) {
	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.Handle("/metrics", telemetry.Handler()).Methods("GET")

	api := r.PathPrefix(r.endpoint).Subrouter()

	api.HandleFunc("/recommendations", advisorHandler.Recommend).Methods("POST")
	api.HandleFunc("/options", advisorHandler.GetOptions).Methods("GET")
	api.HandleFunc("/careers/{career}/roadmap", advisorHandler.GetRoadmap).Methods("GET")
	api.HandleFunc("/study-plans", advisorHandler.GetStudyPlan).Methods("GET")

	catalog := api.PathPrefix("/catalog").Subrouter()
	catalog.HandleFunc("/trends", advisorHandler.GetTrends).Methods("GET")
	catalog.HandleFunc("/preview", advisorHandler.PreviewCatalog).Methods("GET")
}

// AddMiddleware adds a new middleware to the router
func (r *Router) AddMiddleware(middleware mux.MiddlewareFunc) {
	r.Use(middleware)
}
