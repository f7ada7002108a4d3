// Package api wires handlers and middleware into the HTTP router.
package api

import (
	"net/http"

	"retrohub/internal/api/handlers"
	"retrohub/internal/api/middleware"
	"retrohub/internal/metrics"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "retrohub/docs" // registers the swagger spec
)

// RouterOptions carries the middleware collaborators of SetupRouter.
type RouterOptions struct {
	Metrics     *metrics.Metrics
	RateLimiter *middleware.RateLimiter // nil disables rate limiting
	CORSOrigins []string
}

// SetupRouter configures the main router and its sub-routers.
func SetupRouter(h *handlers.Handlers, opts RouterOptions) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Instrument(opts.Metrics))
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		handlers.RespondWithProblem(w, req, http.StatusNotFound, handlers.TitleNotFound, "Not Found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		handlers.RespondWithProblem(w, req, http.StatusMethodNotAllowed, "method_not_allowed", "Method Not Allowed")
	})

	// Public Endpoints
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
	r.HandleFunc("/api/info", h.GetInfo).Methods("GET")
	r.HandleFunc("/secret-info", h.SecretInfo).Methods("GET")
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler()).Methods("GET")
	}
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	limited := r.PathPrefix("").Subrouter()
	if opts.RateLimiter != nil {
		limited.Use(opts.RateLimiter.Middleware)
	}
	addItemRoutes(limited, h)
	addRetroRoutes(limited, h)

	var handler http.Handler = r
	handler = middleware.RequestContext(handler)
	handler = middleware.CORS(opts.CORSOrigins)(handler)
	handler = gorillahandlers.RecoveryHandler(gorillahandlers.PrintRecoveryStack(true))(handler)
	return handler
}

// addItemRoutes configures the demo item endpoints.
func addItemRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/items", h.CreateItem).Methods("POST")
	r.HandleFunc("/items/{id}", h.GetItem).Methods("GET")
}

// addRetroRoutes configures retro CRUD and attachment uploads.
func addRetroRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/retros", h.CreateRetro).Methods("POST")
	r.HandleFunc("/retros", h.ListRetros).Methods("GET")
	r.HandleFunc("/retros/{id}", h.GetRetro).Methods("GET")
	r.HandleFunc("/retros/{id}", h.UpdateRetro).Methods("PUT")
	r.HandleFunc("/retros/{id}", h.DeleteRetro).Methods("DELETE")
	r.HandleFunc("/retros/{id}/attachments", h.UploadAttachment).Methods("POST")
}
