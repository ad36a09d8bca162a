// Package api assembles the HTTP router of the showcase site.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"showcase/internal/api/handlers/projects"
	"showcase/internal/api/handlers/submissions"
	"showcase/internal/api/middleware"
	"showcase/internal/web"
)

type RouterConfig struct {
	Projects    *projects.ProjectHandlers
	Forms       *submissions.FormHandlers
	Pages       *web.Handlers
	Metrics     *middleware.Metrics
	Gatherer    prometheus.Gatherer
	RateLimiter *middleware.RateLimiter
	CORSOrigins []string
}

func NewRouter(cfg RouterConfig) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestLogging)
	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware)
	}

	router.HandleFunc("/health", cfg.Projects.HealthCheckHandler).Methods("GET")
	if cfg.Gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})).Methods("GET")
	}
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	api.HandleFunc("/projects", cfg.Projects.GetProjectsHandler).Methods("GET", "OPTIONS")
	api.HandleFunc("/projects/{id}", cfg.Projects.GetProjectHandler).Methods("GET", "OPTIONS")
	api.HandleFunc("/categories", cfg.Projects.GetCategoriesHandler).Methods("GET", "OPTIONS")
	api.HandleFunc("/curated", cfg.Projects.GetCuratedHandler).Methods("GET", "OPTIONS")

	limited := func(h http.HandlerFunc) http.Handler {
		if cfg.RateLimiter == nil {
			return h
		}
		return cfg.RateLimiter.Middleware(h)
	}
	api.Handle("/newsletter", limited(cfg.Forms.SubscribeHandler)).Methods("POST", "OPTIONS")
	api.Handle("/auth/login", limited(cfg.Forms.LoginHandler)).Methods("POST", "OPTIONS")
	api.Handle("/auth/signup", limited(cfg.Forms.SignupHandler)).Methods("POST", "OPTIONS")

	router.HandleFunc("/", cfg.Pages.HomeHandler).Methods("GET")
	router.HandleFunc("/explore", cfg.Pages.ExploreHandler).Methods("GET")
	router.HandleFunc("/projects/{id}", cfg.Pages.ProjectHandler).Methods("GET")
	router.HandleFunc("/curated/{id}", cfg.Pages.CuratedProjectHandler).Methods("GET")
	router.PathPrefix("/static/").Handler(web.StaticHandler())

	return router
}
