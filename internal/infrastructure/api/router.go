package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	MetricsEnabled    bool
	MetricsPath       string
	RateLimitEnabled  bool
	RequestsPerMinute int
	AllowedOrigins    []string
}

// NewRouter wires the page, its form posts and the JSON API.
func NewRouter(cfg RouterConfig, outfit *OutfitHandler, api *APIHandler) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware, recoverMiddleware, accessLogMiddleware)

	limit := func(h http.HandlerFunc) http.Handler { return h }
	if cfg.RateLimitEnabled && cfg.RequestsPerMinute > 0 {
		limiter := httprate.LimitByIP(cfg.RequestsPerMinute, time.Minute)
		limit = func(h http.HandlerFunc) http.Handler { return limiter(h) }
	}

	r.HandleFunc("/", outfit.HandleIndex).Methods(http.MethodGet)
	r.HandleFunc("/healthz", outfit.HandleHealth).Methods(http.MethodGet)

	r.Handle("/selection/color", limit(outfit.HandleColor)).Methods(http.MethodPost)
	r.Handle("/selection/swatch", limit(outfit.HandleSwatch)).Methods(http.MethodPost)
	r.Handle("/selection/occasion", limit(outfit.HandleOccasion)).Methods(http.MethodPost)
	r.Handle("/selection/image", limit(outfit.HandleImage)).Methods(http.MethodPost)
	r.Handle("/selection/image/clear", limit(outfit.HandleClearImage)).Methods(http.MethodPost)
	r.Handle("/selection/reset", limit(outfit.HandleReset)).Methods(http.MethodPost)

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	apiRouter.HandleFunc("/selection", api.HandleSelection).Methods(http.MethodGet, http.MethodOptions)
	apiRouter.Handle("/recommendations", limit(api.HandleRecommendations)).Methods(http.MethodPost, http.MethodOptions)
	apiRouter.HandleFunc("/swatches", api.HandleSwatches).Methods(http.MethodGet, http.MethodOptions)
	apiRouter.HandleFunc("/occasions", api.HandleOccasions).Methods(http.MethodGet, http.MethodOptions)
	apiRouter.Handle("/advice", limit(api.HandleAdvice)).Methods(http.MethodPost, http.MethodOptions)

	if cfg.MetricsEnabled {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, promhttp.Handler()).Methods(http.MethodGet)
	}

	return r
}
