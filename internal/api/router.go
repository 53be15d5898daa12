package api

import (
	"net/http"
	"time"

	"github.com/AlexZinkM/sapphire-api/internal/handler"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Service is everything the API routes call into. *service.Aggregator implements it.
type Service interface {
	handler.PriceService
	handler.TokenService
}

// Options configures the router.
type Options struct {
	AppName        string
	AppVersion     string
	AllowedOrigins []string
	Logger         zerolog.Logger
}

// SetupRouter sets up router with handlers
func SetupRouter(svc Service, opts Options) http.Handler {
	systemHandler := handler.NewSystemHandler(opts.AppName, opts.AppVersion)
	priceHandler := handler.NewPriceHandler(svc)
	tokenHandler := handler.NewTokenHandler(svc)

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handler.MethodNotAllowed)

	// Swagger UI
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	r.HandleFunc("/", systemHandler.Root).Methods(http.MethodGet)
	r.HandleFunc("/health", systemHandler.Health).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()

	// Price endpoints
	v1.HandleFunc("/prices/major-coins", priceHandler.MajorCoins).Methods(http.MethodGet)
	v1.HandleFunc("/prices/token/{token_id}", priceHandler.Token).Methods(http.MethodGet)

	// Token endpoints
	v1.HandleFunc("/tokens/network/{network}", tokenHandler.Network).Methods(http.MethodGet)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	var h http.Handler = r
	h = c.Handler(h)
	h = hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("HTTP request")
	})(h)
	h = hlog.RequestIDHandler("req_id", "X-Request-Id")(h)
	h = hlog.NewHandler(opts.Logger)(h)
	return h
}
