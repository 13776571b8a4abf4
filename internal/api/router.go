package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/jisook325/tracker/docs"
	"github.com/jisook325/tracker/internal/api/handler"
	"github.com/jisook325/tracker/internal/api/middleware"
)

type Router struct {
	healthHandler     *handler.HealthHandler
	dayHandler        *handler.DayHandler
	sleepEventHandler *handler.SleepEventHandler
	settingsHandler   *handler.SettingsHandler

	authenticate   func(http.Handler) http.Handler
	allowedOrigins []string
	logger         *zap.Logger
}

// Options carries the cross-cutting pieces the router mounts around the
// handlers.
type Options struct {
	// Authenticate guards every /v1 route.
	Authenticate   func(http.Handler) http.Handler
	AllowedOrigins []string
	Logger         *zap.Logger
}

func NewRouter(
	healthHandler *handler.HealthHandler,
	dayHandler *handler.DayHandler,
	sleepEventHandler *handler.SleepEventHandler,
	settingsHandler *handler.SettingsHandler,
	opts Options,
) *Router {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		healthHandler:     healthHandler,
		dayHandler:        dayHandler,
		sleepEventHandler: sleepEventHandler,
		settingsHandler:   settingsHandler,
		authenticate:      opts.Authenticate,
		allowedOrigins:    opts.AllowedOrigins,
		logger:            logger,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logger(rt.logger))
	r.Use(middleware.CORS(rt.allowedOrigins))
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		if rt.authenticate != nil {
			r.Use(rt.authenticate)
		}

		r.Get("/health", rt.healthHandler.Get)

		// Days
		r.Route("/days", func(r chi.Router) {
			r.Get("/", rt.dayHandler.List)
			r.Put("/{date}", rt.dayHandler.PutMood)
		})

		// Sleep events
		r.Post("/sleep-events", rt.sleepEventHandler.Create)

		// Settings
		r.Route("/settings", func(r chi.Router) {
			r.Get("/moods", rt.settingsHandler.GetMoods)
			r.Put("/moods", rt.settingsHandler.PutMoods)
		})
	})

	return r
}
