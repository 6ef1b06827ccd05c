package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/the-tour-club/skins/api/handlers"
	courseservice "github.com/the-tour-club/skins/app/modules/course/application"
	gameservice "github.com/the-tour-club/skins/app/modules/game/application"
	"github.com/the-tour-club/skins/config"
)

// NewRouter assembles the HTTP API.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	gameService gameservice.Service,
	courseService courseservice.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	limiter := NewIPRateLimiter(rate.Limit(float64(cfg.HTTP.RequestsPerMinute)/60.0), cfg.HTTP.RequestsPerMinute)
	r.Use(RateLimitMiddleware(limiter))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	gameHandler := handlers.NewGameHandler(gameService, logger)
	scorecardHandler := handlers.NewScorecardHandler(gameService, logger)
	courseHandler := handlers.NewCourseHandler(courseService, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/games", gameHandler.Routes())
		r.Mount("/scorecards", scorecardHandler.Routes())
		r.Mount("/courses", courseHandler.Routes())
	})

	return r
}
