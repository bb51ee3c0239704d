package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/patro-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET  /health
//	GET  /metrics
//	GET  /api/v1/today
//	GET  /api/v1/convert/ad-to-bs?date=YYYY-MM-DD
//	GET  /api/v1/convert/bs-to-ad?year=&month=&day=
//	GET  /api/v1/calendar/range
//	GET  /api/v1/calendar/months
//	GET  /api/v1/calendar/{year}/{month}
//	GET  /api/v1/calendar/{year}/{month}/ics
//	GET  /api/v1/admin/years/{year}      (X-API-Key)
//	PUT  /api/v1/admin/years/{year}      (X-API-Key)
//	DELETE /api/v1/admin/years/{year}    (X-API-Key, last year only)
//	GET  /api/v1/admin/revisions         (X-API-Key)
func SetupRoutes(h *Handlers, cfg *config.Config, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(ChainMiddleware(
		RecoveryMiddleware(log),
		RequestIDMiddleware(),
		LoggingMiddleware(log),
		h.metrics.Middleware(),
		CORSMiddleware(),
	))

	r.NotFound(h.NotFound)

	r.Get("/health", h.HealthCheck)
	r.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

		r.Get("/today", h.GetToday)
		r.Get("/convert/ad-to-bs", h.ConvertADToBS)
		r.Get("/convert/bs-to-ad", h.ConvertBSToAD)

		r.Route("/calendar", func(r chi.Router) {
			r.Get("/range", h.GetRange)
			r.Get("/months", h.ListMonths)
			r.Get("/{year}/{month}", h.GetMonth)
			r.Get("/{year}/{month}/ics", h.GetMonthICS)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(cfg, log))
			r.Get("/years/{year}", h.GetYear)
			r.Put("/years/{year}", h.UpsertYear)
			r.Delete("/years/{year}", h.DeleteYear)
			r.Get("/revisions", h.ListRevisions)
		})
	})

	return r
}
