package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sectorflow/demand-service/internal/config"
	"github.com/sectorflow/demand-service/internal/metrics"
	"github.com/sectorflow/demand-service/internal/transport/middleware"
)

// RouterDeps holds everything the HTTP router mounts.
type RouterDeps struct {
	Logger  *slog.Logger
	CORS    config.CORSConfig
	Metrics *metrics.Metrics
	// MetricsHandler serves /metrics. Nil leaves the route unmounted.
	MetricsHandler http.Handler

	Health     *HealthHandler
	Demands    *DemandHandler
	Stats      *StatsHandler
	Categories *CategoryHandler
	Alerts     *AlertHandler
}

// NewRouter builds the service's HTTP handler.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recovery(d.Logger),
		middleware.RequestID,
		middleware.AccessToken,
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
		middleware.Metrics(d.Metrics),
	)

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", d.MetricsHandler)
	}

	r.Route("/demands", func(r chi.Router) {
		h := d.Demands
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/newest", h.Newest)
		r.Get("/clients", h.ListWithClientNames)
		r.Get("/clients/{clientID}", h.ListByClient)
		r.Put("/updates", h.EditUpdate)
		r.Get("/file/{idFile}", h.Download)
		r.Get("/stats/{dimension}", d.Stats.Report)

		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Patch("/{id}/toggle", h.Toggle)
		r.Get("/{id}/history", h.History)
		r.Post("/{id}/sector", h.ForwardSector)
		r.Put("/{id}/sector", h.ReassignSector)
		r.Post("/{id}/updates", h.CreateUpdate)
		r.Delete("/{id}/updates", h.DeleteUpdate)
		r.Post("/{id}/file", h.Upload)
	})

	r.Route("/categories", func(r chi.Router) {
		h := d.Categories
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	r.Route("/alerts", func(r chi.Router) {
		h := d.Alerts
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/demand/{demandID}", h.ListByDemand)
		r.Get("/sector/{sectorID}", h.ListBySector)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
