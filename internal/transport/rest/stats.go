package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sectorflow/demand-service/internal/domain"
	"github.com/sectorflow/demand-service/internal/service/stats"
)

type statsService interface {
	Report(ctx context.Context, dim domain.StatsDimension, p domain.StatsParams) ([]domain.StatsRow, error)
}

// StatsHandler serves GET /demands/stats/{dimension}.
type StatsHandler struct {
	svc  statsService
	errs errorWriter
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, errs: errorWriter{log: logger.With("handler", "stats")}}
}

// Report parses the query string and runs the report for the dimension in
// the path.
func (h *StatsHandler) Report(w http.ResponseWriter, r *http.Request) {
	p, err := stats.ParseParams(r.URL.Query().Get)
	if err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "Invalid parameters.")
		return
	}

	dim := domain.StatsDimension(chi.URLParam(r, "dimension"))
	rows, err := h.svc.Report(r.Context(), dim, p)
	if err != nil {
		h.errs.write(w, r, err, http.StatusBadRequest, "Failed to generate statistics.")
		return
	}
	writeJSON(w, http.StatusOK, toStatsResponses(rows))
}
