// Package stats builds and runs the demand statistics reports.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sectorflow/demand-service/internal/domain"
	"github.com/sectorflow/demand-service/internal/metrics"
)

type statsRepo interface {
	Stats(ctx context.Context, p domain.Pipeline) ([]domain.StatsRow, error)
}

type clientDirectory interface {
	Clients(ctx context.Context) ([]domain.Client, error)
}

// Service runs statistics reports over the demand store.
type Service struct {
	repo    statsRepo
	clients clientDirectory
	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewService creates a new statistics service.
func NewService(log *slog.Logger, repo statsRepo, clients clientDirectory, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		clients: clients,
		metrics: m,
		log:     log.With("service", "stats"),
	}
}

// Report returns per-group demand counts of one dimension.
// The features dimension first resolves the feature-bearing clients from
// the client directory; a directory failure fails the report.
func (s *Service) Report(ctx context.Context, dim domain.StatsDimension, p domain.StatsParams) ([]domain.StatsRow, error) {
	if !dim.IsValid() {
		return nil, domain.NewValidationError("dimension", fmt.Sprintf("Unknown statistics %q", dim))
	}
	if p.FinalDate.Before(p.InitialDate) {
		return nil, domain.NewValidationError(ParamFinalDate, "Final date is before initial date")
	}

	var allowList []string
	if dim == domain.DimensionFeatures {
		clients, err := s.clients.Clients(ctx)
		if err != nil {
			return nil, err
		}
		allowList = featureClients(clients, p.FeatureID)
	}

	start := time.Now()
	rows, err := s.repo.Stats(ctx, Build(dim, p, allowList))
	s.metrics.ObserveStats(dim.String(), time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%s statistics: %w", dim, err)
	}

	s.log.DebugContext(ctx, "statistics computed",
		slog.String("dimension", dim.String()),
		slog.Int("groups", len(rows)),
	)
	return rows, nil
}

// featureClients returns the IDs of clients carrying featureID, or any
// feature when featureID is nil.
func featureClients(clients []domain.Client, featureID *string) []string {
	want := ""
	if featureID != nil {
		want = *featureID
	}

	ids := []string{}
	for _, c := range clients {
		if c.HasFeature(want) {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
