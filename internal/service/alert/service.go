// Package alert manages reminders attached to demands and sectors.
package alert

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sectorflow/demand-service/internal/domain"
)

type alertRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	List(ctx context.Context, f domain.AlertFilter) ([]domain.Alert, error)
	Create(ctx context.Context, a *domain.Alert) error
	Update(ctx context.Context, a *domain.Alert) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type clock interface {
	Now() time.Time
}

// Input holds the fields of an alert as transported.
// Date is YYYY-MM-DD or RFC 3339.
type Input struct {
	Name        string
	Description string
	Date        string
	AlertClient *string
	DemandID    string
	SectorID    string
	Checkbox    bool
}

func (i Input) validate() (time.Time, error) {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "Name is invalid"})
	}
	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "Description is invalid"})
	}
	date, err := parseDate(i.Date)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "date", Message: "Date is invalid"})
	}
	if strings.TrimSpace(i.DemandID) == "" {
		errs = append(errs, domain.FieldError{Field: "demandID", Message: "Demand Id is invalid"})
	}
	if strings.TrimSpace(i.SectorID) == "" {
		errs = append(errs, domain.FieldError{Field: "sectorID", Message: "Sector Id is invalid"})
	}
	if len(errs) > 0 {
		return time.Time{}, domain.NewValidationErrors(errs)
	}
	return date, nil
}

// parseDate keeps the time of day of full timestamps.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return domain.ParseCivilDate(s)
}

// Service provides alert management operations.
type Service struct {
	alerts alertRepo
	clock  clock
	log    *slog.Logger
}

// NewService creates a new alert service.
func NewService(log *slog.Logger, alerts alertRepo, clk clock) *Service {
	return &Service{
		alerts: alerts,
		clock:  clk,
		log:    log.With("service", "alert"),
	}
}

// List returns every alert.
func (s *Service) List(ctx context.Context) ([]domain.Alert, error) {
	return s.alerts.List(ctx, domain.AlertFilter{})
}

// Get returns one alert.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	return s.alerts.GetByID(ctx, id)
}

// ListByDemand returns the pending alerts of a demand.
func (s *Service) ListByDemand(ctx context.Context, demandID string) ([]domain.Alert, error) {
	now := s.clock.Now()
	return s.alerts.List(ctx, domain.AlertFilter{DemandID: &demandID, PendingAt: &now})
}

// ListBySector returns the pending alerts of a sector.
func (s *Service) ListBySector(ctx context.Context, sectorID string) ([]domain.Alert, error) {
	now := s.clock.Now()
	return s.alerts.List(ctx, domain.AlertFilter{SectorID: &sectorID, PendingAt: &now})
}

// Create adds an unchecked alert.
func (s *Service) Create(ctx context.Context, input Input) (*domain.Alert, error) {
	date, err := input.validate()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	a := &domain.Alert{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Date:        date,
		AlertClient: input.AlertClient,
		DemandID:    input.DemandID,
		SectorID:    input.SectorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.alerts.Create(ctx, a); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "alert created",
		slog.String("alert_id", a.ID.String()),
		slog.String("demand_id", a.DemandID),
	)
	return a, nil
}

// Update replaces the fields of an alert, including its checkbox.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input Input) (*domain.Alert, error) {
	date, err := input.validate()
	if err != nil {
		return nil, err
	}

	a := &domain.Alert{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Date:        date,
		AlertClient: input.AlertClient,
		DemandID:    input.DemandID,
		SectorID:    input.SectorID,
		Checkbox:    input.Checkbox,
		UpdatedAt:   s.clock.Now(),
	}
	if err := s.alerts.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes an alert.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.alerts.Delete(ctx, id)
}
