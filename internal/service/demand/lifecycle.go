package demand

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sectorflow/demand-service/internal/domain"
)

// Create opens a new demand assigned to its first sector.
// All missing fields are reported together; the creating user must resolve
// in the user directory.
func (s *Service) Create(ctx context.Context, input CreateInput) (d *domain.Demand, err error) {
	defer func() { s.metrics.IncrementOp("create", err) }()

	categoryIDs, errs := input.fields().validate()

	var day *time.Time
	if !domain.IsPlaceholder(input.DemandDate) {
		parsed, perr := domain.ParseCivilDate(input.DemandDate)
		if perr != nil {
			errs = append(errs, domain.FieldError{Field: "demandDate", Message: "Demand date is invalid"})
		} else {
			day = &parsed
		}
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	user, err := s.users.User(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	createdAt := now
	if day != nil {
		createdAt = domain.Retroactive(*day, now)
	}

	d = &domain.Demand{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Process:     input.Process,
		CategoryIDs: categoryIDs,
		ClientID:    input.ClientID,
		UserID:      input.UserID,
		Open:        true,
	}
	if err := d.AppendSectorAssignment(input.SectorID, input.ResponsibleUserName, now); err != nil {
		return nil, err
	}
	d.AppendHistory(input.UserID, domain.HistoryLabelCreated, nil, nil, now)
	d.CreatedAt = createdAt
	d.UpdatedAt = now

	if err := s.demands.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create demand: %w", err)
	}

	s.log.InfoContext(ctx, "demand created",
		slog.String("demand_id", d.ID.String()),
		slog.String("client_id", d.ClientID),
		slog.String("sector_id", input.SectorID),
		slog.String("user", user.Name),
		slog.Bool("retroactive", day != nil),
	)

	return d, nil
}

// Update replaces the editable fields and appends one history entry per
// changed field. The routing trail is not touched: sector moves go through
// ForwardSector and ReassignSector.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Demand, error) {
	categoryIDs, errs := input.fields().validate()
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	if _, err := s.users.User(ctx, input.UserID); err != nil {
		return nil, err
	}

	changes := domain.DemandChanges{
		Name:        input.Name,
		Description: input.Description,
		Process:     input.Process,
		CategoryIDs: categoryIDs,
		ClientID:    input.ClientID,
	}

	return s.mutate(ctx, "update", s.byID(id), func(d *domain.Demand) error {
		now := s.clock.Now()
		delta := s.diff.Diff(d, changes, input.UserID, now)
		changes.Apply(d, now)
		d.DemandHistory = append(d.DemandHistory, delta...)
		return nil
	})
}

// ToggleOpen flips the open flag.
func (s *Service) ToggleOpen(ctx context.Context, id uuid.UUID) (*domain.Demand, error) {
	d, err := s.mutate(ctx, "toggle", s.byID(id), func(d *domain.Demand) error {
		d.Open = !d.Open
		d.UpdatedAt = s.clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "demand toggled",
		slog.String("demand_id", d.ID.String()),
		slog.Bool("open", d.Open),
	)
	return d, nil
}

// ForwardSector moves the demand to a new sector, keeping the full trail.
func (s *Service) ForwardSector(ctx context.Context, id uuid.UUID, sectorID, responsibleUserName string) (*domain.Demand, error) {
	if err := validateSectorID(sectorID); err != nil {
		return nil, err
	}

	d, err := s.mutate(ctx, "forward", s.byID(id), func(d *domain.Demand) error {
		return d.AppendSectorAssignment(sectorID, responsibleUserName, s.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "demand forwarded",
		slog.String("demand_id", d.ID.String()),
		slog.String("sector_id", sectorID),
		slog.Int("hops", len(d.SectorHistory)),
	)
	return d, nil
}

// ReassignSector corrects the current sector without adding a hop.
func (s *Service) ReassignSector(ctx context.Context, id uuid.UUID, sectorID string) (*domain.Demand, error) {
	if err := validateSectorID(sectorID); err != nil {
		return nil, err
	}

	return s.mutate(ctx, "reassign", s.byID(id), func(d *domain.Demand) error {
		return d.ReassignCurrentSector(sectorID, s.clock.Now())
	})
}
