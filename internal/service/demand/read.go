package demand

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sectorflow/demand-service/internal/domain"
)

// Get returns one demand.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Demand, error) {
	return s.demands.GetByID(ctx, id)
}

// List returns all demands, optionally only open or only closed ones.
func (s *Service) List(ctx context.Context, open *bool) ([]domain.Demand, error) {
	return s.demands.List(ctx, domain.DemandFilter{Open: open})
}

// ListByClient returns the demands of one client.
func (s *Service) ListByClient(ctx context.Context, clientID string, open *bool) ([]domain.Demand, error) {
	return s.demands.List(ctx, domain.DemandFilter{ClientID: &clientID, Open: open})
}

// Newest returns the most recently created demands.
func (s *Service) Newest(ctx context.Context) ([]domain.Demand, error) {
	return s.demands.Newest(ctx, s.cfg.NewestLimit)
}

// History returns the demand history with every acting user resolved.
// One failed lookup fails the whole call.
func (s *Service) History(ctx context.Context, id uuid.UUID) ([]domain.HistoryView, error) {
	d, err := s.demands.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	views := make([]domain.HistoryView, len(d.DemandHistory))
	g, gctx := errgroup.WithContext(ctx)
	for i, h := range d.DemandHistory {
		g.Go(func() error {
			user, err := s.users.User(gctx, h.UserID)
			if err != nil {
				return err
			}
			views[i] = domain.HistoryView{
				Label:  h.Label,
				Before: h.Before,
				After:  h.After,
				Date:   h.Date,
				User:   *user,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

// ListWithClientNames lists demands matching a free-form filter and attaches
// each one's client name. Demands whose client is unknown to the directory
// are dropped. Results are grouped by client in directory order, newest
// demand first within a client.
func (s *Service) ListWithClientNames(ctx context.Context, raw map[string]string) ([]domain.DemandWithClient, error) {
	filter, err := ParseListFilter(raw)
	if err != nil {
		return nil, err
	}

	clients, err := s.clients.Clients(ctx)
	if err != nil {
		return nil, err
	}

	filter.NewestFirst = true
	demands, err := s.demands.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list demands: %w", err)
	}

	byClient := make(map[string][]domain.Demand)
	for _, d := range demands {
		byClient[d.ClientID] = append(byClient[d.ClientID], d)
	}

	out := []domain.DemandWithClient{}
	for _, c := range clients {
		for _, d := range byClient[c.ID] {
			out = append(out, domain.DemandWithClient{Demand: d, ClientName: c.Name})
		}
		delete(byClient, c.ID)
	}
	return out, nil
}

// ParseListFilter converts free-form query parameters into a demand filter.
// Placeholder values are dropped first; unknown keys and malformed values
// are reported together.
func ParseListFilter(raw map[string]string) (domain.DemandFilter, error) {
	var (
		f    domain.DemandFilter
		errs []domain.FieldError
	)

	for key, value := range raw {
		v := domain.OptionalParam(value)
		if v == nil {
			continue
		}
		trimmed := strings.TrimSpace(*v)

		switch key {
		case "open":
			b, ok := domain.ParseTextBool(trimmed)
			if !ok {
				errs = append(errs, domain.FieldError{Field: key, Message: "Open is invalid"})
				continue
			}
			f.Open = &b
		case "clientID":
			f.ClientID = &trimmed
		case "userID":
			f.UserID = &trimmed
		case "sectorID":
			f.SectorID = &trimmed
		case "categoryID":
			id, err := uuid.Parse(trimmed)
			if err != nil {
				errs = append(errs, domain.FieldError{Field: key, Message: "Category Id invalid"})
				continue
			}
			f.CategoryID = &id
		case "name":
			f.Name = v
		case "process":
			f.Process = v
		case "description":
			f.Description = v
		default:
			errs = append(errs, domain.FieldError{Field: key, Message: fmt.Sprintf("Unknown filter %s", key)})
		}
	}

	if len(errs) > 0 {
		sortFieldErrors(errs)
		return domain.DemandFilter{}, domain.NewValidationErrors(errs)
	}
	return f, nil
}

func sortFieldErrors(errs []domain.FieldError) {
	slices.SortFunc(errs, func(a, b domain.FieldError) int {
		return strings.Compare(a.Field, b.Field)
	})
}
