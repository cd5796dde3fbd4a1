package demand

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sectorflow/demand-service/internal/domain"
	"github.com/sectorflow/demand-service/internal/metrics"
)

type demandRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Demand, error)
	GetByUpdateEntryID(ctx context.Context, entryID uuid.UUID) (*domain.Demand, error)
	List(ctx context.Context, filter domain.DemandFilter) ([]domain.Demand, error)
	Newest(ctx context.Context, n int) ([]domain.Demand, error)
	Create(ctx context.Context, d *domain.Demand) error
	Save(ctx context.Context, d *domain.Demand) error
}

type fileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.File, error)
	Create(ctx context.Context, f *domain.File) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type fileStore interface {
	Put(ctx context.Context, name string, r io.Reader, size int64) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Exists(ctx context.Context, name string) (bool, error)
	Delete(ctx context.Context, name string) error
}

type userDirectory interface {
	User(ctx context.Context, id string) (*domain.User, error)
}

type clientDirectory interface {
	Clients(ctx context.Context) ([]domain.Client, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type clock interface {
	Now() time.Time
}

// changeDetector produces the history delta of a field update.
type changeDetector interface {
	Diff(current *domain.Demand, changes domain.DemandChanges, userID string, now time.Time) []domain.HistoryEntry
}

type fieldDiff struct{}

func (fieldDiff) Diff(current *domain.Demand, changes domain.DemandChanges, userID string, now time.Time) []domain.HistoryEntry {
	return domain.DiffDemand(current, changes, userID, now)
}

// Config tunes the lifecycle manager.
type Config struct {
	// MutateRetries is how many times a write that lost a version race
	// is reloaded and retried.
	MutateRetries int
	// NewestLimit is the size of the newest-demands listing.
	NewestLimit int
}

// Service manages the demand lifecycle and its audit trail.
type Service struct {
	demands demandRepo
	files   fileRepo
	store   fileStore
	users   userDirectory
	clients clientDirectory
	tx      txManager
	clock   clock
	diff    changeDetector
	metrics *metrics.Metrics
	cfg     Config
	log     *slog.Logger
}

// NewService creates a new demand service.
func NewService(
	log *slog.Logger,
	demands demandRepo,
	files fileRepo,
	store fileStore,
	users userDirectory,
	clients clientDirectory,
	tx txManager,
	clk clock,
	m *metrics.Metrics,
	cfg Config,
) *Service {
	if cfg.MutateRetries < 0 {
		cfg.MutateRetries = 0
	}
	if cfg.NewestLimit <= 0 {
		cfg.NewestLimit = 4
	}
	return &Service{
		demands: demands,
		files:   files,
		store:   store,
		users:   users,
		clients: clients,
		tx:      tx,
		clock:   clk,
		diff:    fieldDiff{},
		metrics: m,
		cfg:     cfg,
		log:     log.With("service", "demand"),
	}
}

// mutate loads a demand, applies fn and saves it under the version check.
// A lost race reloads and reapplies fn up to cfg.MutateRetries times, then
// fails with domain.ErrConflict. Errors from load or fn end the attempt.
func (s *Service) mutate(
	ctx context.Context,
	op string,
	load func(ctx context.Context) (*domain.Demand, error),
	fn func(d *domain.Demand) error,
) (d *domain.Demand, err error) {
	defer func() { s.metrics.IncrementOp(op, err) }()

	for attempt := 0; ; attempt++ {
		d, err = load(ctx)
		if err != nil {
			return nil, err
		}
		if err = fn(d); err != nil {
			return nil, err
		}

		err = s.demands.Save(ctx, d)
		if err == nil {
			return d, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("save demand: %w", err)
		}
		if attempt >= s.cfg.MutateRetries {
			return nil, err
		}

		s.metrics.IncrementConflict()
		s.log.WarnContext(ctx, "demand write lost version race, retrying",
			slog.String("op", op),
			slog.String("demand_id", d.ID.String()),
			slog.Int("attempt", attempt+1),
		)
	}
}

func (s *Service) byID(id uuid.UUID) func(ctx context.Context) (*domain.Demand, error) {
	return func(ctx context.Context) (*domain.Demand, error) {
		return s.demands.GetByID(ctx, id)
	}
}
