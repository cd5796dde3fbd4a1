package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sectorflow/demand-service/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCategory inserts a category with a unique name.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Category{
		ID:          uuid.New(),
		Name:        "Category " + uniqueSuffix(),
		Description: "seeded",
		Color:       "#336699",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO categories (id, name, description, color, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Description, c.Color, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}

	return c
}

// DemandOption customizes a seeded demand.
type DemandOption func(d *domain.Demand)

// WithClient sets the demand's client.
func WithClient(clientID string) DemandOption {
	return func(d *domain.Demand) { d.ClientID = clientID }
}

// WithOpen sets the demand's open flag.
func WithOpen(open bool) DemandOption {
	return func(d *domain.Demand) { d.Open = open }
}

// WithCreatedAt sets the creation timestamp.
func WithCreatedAt(at time.Time) DemandOption {
	return func(d *domain.Demand) { d.CreatedAt = at; d.UpdatedAt = at }
}

// WithSectors replaces the sector history with one assignment per sector id.
func WithSectors(sectorIDs ...string) DemandOption {
	return func(d *domain.Demand) {
		d.SectorHistory = nil
		for _, s := range sectorIDs {
			d.SectorHistory = append(d.SectorHistory, domain.SectorAssignment{
				SectorID: s, CreatedAt: d.CreatedAt, UpdatedAt: d.CreatedAt,
			})
		}
	}
}

// WithUpdates appends update entries.
func WithUpdates(entries ...domain.UpdateEntry) DemandOption {
	return func(d *domain.Demand) { d.UpdateList = append(d.UpdateList, entries...) }
}

// SeedDemand inserts an open demand in one category, assigned to sector "s1".
func SeedDemand(t *testing.T, pool *pgxpool.Pool, categoryIDs []uuid.UUID, opts ...DemandOption) domain.Demand {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	d := domain.Demand{
		ID:          uuid.New(),
		Name:        "Demand " + uniqueSuffix(),
		Description: "seeded demand",
		Process:     "P-" + uniqueSuffix(),
		CategoryIDs: categoryIDs,
		ClientID:    "client-" + uniqueSuffix(),
		UserID:      "user-1",
		Open:        true,
		CreatedAt:   now,
		UpdatedAt:   now,
		Version:     1,
	}
	d.SectorHistory = []domain.SectorAssignment{{SectorID: "s1", CreatedAt: now, UpdatedAt: now}}
	d.DemandHistory = []domain.HistoryEntry{{UserID: d.UserID, Date: now, Label: domain.HistoryLabelCreated}}
	for _, opt := range opts {
		opt(&d)
	}

	sectors := mustJSON(t, d.SectorHistory)
	history := mustJSON(t, d.DemandHistory)
	updates := mustJSON(t, nonNil(d.UpdateList))

	_, err := pool.Exec(ctx,
		`INSERT INTO demands (id, name, description, process, category_ids, client_id, user_id, open,
		                      sector_history, demand_history, update_list, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		d.ID, d.Name, d.Description, d.Process, d.CategoryIDs, d.ClientID, d.UserID, d.Open,
		sectors, history, updates, d.Version, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDemand: %v", err)
	}

	return d
}

// SeedFile inserts a file record for the demand.
func SeedFile(t *testing.T, pool *pgxpool.Pool, demandID uuid.UUID, createdAt time.Time) domain.File {
	t.Helper()
	ctx := context.Background()

	createdAt = createdAt.UTC().Truncate(time.Microsecond)
	name := uniqueSuffix() + "-report.pdf"
	f := domain.File{
		ID:        uuid.New(),
		Name:      name,
		Path:      name,
		Size:      1024,
		DemandID:  demandID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO files (id, name, path, size, demand_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		f.ID, f.Name, f.Path, f.Size, f.DemandID, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFile: %v", err)
	}

	return f
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("testhelper: marshal: %v", err)
	}
	return b
}

func nonNil(entries []domain.UpdateEntry) []domain.UpdateEntry {
	if entries == nil {
		return []domain.UpdateEntry{}
	}
	return entries
}
