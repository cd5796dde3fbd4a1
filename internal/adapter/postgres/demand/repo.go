// Package demand implements the Demand repository using PostgreSQL.
// The routing trail, history and update thread are stored as JSONB arrays
// on the demand row and written back together under a version check.
package demand

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sectorflow/demand-service/internal/adapter/postgres"
	"github.com/sectorflow/demand-service/internal/domain"
)

// currentSectorExpr extracts the sector of the last routing assignment.
const currentSectorExpr = `(d.sector_history->-1->>'sectorID')`

// categoriesExpr resolves category_ids into category documents in reference
// order. Dangling ids are skipped.
const categoriesExpr = `COALESCE((
	SELECT jsonb_agg(jsonb_build_object(
		'id', c.id, 'name', c.name, 'description', c.description, 'color', c.color,
		'createdAt', c.created_at, 'updatedAt', c.updated_at
	) ORDER BY array_position(d.category_ids, c.id))
	FROM categories c
	WHERE c.id = ANY(d.category_ids)
), '[]'::jsonb) AS categories`

var demandColumns = []string{
	"d.id", "d.name", "d.description", "d.process", "d.category_ids",
	"d.client_id", "d.user_id", "d.open",
	"d.sector_history", "d.demand_history", "d.update_list",
	"d.version", "d.created_at", "d.updated_at",
	categoriesExpr,
}

// Repo provides demand persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new demand repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a demand by primary key.
// Returns domain.ErrNotFound if the demand does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Demand, error) {
	query, args, err := selectDemands().Where(sq.Eq{"d.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get demand: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	d, err := scanDemand(row)
	if err != nil {
		return nil, postgres.MapError(err, "demand", id)
	}
	return d, nil
}

// GetByUpdateEntryID returns the demand whose update thread contains the entry.
// Returns domain.ErrNotFound if no demand owns such an entry.
func (r *Repo) GetByUpdateEntryID(ctx context.Context, entryID uuid.UUID) (*domain.Demand, error) {
	query, args, err := selectDemands().
		Where("d.update_list @> jsonb_build_array(jsonb_build_object('_id', ?::text))", entryID.String()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get demand by update entry: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	d, err := scanDemand(row)
	if err != nil {
		return nil, postgres.MapError(err, "update entry", entryID)
	}
	return d, nil
}

// List returns demands matching the filter, oldest first unless
// filter.NewestFirst is set.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.DemandFilter) ([]domain.Demand, error) {
	order := []string{"d.created_at ASC", "d.id ASC"}
	if filter.NewestFirst {
		order = []string{"d.created_at DESC", "d.id DESC"}
	}
	b := applyFilter(selectDemands(), filter).OrderBy(order...)
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	return r.query(ctx, b, "list demands")
}

// Newest returns the n most recently created demands.
func (r *Repo) Newest(ctx context.Context, n int) ([]domain.Demand, error) {
	b := selectDemands().OrderBy("d.created_at DESC", "d.id DESC").Limit(uint64(n))
	return r.query(ctx, b, "list newest demands")
}

func (r *Repo) query(ctx context.Context, b sq.SelectBuilder, op string) ([]domain.Demand, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := []domain.Demand{}
	for rows.Next() {
		d, err := scanDemand(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new demand at version 1.
func (r *Repo) Create(ctx context.Context, d *domain.Demand) error {
	doc, err := encodeTrail(d)
	if err != nil {
		return fmt.Errorf("create demand: %w", err)
	}

	query, args, err := postgres.Builder().
		Insert("demands").
		Columns("id", "name", "description", "process", "category_ids", "client_id", "user_id", "open",
			"sector_history", "demand_history", "update_list", "version", "created_at", "updated_at").
		Values(d.ID, d.Name, d.Description, d.Process, d.CategoryIDs, d.ClientID, d.UserID, d.Open,
			doc.sectors, doc.history, doc.updates, 1, d.CreatedAt, d.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create demand: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "demand", d.ID)
	}

	d.Version = 1
	return nil
}

// Save writes the whole demand back if its version is still current and
// bumps d.Version. Returns domain.ErrConflict if another write won the race
// and domain.ErrNotFound if the demand is gone.
func (r *Repo) Save(ctx context.Context, d *domain.Demand) error {
	doc, err := encodeTrail(d)
	if err != nil {
		return fmt.Errorf("save demand: %w", err)
	}

	query, args, err := postgres.Builder().
		Update("demands").
		SetMap(map[string]any{
			"name":           d.Name,
			"description":    d.Description,
			"process":        d.Process,
			"category_ids":   d.CategoryIDs,
			"client_id":      d.ClientID,
			"user_id":        d.UserID,
			"open":           d.Open,
			"sector_history": doc.sectors,
			"demand_history": doc.history,
			"update_list":    doc.updates,
			"updated_at":     d.UpdatedAt,
			"version":        sq.Expr("version + 1"),
		}).
		Where(sq.Eq{"id": d.ID, "version": d.Version}).
		Suffix("RETURNING version").
		ToSql()
	if err != nil {
		return fmt.Errorf("build save demand: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var version int
	err = q.QueryRow(ctx, query, args...).Scan(&version)
	if errors.Is(err, pgx.ErrNoRows) {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM demands WHERE id = $1)`, d.ID).Scan(&exists); err != nil {
			return postgres.MapError(err, "demand", d.ID)
		}
		if !exists {
			return fmt.Errorf("demand %s: %w", d.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("demand %s version %d: %w", d.ID, d.Version, domain.ErrConflict)
	}
	if err != nil {
		return postgres.MapError(err, "demand", d.ID)
	}

	d.Version = version
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func selectDemands() sq.SelectBuilder {
	return postgres.Builder().Select(demandColumns...).From("demands d")
}

func applyFilter(b sq.SelectBuilder, f domain.DemandFilter) sq.SelectBuilder {
	if f.Open != nil {
		b = b.Where(sq.Eq{"d.open": *f.Open})
	}
	if f.ClientID != nil {
		b = b.Where(sq.Eq{"d.client_id": *f.ClientID})
	}
	if f.UserID != nil {
		b = b.Where(sq.Eq{"d.user_id": *f.UserID})
	}
	if f.CategoryID != nil {
		b = b.Where("? = ANY(d.category_ids)", *f.CategoryID)
	}
	if f.SectorID != nil {
		b = b.Where(currentSectorExpr+" = ?", *f.SectorID)
	}
	if f.Name != nil {
		b = b.Where(sq.Eq{"d.name": *f.Name})
	}
	if f.Process != nil {
		b = b.Where(sq.Eq{"d.process": *f.Process})
	}
	if f.Description != nil {
		b = b.Where(sq.Eq{"d.description": *f.Description})
	}
	return b
}

type trailDoc struct {
	sectors []byte
	history []byte
	updates []byte
}

func encodeTrail(d *domain.Demand) (trailDoc, error) {
	var (
		doc trailDoc
		err error
	)
	if doc.sectors, err = json.Marshal(orEmpty(d.SectorHistory)); err != nil {
		return doc, fmt.Errorf("encode sector_history: %w", err)
	}
	if doc.history, err = json.Marshal(orEmpty(d.DemandHistory)); err != nil {
		return doc, fmt.Errorf("encode demand_history: %w", err)
	}
	if doc.updates, err = json.Marshal(orEmpty(d.UpdateList)); err != nil {
		return doc, fmt.Errorf("encode update_list: %w", err)
	}
	return doc, nil
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func scanDemand(row pgx.Row) (*domain.Demand, error) {
	var (
		d                         domain.Demand
		sectors, history, updates []byte
		categories                []byte
	)
	err := row.Scan(
		&d.ID, &d.Name, &d.Description, &d.Process, &d.CategoryIDs,
		&d.ClientID, &d.UserID, &d.Open,
		&sectors, &history, &updates,
		&d.Version, &d.CreatedAt, &d.UpdatedAt,
		&categories,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(sectors, &d.SectorHistory); err != nil {
		return nil, fmt.Errorf("decode sector_history: %w", err)
	}
	if err := json.Unmarshal(history, &d.DemandHistory); err != nil {
		return nil, fmt.Errorf("decode demand_history: %w", err)
	}
	if err := json.Unmarshal(updates, &d.UpdateList); err != nil {
		return nil, fmt.Errorf("decode update_list: %w", err)
	}
	if d.Categories, err = decodeCategories(categories); err != nil {
		return nil, err
	}

	d.CreatedAt = d.CreatedAt.UTC()
	d.UpdatedAt = d.UpdatedAt.UTC()
	return &d, nil
}

type categoryDoc struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func decodeCategories(raw []byte) ([]domain.Category, error) {
	var docs []categoryDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	out := make([]domain.Category, len(docs))
	for i, c := range docs {
		out[i] = domain.Category{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Color:       c.Color,
			CreatedAt:   c.CreatedAt.UTC(),
			UpdatedAt:   c.UpdatedAt.UTC(),
		}
	}
	return out, nil
}
