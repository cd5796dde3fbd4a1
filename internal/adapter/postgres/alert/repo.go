// Package alert implements the Alert repository using PostgreSQL.
package alert

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sectorflow/demand-service/internal/adapter/postgres"
	"github.com/sectorflow/demand-service/internal/domain"
)

var columns = []string{
	"id", "name", "description", "date", "alert_client", "demand_id", "sector_id",
	"checkbox", "created_at", "updated_at",
}

// Repo provides alert persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new alert repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns an alert by primary key.
// Returns domain.ErrNotFound if the alert does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	query, args, err := postgres.Builder().Select(columns...).From("alerts").
		Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get alert: %w", err)
	}

	a, err := scanAlert(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "alert", id)
	}
	return a, nil
}

// List returns alerts matching the filter ordered by date.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, f domain.AlertFilter) ([]domain.Alert, error) {
	b := postgres.Builder().Select(columns...).From("alerts").OrderBy("date ASC", "id ASC")
	if f.DemandID != nil {
		b = b.Where(sq.Eq{"demand_id": *f.DemandID})
	}
	if f.SectorID != nil {
		b = b.Where(sq.Eq{"sector_id": *f.SectorID})
	}
	if f.PendingAt != nil {
		b = b.Where(sq.Or{
			sq.Eq{"checkbox": false},
			sq.And{
				sq.GtOrEq{"date": *f.PendingAt},
				sq.LtOrEq{"date": f.PendingAt.Add(domain.AlertWindow)},
			},
		})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list alerts: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	result := []domain.Alert{}
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("list alerts: %w", err)
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return result, nil
}

// Create inserts a new alert.
func (r *Repo) Create(ctx context.Context, a *domain.Alert) error {
	query, args, err := postgres.Builder().Insert("alerts").Columns(columns...).
		Values(a.ID, a.Name, a.Description, a.Date, a.AlertClient, a.DemandID, a.SectorID,
			a.Checkbox, a.CreatedAt, a.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create alert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "alert", a.ID)
	}
	return nil
}

// Update replaces every mutable field of the alert.
// Returns domain.ErrNotFound if the alert does not exist.
func (r *Repo) Update(ctx context.Context, a *domain.Alert) error {
	query, args, err := postgres.Builder().Update("alerts").
		SetMap(map[string]any{
			"name":         a.Name,
			"description":  a.Description,
			"date":         a.Date,
			"alert_client": a.AlertClient,
			"demand_id":    a.DemandID,
			"sector_id":    a.SectorID,
			"checkbox":     a.Checkbox,
			"updated_at":   a.UpdatedAt,
		}).
		Where(sq.Eq{"id": a.ID}).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build update alert: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&a.CreatedAt); err != nil {
		return postgres.MapError(err, "alert", a.ID)
	}
	a.CreatedAt = a.CreatedAt.UTC()
	return nil
}

// Delete removes an alert.
// Returns domain.ErrNotFound if the alert does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM alerts WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "alert", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("alert %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanAlert(row pgx.Row) (*domain.Alert, error) {
	var a domain.Alert
	err := row.Scan(&a.ID, &a.Name, &a.Description, &a.Date, &a.AlertClient, &a.DemandID, &a.SectorID,
		&a.Checkbox, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.Date = a.Date.UTC()
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return &a, nil
}
