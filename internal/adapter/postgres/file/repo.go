// Package file implements the attachment metadata repository using PostgreSQL.
package file

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sectorflow/demand-service/internal/adapter/postgres"
	"github.com/sectorflow/demand-service/internal/domain"
)

var columns = []string{"id", "name", "path", "size", "demand_id", "created_at", "updated_at"}

// listOrphansSQL selects files that no update entry of any demand refers to.
const listOrphansSQL = `
SELECT f.id, f.name, f.path, f.size, f.demand_id, f.created_at, f.updated_at
FROM files f
WHERE f.created_at < $1
  AND NOT EXISTS (
    SELECT 1 FROM demands d
    WHERE d.update_list @> jsonb_build_array(jsonb_build_object('fileID', f.id::text))
  )
ORDER BY f.created_at
LIMIT $2`

// Repo provides file record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new file repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a file record by primary key.
// Returns domain.ErrNotFound if the record does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.File, error) {
	query, args, err := postgres.Builder().Select(columns...).From("files").
		Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get file: %w", err)
	}

	f, err := scanFile(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "file", id)
	}
	return f, nil
}

// Create inserts a new file record.
func (r *Repo) Create(ctx context.Context, f *domain.File) error {
	query, args, err := postgres.Builder().Insert("files").Columns(columns...).
		Values(f.ID, f.Name, f.Path, f.Size, f.DemandID, f.CreatedAt, f.UpdatedAt).ToSql()
	if err != nil {
		return fmt.Errorf("build create file: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "file", f.ID)
	}
	return nil
}

// Delete removes a file record.
// Returns domain.ErrNotFound if the record does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM files WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "file", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListOrphans returns up to limit file records created before the cutoff
// that no update entry references.
func (r *Repo) ListOrphans(ctx context.Context, createdBefore time.Time, limit int) ([]domain.File, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listOrphansSQL, createdBefore, limit)
	if err != nil {
		return nil, fmt.Errorf("list orphan files: %w", err)
	}
	defer rows.Close()

	result := []domain.File{}
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("list orphan files: %w", err)
		}
		result = append(result, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orphan files: %w", err)
	}
	return result, nil
}

func scanFile(row pgx.Row) (*domain.File, error) {
	var f domain.File
	if err := row.Scan(&f.ID, &f.Name, &f.Path, &f.Size, &f.DemandID, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	f.CreatedAt = f.CreatedAt.UTC()
	f.UpdatedAt = f.UpdatedAt.UTC()
	return &f, nil
}
