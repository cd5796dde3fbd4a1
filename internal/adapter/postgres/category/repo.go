// Package category implements the Category repository using PostgreSQL.
package category

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

var columns = []string{"id", "name", "description", "color", "created_at", "updated_at"}

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a category by primary key.
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	query, args, err := postgres.Builder().Select(columns...).From("categories").
		Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get category: %w", err)
	}

	c, err := scanCategory(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return c, nil
}

// ExistsByName reports whether a category with exactly this name exists.
func (r *Repo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM categories WHERE name = $1)`, name).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check category name: %w", err)
	}
	return exists, nil
}

// List returns all categories ordered by name.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]domain.Category, error) {
	query, args, err := postgres.Builder().Select(columns...).From("categories").
		OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list categories: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	result := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return result, nil
}

// Create inserts a new category. Returns domain.ErrAlreadyExists on a
// duplicate name.
func (r *Repo) Create(ctx context.Context, c *domain.Category) error {
	query, args, err := postgres.Builder().Insert("categories").Columns(columns...).
		Values(c.ID, c.Name, c.Description, c.Color, c.CreatedAt, c.UpdatedAt).ToSql()
	if err != nil {
		return fmt.Errorf("build create category: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "category", c.ID)
	}
	return nil
}

// Update replaces name, description and color.
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) Update(ctx context.Context, c *domain.Category) error {
	query, args, err := postgres.Builder().Update("categories").
		Set("name", c.Name).
		Set("description", c.Description).
		Set("color", c.Color).
		Set("updated_at", c.UpdatedAt).
		Where(sq.Eq{"id": c.ID}).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build update category: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&c.CreatedAt); err != nil {
		return postgres.MapError(err, "category", c.ID)
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return nil
}

// Delete removes a category. Demands referencing it are left untouched.
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "category", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Color, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return &c, nil
}
