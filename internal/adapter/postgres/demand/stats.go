package demand

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/sectorflow/demand-service/internal/adapter/postgres"
	"github.com/sectorflow/demand-service/internal/domain"
)

// compiledStats is a pipeline rendered to SQL.
type compiledStats struct {
	query      string
	args       []any
	withLookup bool
}

// compileStats renders a statistics pipeline as one grouped SELECT.
// Stages are applied in order; a match on the current sector requires a
// preceding currentSector stage, and a lookup requires a category unwind.
func compileStats(p domain.Pipeline) (compiledStats, error) {
	var (
		where         sq.And
		joins         []string
		groupKey      string
		sectorDerived bool
		unwound       domain.StatsField
		withLookup    bool
	)

	for i, st := range p.Stages {
		switch st.Kind {
		case domain.StageMatch:
			for _, pr := range st.Predicates {
				if pr.Field == domain.FieldCurrentSector && !sectorDerived {
					return compiledStats{}, fmt.Errorf("stage %d: %s used before it is derived", i, pr.Field)
				}
				cond, err := compilePredicate(pr)
				if err != nil {
					return compiledStats{}, fmt.Errorf("stage %d: %w", i, err)
				}
				where = append(where, cond)
			}

		case domain.StageCurrentSector:
			sectorDerived = true

		case domain.StageUnwind:
			switch st.Field {
			case domain.FieldCategoryID:
				joins = append(joins, "CROSS JOIN LATERAL unnest(d.category_ids) AS dc(category_id)")
			case domain.FieldSectorHistory:
				joins = append(joins, "CROSS JOIN LATERAL jsonb_array_elements(d.sector_history) AS sh(entry)")
			default:
				return compiledStats{}, fmt.Errorf("stage %d: cannot unwind %s", i, st.Field)
			}
			unwound = st.Field

		case domain.StageLookup:
			if st.From != "categories" || unwound != domain.FieldCategoryID {
				return compiledStats{}, fmt.Errorf("stage %d: unsupported lookup of %q", i, st.From)
			}
			joins = append(joins, "LEFT JOIN categories c ON c.id = dc.category_id")
			withLookup = true

		case domain.StageGroup:
			key, err := groupExpr(st.Field, unwound)
			if err != nil {
				return compiledStats{}, fmt.Errorf("stage %d: %w", i, err)
			}
			groupKey = key

		default:
			return compiledStats{}, fmt.Errorf("stage %d: unknown kind %q", i, st.Kind)
		}
	}

	if groupKey == "" {
		return compiledStats{}, fmt.Errorf("pipeline %s has no group stage", p.Dimension)
	}

	cols := []string{groupKey + " AS group_id", "count(*) AS total"}
	groupBy := []string{groupKey}
	if withLookup {
		cols = append(cols, "c.id", "c.name", "c.description", "c.color", "c.created_at", "c.updated_at")
		groupBy = append(groupBy, "c.id")
	}

	b := postgres.Builder().Select(cols...).From("demands d")
	for _, j := range joins {
		b = b.JoinClause(j)
	}
	if len(where) > 0 {
		b = b.Where(where)
	}
	b = b.GroupBy(groupBy...).OrderBy("total DESC", "group_id ASC")

	query, args, err := b.ToSql()
	if err != nil {
		return compiledStats{}, fmt.Errorf("build stats query: %w", err)
	}
	return compiledStats{query: query, args: args, withLookup: withLookup}, nil
}

func compilePredicate(p domain.Predicate) (sq.Sqlizer, error) {
	col, err := predicateColumn(p.Field)
	if err != nil {
		return nil, err
	}

	switch p.Op {
	case domain.OpEq:
		return sq.Eq{col: p.Value}, nil
	case domain.OpIn:
		values, ok := p.Value.([]string)
		if !ok {
			return nil, fmt.Errorf("%s in: want []string, got %T", p.Field, p.Value)
		}
		return sq.Eq{col: values}, nil
	case domain.OpContains:
		id, ok := p.Value.(uuid.UUID)
		if !ok {
			return nil, fmt.Errorf("%s contains: want uuid, got %T", p.Field, p.Value)
		}
		return sq.Expr("? = ANY("+col+")", id), nil
	case domain.OpBetween:
		tr, ok := p.Value.(domain.TimeRange)
		if !ok {
			return nil, fmt.Errorf("%s between: want TimeRange, got %T", p.Field, p.Value)
		}
		return sq.And{sq.GtOrEq{col: tr.From}, sq.LtOrEq{col: tr.To}}, nil
	}
	return nil, fmt.Errorf("unknown operator %q", p.Op)
}

func predicateColumn(f domain.StatsField) (string, error) {
	switch f {
	case domain.FieldOpen:
		return "d.open", nil
	case domain.FieldCreatedAt:
		return "d.created_at", nil
	case domain.FieldClientID:
		return "d.client_id", nil
	case domain.FieldCategoryID:
		return "d.category_ids", nil
	case domain.FieldCurrentSector:
		return currentSectorExpr, nil
	}
	return "", fmt.Errorf("field %s cannot be matched", f)
}

func groupExpr(f, unwound domain.StatsField) (string, error) {
	switch f {
	case domain.FieldClientID:
		return "d.client_id", nil
	case domain.FieldCategoryID:
		if unwound != domain.FieldCategoryID {
			return "", fmt.Errorf("group by %s requires unwinding it first", f)
		}
		return "dc.category_id::text", nil
	case domain.FieldSectorHistorySectorID:
		if unwound != domain.FieldSectorHistory {
			return "", fmt.Errorf("group by %s requires unwinding %s first", f, domain.FieldSectorHistory)
		}
		return "coalesce(sh.entry->>'sectorID', '')", nil
	}
	return "", fmt.Errorf("cannot group by %s", f)
}

// Stats runs a statistics pipeline and returns one row per group,
// largest groups first.
func (r *Repo) Stats(ctx context.Context, p domain.Pipeline) ([]domain.StatsRow, error) {
	c, err := compileStats(p)
	if err != nil {
		return nil, fmt.Errorf("compile %s stats: %w", p.Dimension, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, c.query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("%s stats: %w", p.Dimension, err)
	}
	defer rows.Close()

	result := []domain.StatsRow{}
	for rows.Next() {
		var row domain.StatsRow
		if !c.withLookup {
			if err := rows.Scan(&row.ID, &row.Count); err != nil {
				return nil, fmt.Errorf("scan %s stats: %w", p.Dimension, err)
			}
			result = append(result, row)
			continue
		}

		var cat categoryScan
		if err := rows.Scan(&row.ID, &row.Count,
			&cat.id, &cat.name, &cat.description, &cat.color, &cat.createdAt, &cat.updatedAt); err != nil {
			return nil, fmt.Errorf("scan %s stats: %w", p.Dimension, err)
		}
		row.Category = cat.toDomain()
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s stats: %w", p.Dimension, err)
	}

	return result, nil
}

// categoryScan receives the nullable columns of a category lookup.
type categoryScan struct {
	id                       *uuid.UUID
	name, description, color *string
	createdAt, updatedAt     *time.Time
}

func (c categoryScan) toDomain() *domain.Category {
	if c.id == nil {
		return nil
	}
	cat := &domain.Category{ID: *c.id}
	if c.name != nil {
		cat.Name = *c.name
	}
	if c.description != nil {
		cat.Description = *c.description
	}
	if c.color != nil {
		cat.Color = *c.color
	}
	if c.createdAt != nil {
		cat.CreatedAt = c.createdAt.UTC()
	}
	if c.updatedAt != nil {
		cat.UpdatedAt = c.updatedAt.UTC()
	}
	return cat
}
