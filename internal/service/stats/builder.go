package stats

import (
	"github.com/sectorflow/demand-service/internal/domain"
)

// Build assembles the statistics pipeline of one report dimension.
//
// Filters are layered in a fixed order: the date window and open state
// first, then the current sector or, when no sector is given, the category,
// then the client. A sector filter always shadows the category filter.
// allowList restricts the features dimension to the given clients; it is
// ignored for every other dimension.
func Build(dim domain.StatsDimension, p domain.StatsParams, allowList []string) domain.Pipeline {
	base := []domain.Predicate{{
		Field: domain.FieldCreatedAt,
		Op:    domain.OpBetween,
		Value: domain.TimeRange{From: p.InitialDate, To: domain.EndOfDay(p.FinalDate)},
	}}
	if p.IsActive != nil {
		base = append(base, domain.Predicate{Field: domain.FieldOpen, Op: domain.OpEq, Value: *p.IsActive})
	}

	var stages []domain.Stage
	switch {
	case p.SectorID != nil:
		stages = append(stages,
			domain.Stage{Kind: domain.StageMatch, Predicates: base},
			domain.Stage{Kind: domain.StageCurrentSector},
			domain.Stage{Kind: domain.StageMatch, Predicates: []domain.Predicate{
				{Field: domain.FieldCurrentSector, Op: domain.OpEq, Value: *p.SectorID},
			}},
		)
	case p.CategoryID != nil && dim != domain.DimensionFeatures:
		base = append(base, domain.Predicate{Field: domain.FieldCategoryID, Op: domain.OpContains, Value: *p.CategoryID})
		stages = append(stages, domain.Stage{Kind: domain.StageMatch, Predicates: base})
	default:
		stages = append(stages, domain.Stage{Kind: domain.StageMatch, Predicates: base})
	}

	if p.ClientID != nil {
		stages = append(stages, domain.Stage{Kind: domain.StageMatch, Predicates: []domain.Predicate{
			{Field: domain.FieldClientID, Op: domain.OpEq, Value: *p.ClientID},
		}})
	}

	switch dim {
	case domain.DimensionFeatures:
		ids := append([]string{}, allowList...)
		stages = append(stages,
			domain.Stage{Kind: domain.StageMatch, Predicates: []domain.Predicate{
				{Field: domain.FieldClientID, Op: domain.OpIn, Value: ids},
			}},
			domain.Stage{Kind: domain.StageGroup, Field: domain.FieldClientID},
		)
	case domain.DimensionClients:
		stages = append(stages, domain.Stage{Kind: domain.StageGroup, Field: domain.FieldClientID})
	case domain.DimensionCategories:
		stages = append(stages,
			domain.Stage{Kind: domain.StageUnwind, Field: domain.FieldCategoryID},
			domain.Stage{Kind: domain.StageLookup, From: "categories"},
			domain.Stage{Kind: domain.StageGroup, Field: domain.FieldCategoryID},
		)
	case domain.DimensionSectors:
		stages = append(stages,
			domain.Stage{Kind: domain.StageUnwind, Field: domain.FieldSectorHistory},
			domain.Stage{Kind: domain.StageGroup, Field: domain.FieldSectorHistorySectorID},
		)
	}

	return domain.Pipeline{Dimension: dim, Stages: stages}
}
