package stats

import (
	"strings"

	"github.com/google/uuid"

	"github.com/sectorflow/demand-service/internal/domain"
)

// Query parameter names of the statistics endpoints.
const (
	ParamIsActive    = "isDemandActive"
	ParamInitialDate = "initialDate"
	ParamFinalDate   = "finalDate"
	ParamSector      = "idSector"
	ParamCategory    = "idCategory"
	ParamClient      = "idClients"
	ParamFeature     = "idFeature"
)

// ParseParams decodes the statistics query parameters. Both dates are
// required; every optional filter treats placeholder values as absent.
// An isDemandActive other than "true" or "false" means any state.
func ParseParams(get func(key string) string) (domain.StatsParams, error) {
	var (
		p    domain.StatsParams
		errs []domain.FieldError
	)

	p.IsActive = domain.ParseActiveFilter(get(ParamIsActive))

	initial, err := domain.ParseCivilDate(get(ParamInitialDate))
	if err != nil {
		errs = append(errs, domain.FieldError{Field: ParamInitialDate, Message: "Initial date is invalid"})
	}
	final, err := domain.ParseCivilDate(get(ParamFinalDate))
	if err != nil {
		errs = append(errs, domain.FieldError{Field: ParamFinalDate, Message: "Final date is invalid"})
	}
	p.InitialDate, p.FinalDate = initial, final

	p.SectorID = optional(get(ParamSector))
	p.ClientID = optional(get(ParamClient))
	p.FeatureID = optional(get(ParamFeature))

	if c := optional(get(ParamCategory)); c != nil {
		id, err := uuid.Parse(*c)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: ParamCategory, Message: "Category Id invalid"})
		} else {
			p.CategoryID = &id
		}
	}

	if len(errs) > 0 {
		return domain.StatsParams{}, domain.NewValidationErrors(errs)
	}
	return p, nil
}

func optional(s string) *string {
	if domain.IsPlaceholder(s) {
		return nil
	}
	v := strings.TrimSpace(s)
	return &v
}
